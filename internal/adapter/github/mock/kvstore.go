package mock

import "sync"

// KVStore mocks github.KVStore.
type KVStore struct {
	data    map[string][]byte
	reads   int
	updates int
	m       sync.Mutex

	ReadErr   error
	UpdateErr error
}

// NewKVStore creates new KVStore instance with given data.
func NewKVStore(data map[string][]byte) *KVStore {
	if data == nil {
		data = make(map[string][]byte)
	}
	return &KVStore{data: data}
}

// ReadKey returns data saved for given key.
func (s *KVStore) ReadKey(key []byte) ([]byte, error) {
	s.m.Lock()
	defer s.m.Unlock()

	s.reads++
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	return s.data[string(key)], nil
}

// UpdateKey stores given data under given key.
func (s *KVStore) UpdateKey(key []byte, data []byte) error {
	s.m.Lock()
	defer s.m.Unlock()

	s.updates++
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	s.data[string(key)] = data
	return nil
}

// Reads returns the number of ReadKey calls.
func (s *KVStore) Reads() int {
	s.m.Lock()
	defer s.m.Unlock()
	return s.reads
}

// Updates returns the number of UpdateKey calls.
func (s *KVStore) Updates() int {
	s.m.Lock()
	defer s.m.Unlock()
	return s.updates
}

// Get returns stored raw data for given key.
func (s *KVStore) Get(key string) []byte {
	s.m.Lock()
	defer s.m.Unlock()
	return s.data[key]
}
