package app

import "time"

// SetNowFunc overrides the service clock in tests.
func (s *Service) SetNowFunc(now func() time.Time) {
	s.now = now
}
