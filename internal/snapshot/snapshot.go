// Package snapshot persists and loads the materialized catalog.
package snapshot

import (
	"os"
	"path/filepath"

	"github.com/creativetech/repodir/internal/app"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Write serializes entries as an indented json array and writes it to path
// plus byte-identical copies to every mirror path.
//
// Each file is written to a temp file in the target directory and renamed
// into place, so a concurrent reader never observes a torn snapshot.
func Write(entries []app.EnrichedEntry, path string, mirrors ...string) error {
	if entries == nil {
		entries = []app.EnrichedEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return errors.Wrap(err, "serializing snapshot")
	}

	for _, p := range append([]string{path}, mirrors...) {
		if err := writeFileAtomic(p, data); err != nil {
			return errors.Wrapf(err, "writing snapshot to %s", p)
		}
	}

	return nil
}

// Load reads a snapshot written by Write.
func Load(path string) ([]app.EnrichedEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading snapshot file")
	}

	var entries []app.EnrichedEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, errors.Wrap(err, "parsing snapshot file")
	}

	return entries, nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "creating directory")
	}

	// Temp file must live in the target directory, rename isn't atomic across filesystems.
	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return errors.Wrap(err, "setting temp file mode")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}

	return errors.Wrap(os.Rename(tmp.Name(), path), "renaming temp file")
}
