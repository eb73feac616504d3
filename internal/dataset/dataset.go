// Package dataset reads the curated repository dataset.
package dataset

import (
	"os"

	"github.com/creativetech/repodir/internal/app"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type document struct {
	Repos []app.CuratedEntry `yaml:"repos"`
}

// Load reads curated entries from a yaml file with a top-level "repos" list.
// Parse failures and a missing list are fatal: they're reported before any
// network call is made.
func Load(path string) ([]app.CuratedEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading dataset file")
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "parsing dataset file")
	}
	if doc.Repos == nil {
		return nil, errors.Errorf("invalid dataset %s: expected a top-level %q list", path, "repos")
	}

	return doc.Repos, nil
}
