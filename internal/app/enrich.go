package app

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// GithubClient returns details about github repositories.
type GithubClient interface {
	RepoBySlug(ctx context.Context, slug string) (RepoMetadata, error)
	CommitActivity(ctx context.Context, slug string) ([]CommitWeek, error)
}

// Service enriches curated entries with live github metadata and derived
// activity fields.
type Service struct {
	githubClient GithubClient
	concurrency  int
	now          func() time.Time
	l            logrus.FieldLogger
}

// NewService creates new Service instance.
// concurrency bounds how many entries are processed at once.
func NewService(githubClient GithubClient, concurrency int, l logrus.FieldLogger) *Service {
	if concurrency < 1 {
		concurrency = 1
	}

	return &Service{
		githubClient: githubClient,
		concurrency:  concurrency,
		now:          time.Now,
		l:            l,
	}
}

// Enrich fetches live metadata for every curated entry and merges it into
// enriched records. Output order always matches input order, regardless of
// fetch completion order.
//
// The run is all-or-nothing: a failed metadata fetch for any entry fails the
// whole run. A partially-enriched catalog is worse than a stale but complete
// previous one. Commit activity is best-effort and degrades to zero pace.
func (s *Service) Enrich(ctx context.Context, entries []CuratedEntry) ([]EnrichedEntry, error) {
	result := make([]EnrichedEntry, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			s.l.Infof("fetching %s...", entry.Slug)
			enriched, err := s.enrichEntry(ctx, entry)
			if err != nil {
				return errors.Wrapf(err, "enriching %q", entry.Slug)
			}
			result[i] = enriched
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// enrichEntry runs the two sub-fetches concurrently and joins them.
func (s *Service) enrichEntry(ctx context.Context, entry CuratedEntry) (EnrichedEntry, error) {
	var meta RepoMetadata
	var weeks []CommitWeek

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := s.githubClient.RepoBySlug(ctx, entry.Slug)
		if err != nil {
			return errors.Wrap(err, "retrieving repository metadata")
		}
		meta = m
		return nil
	})
	g.Go(func() error {
		w, err := s.githubClient.CommitActivity(ctx, entry.Slug)
		if err != nil {
			// Commit activity is best-effort. Missing series degrades commit pace to 0.
			s.l.Warnf("commit activity unavailable for %s: %v", entry.Slug, err)
			return nil
		}
		weeks = w
		return nil
	})
	if err := g.Wait(); err != nil {
		return EnrichedEntry{}, err
	}

	pace := CommitPace(weeks)
	status := ClassifyActivity(s.now(), meta.CreatedAt, meta.PushedAt, meta.Archived, pace)

	return buildEntry(entry, meta, status, pace), nil
}

func buildEntry(curated CuratedEntry, meta RepoMetadata, status ActivityStatus, pace float64) EnrichedEntry {
	license := meta.License
	if license == "" {
		license = "None"
	}
	language := meta.Language
	if language == "" {
		language = "Unknown"
	}
	topics := meta.Topics
	if topics == nil {
		topics = []string{}
	}

	return EnrichedEntry{
		Slug:           meta.Slug,
		Name:           meta.Name,
		URL:            meta.URL,
		Description:    meta.Description,
		Stars:          meta.Stars,
		Forks:          meta.Forks,
		OpenIssues:     meta.OpenIssues,
		CreatedAt:      meta.CreatedAt,
		LastCommit:     meta.PushedAt,
		ActivityStatus: status,
		CommitPace:     pace,
		License:        license,
		Language:       language,
		Topics:         topics,
		Category:       curated.Category,
		Notes:          strings.TrimSpace(curated.Notes),
	}
}
