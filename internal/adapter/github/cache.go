package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/creativetech/repodir/internal/app"
	lru "github.com/hashicorp/golang-lru"
)

// CachedClient wraps github client with an in-process caching layer,
// so a slug looked up by the validation gate isn't fetched again by the
// enrichment pipeline within the same run.
type CachedClient struct {
	client     app.GithubClient
	repoCache  *lru.Cache
	statsCache *lru.Cache
	ttl        time.Duration
}

var _ app.GithubClient = &CachedClient{}

// NewCachedClient creates new CachedClient instance.
func NewCachedClient(client app.GithubClient, size int, ttl time.Duration) (*CachedClient, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	repoCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for repos: %w", err)
	}
	statsCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for stats: %w", err)
	}

	return &CachedClient{
		client:     client,
		repoCache:  repoCache,
		statsCache: statsCache,
		ttl:        ttl,
	}, nil
}

type repoCacheEntry struct {
	created time.Time
	data    app.RepoMetadata
}

type statsCacheEntry struct {
	created time.Time
	data    []app.CommitWeek
}

// RepoBySlug returns repository metadata by its owner/name slug.
func (c *CachedClient) RepoBySlug(ctx context.Context, slug string) (app.RepoMetadata, error) {
	val, ok := c.repoCache.Get(slug)
	if ok {
		entry := val.(repoCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.data, nil
		}
	}

	meta, err := c.client.RepoBySlug(ctx, slug)
	if err != nil {
		return meta, err
	}

	c.repoCache.Add(slug, repoCacheEntry{
		created: time.Now(),
		data:    meta,
	})

	return meta, nil
}

// CommitActivity returns the weekly commit series for the repository.
func (c *CachedClient) CommitActivity(ctx context.Context, slug string) ([]app.CommitWeek, error) {
	val, ok := c.statsCache.Get(slug)
	if ok {
		entry := val.(statsCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.data, nil
		}
	}

	weeks, err := c.client.CommitActivity(ctx, slug)
	if err != nil {
		return weeks, err
	}

	c.statsCache.Add(slug, statsCacheEntry{
		created: time.Now(),
		data:    weeks,
	})

	return weeks, nil
}
