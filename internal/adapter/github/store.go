package github

import (
	"context"
	"fmt"
	"time"

	"github.com/creativetech/repodir/internal/app"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// KVStore provides simple kv data storage
type KVStore interface {
	ReadKey(key []byte) ([]byte, error)
	UpdateKey(key []byte, data []byte) error
}

// StoredClient wraps GithubClient with a persistent read-through cache.
//
// Fresh stored data is returned without touching the api; anything missing
// or older than ttl is fetched from the wrapped client and stored back.
// Store failures degrade to plain api calls, they never fail a lookup.
// Client errors are never stored.
type StoredClient struct {
	client app.GithubClient
	store  KVStore
	ttl    time.Duration
	now    func() time.Time
	l      logrus.FieldLogger
}

var _ app.GithubClient = &StoredClient{}

// NewStoredClient creates new StoredClient instance.
func NewStoredClient(client app.GithubClient, store KVStore, ttl time.Duration, l logrus.FieldLogger) *StoredClient {
	return &StoredClient{
		client: client,
		store:  store,
		ttl:    ttl,
		now:    time.Now,
		l:      l,
	}
}

type storedRepoEntry struct {
	Created int64            `json:"created"`
	Repo    app.RepoMetadata `json:"repo"`
}

type storedStatsEntry struct {
	Created int64            `json:"created"`
	Weeks   []app.CommitWeek `json:"weeks"`
}

// RepoBySlug returns repository metadata by its owner/name slug.
//
// Returns data from the store if it's fresh enough.
func (c *StoredClient) RepoBySlug(ctx context.Context, slug string) (app.RepoMetadata, error) {
	key := c.repoKey(slug)

	data, err := c.store.ReadKey(key)
	if err != nil {
		c.l.Warnf("reading %q from store: %v", key, err)
	}
	if data != nil {
		var entry storedRepoEntry
		if err := jsoniter.Unmarshal(data, &entry); err != nil {
			c.l.Warnf("unserializing stored repo data for %q: %v", slug, err)
		} else if c.fresh(entry.Created) {
			return entry.Repo, nil
		}
	}

	meta, err := c.client.RepoBySlug(ctx, slug)
	if err != nil {
		return app.RepoMetadata{}, err
	}

	c.update(key, storedRepoEntry{
		Created: c.now().Unix(),
		Repo:    meta,
	})

	return meta, nil
}

// CommitActivity returns the weekly commit series for the repository.
//
// Returns data from the store if it's fresh enough.
func (c *StoredClient) CommitActivity(ctx context.Context, slug string) ([]app.CommitWeek, error) {
	key := c.statsKey(slug)

	data, err := c.store.ReadKey(key)
	if err != nil {
		c.l.Warnf("reading %q from store: %v", key, err)
	}
	if data != nil {
		var entry storedStatsEntry
		if err := jsoniter.Unmarshal(data, &entry); err != nil {
			c.l.Warnf("unserializing stored stats data for %q: %v", slug, err)
		} else if c.fresh(entry.Created) {
			return entry.Weeks, nil
		}
	}

	weeks, err := c.client.CommitActivity(ctx, slug)
	if err != nil {
		return nil, err
	}

	c.update(key, storedStatsEntry{
		Created: c.now().Unix(),
		Weeks:   weeks,
	})

	return weeks, nil
}

func (c *StoredClient) fresh(created int64) bool {
	return time.Unix(created, 0).Add(c.ttl).After(c.now())
}

func (c *StoredClient) update(key []byte, entry interface{}) {
	data, err := jsoniter.Marshal(entry)
	if err != nil {
		c.l.Warnf("serializing entry for %q: %v", key, err)
		return
	}
	if err := c.store.UpdateKey(key, data); err != nil {
		c.l.Warnf("updating %q in store: %v", key, err)
	}
}

func (c *StoredClient) repoKey(slug string) []byte {
	return []byte(fmt.Sprintf("repo:%s", slug))
}

func (c *StoredClient) statsKey(slug string) []byte {
	return []byte(fmt.Sprintf("stats:%s", slug))
}
