package app

import "time"

// ActivityStatus is the computed activity classification of a repository.
// The set of values is closed.
type ActivityStatus string

// All possible activity statuses.
const (
	StatusArchived      ActivityStatus = "archived"
	StatusStale         ActivityStatus = "stale"
	StatusNew           ActivityStatus = "new"
	StatusInDevelopment ActivityStatus = "in-development"
	StatusStable        ActivityStatus = "stable"
)

// CuratedEntry is a human-authored directory record from the curated dataset.
type CuratedEntry struct {
	Slug     string `yaml:"slug"`
	Category string `yaml:"category"`
	Notes    string `yaml:"notes"`
}

// RepoMetadata holds live repository fields fetched from the github api.
// Never persisted in this raw form.
type RepoMetadata struct {
	Slug        string
	Name        string
	URL         string
	Description string
	Stars       int
	Forks       int
	OpenIssues  int
	CreatedAt   time.Time
	PushedAt    time.Time
	Archived    bool
	Private     bool
	Fork        bool
	License     string
	Language    string
	Topics      []string
}

// CommitWeek is a single weekly bucket from the commit activity stats.
type CommitWeek struct {
	Total int
	Week  int64
	Days  []int
}

// EnrichedEntry is a curated entry merged with live metadata and derived
// activity fields. This is the record persisted in the snapshot.
type EnrichedEntry struct {
	Slug           string         `json:"slug"`
	Name           string         `json:"name"`
	URL            string         `json:"url"`
	Description    string         `json:"description"`
	Stars          int            `json:"stars"`
	Forks          int            `json:"forks"`
	OpenIssues     int            `json:"open_issues"`
	CreatedAt      time.Time      `json:"created_at"`
	LastCommit     time.Time      `json:"last_commit"`
	ActivityStatus ActivityStatus `json:"activity_status"`
	CommitPace     float64        `json:"commit_pace"`
	License        string         `json:"license"`
	Language       string         `json:"language"`
	Topics         []string       `json:"topics"`
	Category       string         `json:"category"`
	Notes          string         `json:"notes"`
}
