package main

import "time"

// Config is the container for app configuration
type Config struct {
	// DatasetPath - path to the curated dataset yaml file
	DatasetPath string `default:"./data/repos.yaml"`

	// SnapshotPath - canonical location of the generated snapshot
	SnapshotPath string `default:"./generated/repos.json"`

	// PublicDir - directory served by the http server, receives the byte-identical snapshot copy
	PublicDir string `default:"./public"`

	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// HTTPHandlerTimeout - timeout for http handlers
	HTTPHandlerTimeout time.Duration `default:"30s"`

	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubAPIToken - auth token for rest github api (optional, rate limit is lower without this token)
	GithubAPIToken string `envconfig:"GITHUB_TOKEN" default:""`

	// RejectForks - when enabled, the validation gate reports forked repositories
	RejectForks bool `envconfig:"REJECT_FORKS" default:"false"`

	// GithubAPIRateLimit - max frequency for github rest api calls
	GithubAPIRateLimit float64 `default:"2"`

	// EnrichConcurrency - how many entries are enriched/validated at once
	EnrichConcurrency int `default:"4"`

	// GithubDBPath - filepath for bolt db data
	GithubDBPath string `default:"./github.data"`

	// GithubDBBucketName - bolt db bucket name
	GithubDBBucketName string `default:"github"`

	// GithubDBDataTTL - maximum lifetime for stored api responses
	GithubDBDataTTL time.Duration `default:"1h"`

	// GithubClientCacheSize - maximum number of elements in cache for each github client method
	GithubClientCacheSize int `default:"1000"`

	// GithubClientCacheTTL - maximum lifetime for github client cache entries
	GithubClientCacheTTL time.Duration `default:"10m"`
}
