package main

import (
	netHttp "net/http"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/creativetech/repodir/internal/adapter/github"
	"github.com/creativetech/repodir/internal/app"
	"github.com/creativetech/repodir/internal/database"
	"github.com/creativetech/repodir/internal/limiter"
)

var rootCmd = &cobra.Command{
	Use:   "repodir",
	Short: "Curated github repository directory",
	Long: `repodir maintains a curated directory of github repositories.

It enriches a human-curated dataset with live github metadata and a derived
activity classification, validates contributed entries, and serves the
generated catalog over http.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (Config, error) {
	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		return conf, errors.Wrap(err, "parsing config")
	}
	return conf, nil
}

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.Level = logrus.InfoLevel
	return l
}

// newGithubClient builds the full client stack:
// rate-limited http doer -> rest client -> bolt read-through store -> lru cache.
// The returned closer releases the bolt db.
func newGithubClient(conf Config, l logrus.FieldLogger) (app.GithubClient, func(), error) {
	httpClient := &netHttp.Client{
		Timeout: 30 * time.Second,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.GithubAPIRateLimit,
	)

	kvStore, err := database.NewBoltKVStore(
		conf.GithubDBPath,
		conf.GithubDBBucketName,
	)
	if err != nil {
		return nil, nil, errors.Wrap(err, "creating bolt kv store")
	}

	githubClient := github.NewClient(
		limitedHTTPClient,
		conf.GithubAPIAddress,
		conf.GithubAPIToken,
	)
	githubStoredClient := github.NewStoredClient(
		githubClient,
		kvStore,
		conf.GithubDBDataTTL,
		l.WithField("component", "githubStoredClient"),
	)
	githubCachedClient, err := github.NewCachedClient(
		githubStoredClient,
		conf.GithubClientCacheSize,
		conf.GithubClientCacheTTL,
	)
	if err != nil {
		_ = kvStore.Close()
		return nil, nil, errors.Wrap(err, "creating github client cache")
	}

	return githubCachedClient, func() { _ = kvStore.Close() }, nil
}
