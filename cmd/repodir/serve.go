package main

import (
	"github.com/spf13/cobra"

	api "github.com/creativetech/repodir/internal/api/http"
	"github.com/creativetech/repodir/internal/app"
	"github.com/creativetech/repodir/internal/snapshot"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the generated catalog over http",
	Long: `Loads the generated snapshot into memory and serves the public directory
as static files plus a query api at /api/repos.

The snapshot is read once at startup. Re-run fetch and restart to pick up
new data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		l := newLogger()

		conf, err := loadConfig()
		if err != nil {
			return err
		}

		entries, err := snapshot.Load(conf.SnapshotPath)
		if err != nil {
			return err
		}
		l.Infof("loaded %d catalog entries from %s", len(entries), conf.SnapshotPath)

		catalog := app.NewCatalog(entries)
		mux := api.NewMux(
			catalog,
			conf.PublicDir,
			conf.HTTPHandlerTimeout,
			l.WithField("component", "mux"),
		)
		server := api.NewServer(
			conf.HTTPServerAddress,
			conf.HTTPProfileServerAddress,
			mux,
			l.WithField("component", "httpServer"),
		)
		server.Run()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
