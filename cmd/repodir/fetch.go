package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/creativetech/repodir/internal/app"
	"github.com/creativetech/repodir/internal/dataset"
	"github.com/creativetech/repodir/internal/snapshot"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Enriches the curated dataset and writes the catalog snapshot",
	Long: `Reads the curated dataset, fetches live metadata and commit activity from
the github api for every entry, computes activity status and commit pace,
and writes the enriched catalog snapshot.

The run is all-or-nothing: on any metadata fetch failure no snapshot is
written and the previous one stays untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		l := newLogger()

		conf, err := loadConfig()
		if err != nil {
			return err
		}

		entries, err := dataset.Load(conf.DatasetPath)
		if err != nil {
			return err
		}
		l.Infof("Processing %d repositories...", len(entries))

		githubClient, closeClient, err := newGithubClient(conf, l)
		if err != nil {
			return err
		}
		defer closeClient()

		service := app.NewService(
			githubClient,
			conf.EnrichConcurrency,
			l.WithField("component", "enrich"),
		)
		enriched, err := service.Enrich(cmd.Context(), entries)
		if err != nil {
			return err
		}

		publicCopy := filepath.Join(conf.PublicDir, "repos.json")
		if err := snapshot.Write(enriched, conf.SnapshotPath, publicCopy); err != nil {
			return err
		}
		l.Infof("Wrote %d entries to %s", len(enriched), conf.SnapshotPath)
		l.Infof("Copied to %s", publicCopy)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
