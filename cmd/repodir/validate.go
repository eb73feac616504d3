package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/creativetech/repodir/internal/app"
	"github.com/creativetech/repodir/internal/dataset"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validates the curated dataset",
	Long: `Checks every curated entry: slug shape and uniqueness, category, note
length, and live existence against the github api (public, not archived,
optionally not a fork).

All violations are collected and printed before the command exits non-zero.`,
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

		githubClient, closeClient, err := newGithubClient(conf, l)
		if err != nil {
			return err
		}
		validator := app.NewValidator(githubClient, conf.RejectForks, conf.EnrichConcurrency)
		violations := validator.Validate(cmd.Context(), entries)
		closeClient()

		if len(violations) > 0 {
			fmt.Fprintln(os.Stderr, "Validation failed:")
			fmt.Fprintln(os.Stderr)
			for _, v := range violations {
				fmt.Fprintf(os.Stderr, "  - %s\n", v)
			}
			os.Exit(1)
		}

		fmt.Printf("All %d entries passed validation.\n", len(entries))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
