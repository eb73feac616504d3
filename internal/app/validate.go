package app

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"
)

var slugRe = regexp.MustCompile(`^[^/]+/[^/]+$`)

// Violation describes a single validation failure.
type Violation string

func violationf(format string, args ...interface{}) Violation {
	return Violation(fmt.Sprintf(format, args...))
}

// Validator checks curated entries against structural constraints and
// against the live github api.
type Validator struct {
	githubClient GithubClient
	rejectForks  bool
	concurrency  int
}

// NewValidator creates new Validator instance.
// With rejectForks enabled, forked repositories are reported as violations.
func NewValidator(githubClient GithubClient, rejectForks bool, concurrency int) *Validator {
	if concurrency < 1 {
		concurrency = 1
	}

	return &Validator{
		githubClient: githubClient,
		rejectForks:  rejectForks,
		concurrency:  concurrency,
	}
}

// Validate checks the whole dataset and returns every violation found.
// An empty result means the dataset is valid.
//
// The gate never stops at the first violation: it wants maximal diagnostic
// coverage, so even network errors on live checks are reported as violations
// for the affected entry instead of aborting. Violations are ordered
// deterministically: duplicates first, then per-entry findings in dataset order.
func (v *Validator) Validate(ctx context.Context, entries []CuratedEntry) []Violation {
	var violations []Violation

	// Every occurrence of a duplicated slug is reported.
	counts := make(map[string]int, len(entries))
	for _, e := range entries {
		counts[e.Slug]++
	}
	for _, e := range entries {
		if counts[e.Slug] > 1 {
			violations = append(violations, violationf("duplicate slug: %q", e.Slug))
		}
	}

	// Per-entry checks are independent, so they run concurrently with one
	// result slot per input index. Flattening keeps dataset order.
	perEntry := make([][]Violation, len(entries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(v.concurrency)
	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			perEntry[i] = v.checkEntry(ctx, e)
			return nil
		})
	}
	_ = g.Wait()

	for _, vs := range perEntry {
		violations = append(violations, vs...)
	}

	return violations
}

func (v *Validator) checkEntry(ctx context.Context, entry CuratedEntry) []Violation {
	var out []Violation

	if !slugRe.MatchString(entry.Slug) {
		out = append(out, violationf("invalid slug format: %q (expected owner/repo)", entry.Slug))
		// Remaining checks are keyed by slug, skip them for a malformed one.
		return out
	}

	if strings.TrimSpace(entry.Category) == "" {
		out = append(out, violationf("missing category for %q", entry.Slug))
	}

	if notes := strings.TrimSpace(entry.Notes); len(notes) < 20 {
		out = append(out, violationf("notes for %q are too short (%d chars, minimum 20)", entry.Slug, len(notes)))
	}

	out = append(out, v.checkLive(ctx, entry.Slug)...)

	return out
}

// checkLive verifies that the repository exists, is public and isn't archived.
func (v *Validator) checkLive(ctx context.Context, slug string) []Violation {
	meta, err := v.githubClient.RepoBySlug(ctx, slug)
	if err != nil {
		if IsNotFoundError(err) {
			return []Violation{violationf("repository %q does not exist", slug)}
		}
		return []Violation{violationf("github api error for %q: %v", slug, err)}
	}

	var out []Violation
	if meta.Private {
		out = append(out, violationf("%q is a private repository", slug))
	}
	if meta.Archived {
		out = append(out, violationf("%q is archived", slug))
	}
	if v.rejectForks && meta.Fork {
		out = append(out, violationf("%q is a fork", slug))
	}

	return out
}
