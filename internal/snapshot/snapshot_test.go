package snapshot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creativetech/repodir/internal/app"
)

func testSnapshotEntries() []app.EnrichedEntry {
	return []app.EnrichedEntry{
		{
			Slug:           "acme/widget",
			Name:           "widget",
			URL:            "https://github.com/acme/widget",
			Description:    "A widget toolkit",
			Stars:          42,
			Forks:          7,
			OpenIssues:     3,
			CreatedAt:      time.Date(2022, 6, 1, 10, 0, 0, 0, time.UTC),
			LastCommit:     time.Date(2024, 5, 29, 8, 30, 0, 0, time.UTC),
			ActivityStatus: app.StatusStable,
			CommitPace:     1.5,
			License:        "MIT",
			Language:       "Go",
			Topics:         []string{"tools"},
			Category:       "tools",
			Notes:          "A sufficiently long descriptive note.",
		},
	}
}

func TestWriteAndLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	canonical := filepath.Join(dir, "generated", "repos.json")
	serving := filepath.Join(dir, "public", "repos.json")

	entries := testSnapshotEntries()
	require.NoError(t, Write(entries, canonical, serving))

	// Both copies must be byte-identical.
	canonicalData, err := os.ReadFile(canonical)
	require.NoError(t, err)
	servingData, err := os.ReadFile(serving)
	require.NoError(t, err)
	assert.Equal(t, canonicalData, servingData)

	loaded, err := Load(canonical)
	require.NoError(t, err)
	assert.Equal(t, entries, loaded)
}

func TestWriteFieldNames(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "repos.json")
	require.NoError(t, Write(testSnapshotEntries(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	for _, field := range []string{
		`"slug"`, `"name"`, `"url"`, `"description"`, `"stars"`, `"forks"`,
		`"open_issues"`, `"created_at"`, `"last_commit"`, `"activity_status"`,
		`"commit_pace"`, `"license"`, `"language"`, `"topics"`, `"category"`, `"notes"`,
	} {
		assert.Contains(t, string(data), field)
	}
}

func TestWriteReplacesExistingSnapshot(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "repos.json")
	require.NoError(t, os.WriteFile(path, []byte("old content"), 0o644))

	require.NoError(t, Write(testSnapshotEntries(), path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestWriteNilEntries(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "repos.json")
	require.NoError(t, Write(nil, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, Write(testSnapshotEntries(), filepath.Join(dir, "repos.json")))

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "repos.json", files[0].Name())
}

func TestLoadBadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "repos.json")
	require.NoError(t, os.WriteFile(path, []byte("{b0rken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
