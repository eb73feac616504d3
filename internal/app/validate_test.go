package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/creativetech/repodir/internal/app"
	"github.com/creativetech/repodir/internal/app/mock"
)

const validNotes = "A sufficiently long descriptive note."

func TestValidatorValidate(t *testing.T) {
	t.Parallel()

	okMeta := app.RepoMetadata{Slug: "a/b", Name: "b"}

	tests := []struct {
		name        string
		setupMock   func(*mock.MockGithubClient)
		rejectForks bool
		entries     []app.CuratedEntry
		want        []app.Violation
	}{
		{
			name: "valid entry yields no violations",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().RepoBySlug(gomock.Any(), "a/b").Return(okMeta, nil)
			},
			entries: []app.CuratedEntry{{Slug: "a/b", Category: "tools", Notes: validNotes}},
			want:    nil,
		},
		{
			name:      "malformed slug skips remaining checks for the entry",
			setupMock: func(m *mock.MockGithubClient) {},
			entries:   []app.CuratedEntry{{Slug: "not-a-slug", Category: "", Notes: "short"}},
			want: []app.Violation{
				`invalid slug format: "not-a-slug" (expected owner/repo)`,
			},
		},
		{
			name:      "slug with too many separators",
			setupMock: func(m *mock.MockGithubClient) {},
			entries:   []app.CuratedEntry{{Slug: "a/b/c", Category: "tools", Notes: validNotes}},
			want: []app.Violation{
				`invalid slug format: "a/b/c" (expected owner/repo)`,
			},
		},
		{
			name:      "empty slug component",
			setupMock: func(m *mock.MockGithubClient) {},
			entries:   []app.CuratedEntry{{Slug: "a/", Category: "tools", Notes: validNotes}},
			want: []app.Violation{
				`invalid slug format: "a/" (expected owner/repo)`,
			},
		},
		{
			name: "missing category and short notes accumulate",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().RepoBySlug(gomock.Any(), "a/b").Return(okMeta, nil)
			},
			entries: []app.CuratedEntry{{Slug: "a/b", Category: "  ", Notes: "  too short  "}},
			want: []app.Violation{
				`missing category for "a/b"`,
				`notes for "a/b" are too short (9 chars, minimum 20)`,
			},
		},
		{
			name: "duplicate slug reported once per occurrence",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().RepoBySlug(gomock.Any(), "a/b").Return(okMeta, nil).Times(2)
			},
			entries: []app.CuratedEntry{
				{Slug: "a/b", Category: "tools", Notes: validNotes},
				{Slug: "a/b", Category: "tools", Notes: validNotes},
			},
			want: []app.Violation{
				`duplicate slug: "a/b"`,
				`duplicate slug: "a/b"`,
			},
		},
		{
			name: "repository does not exist",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					RepoBySlug(gomock.Any(), "a/b").
					Return(app.RepoMetadata{}, app.NotFoundError(`repository "a/b" does not exist`))
			},
			entries: []app.CuratedEntry{{Slug: "a/b", Category: "tools", Notes: validNotes}},
			want: []app.Violation{
				`repository "a/b" does not exist`,
			},
		},
		{
			name: "api error is a violation, not an abort",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					RepoBySlug(gomock.Any(), "a/b").
					Return(app.RepoMetadata{}, errors.New("got invalid http status code: 500"))
				m.EXPECT().RepoBySlug(gomock.Any(), "c/d").Return(app.RepoMetadata{Slug: "c/d"}, nil)
			},
			entries: []app.CuratedEntry{
				{Slug: "a/b", Category: "tools", Notes: validNotes},
				{Slug: "c/d", Category: "tools", Notes: validNotes},
			},
			want: []app.Violation{
				`github api error for "a/b": got invalid http status code: 500`,
			},
		},
		{
			name: "private and archived repositories",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					RepoBySlug(gomock.Any(), "a/b").
					Return(app.RepoMetadata{Slug: "a/b", Private: true, Archived: true}, nil)
			},
			entries: []app.CuratedEntry{{Slug: "a/b", Category: "tools", Notes: validNotes}},
			want: []app.Violation{
				`"a/b" is a private repository`,
				`"a/b" is archived`,
			},
		},
		{
			name: "fork allowed without strict mode",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					RepoBySlug(gomock.Any(), "a/b").
					Return(app.RepoMetadata{Slug: "a/b", Fork: true}, nil)
			},
			entries: []app.CuratedEntry{{Slug: "a/b", Category: "tools", Notes: validNotes}},
			want:    nil,
		},
		{
			name: "fork rejected in strict mode",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					RepoBySlug(gomock.Any(), "a/b").
					Return(app.RepoMetadata{Slug: "a/b", Fork: true}, nil)
			},
			rejectForks: true,
			entries:     []app.CuratedEntry{{Slug: "a/b", Category: "tools", Notes: validNotes}},
			want: []app.Violation{
				`"a/b" is a fork`,
			},
		},
		{
			name:      "empty dataset is valid",
			setupMock: func(m *mock.MockGithubClient) {},
			entries:   nil,
			want:      nil,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			githubCli := mock.NewMockGithubClient(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(githubCli)
			}

			v := app.NewValidator(githubCli, tt.rejectForks, 2)
			got := v.Validate(context.Background(), tt.entries)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The gate must enumerate everything it finds across the whole dataset in a
// deterministic order before the caller decides to fail the run.
func TestValidatorAccumulatesAcrossEntries(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	githubCli := mock.NewMockGithubClient(ctrl)
	githubCli.EXPECT().
		RepoBySlug(gomock.Any(), "a/b").
		Return(app.RepoMetadata{Slug: "a/b", Archived: true}, nil).
		Times(2)
	githubCli.EXPECT().
		RepoBySlug(gomock.Any(), "c/d").
		Return(app.RepoMetadata{}, app.NotFoundError(`repository "c/d" does not exist`))

	v := app.NewValidator(githubCli, false, 3)
	got := v.Validate(context.Background(), []app.CuratedEntry{
		{Slug: "a/b", Category: "tools", Notes: validNotes},
		{Slug: "c/d", Category: "", Notes: "short"},
		{Slug: "a/b", Category: "tools", Notes: validNotes},
	})

	assert.Equal(t, []app.Violation{
		`duplicate slug: "a/b"`,
		`duplicate slug: "a/b"`,
		`"a/b" is archived`,
		`missing category for "c/d"`,
		`notes for "c/d" are too short (5 chars, minimum 20)`,
		`repository "c/d" does not exist`,
		`"a/b" is archived`,
	}, got)
}
