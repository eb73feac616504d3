package github

import (
	"time"

	"github.com/creativetech/repodir/internal/app"
)

type repoResponse struct {
	Name        string               `json:"name"`
	FullName    string               `json:"full_name"`
	HTMLURL     string               `json:"html_url"`
	Description string               `json:"description"`
	Stars       int                  `json:"stargazers_count"`
	Forks       int                  `json:"forks_count"`
	OpenIssues  int                  `json:"open_issues_count"`
	CreatedAt   time.Time            `json:"created_at"`
	PushedAt    time.Time            `json:"pushed_at"`
	Archived    bool                 `json:"archived"`
	Private     bool                 `json:"private"`
	Fork        bool                 `json:"fork"`
	License     *repoResponseLicense `json:"license"`
	Language    string               `json:"language"`
	Topics      []string             `json:"topics"`
}

type repoResponseLicense struct {
	SpdxID string `json:"spdx_id"`
	Name   string `json:"name"`
}

func (r repoResponse) ToMetadata() app.RepoMetadata {
	m := app.RepoMetadata{
		Slug:        r.FullName,
		Name:        r.Name,
		URL:         r.HTMLURL,
		Description: r.Description,
		Stars:       r.Stars,
		Forks:       r.Forks,
		OpenIssues:  r.OpenIssues,
		CreatedAt:   r.CreatedAt,
		PushedAt:    r.PushedAt,
		Archived:    r.Archived,
		Private:     r.Private,
		Fork:        r.Fork,
		Language:    r.Language,
		Topics:      r.Topics,
	}

	if r.License != nil {
		m.License = r.License.SpdxID
		if m.License == "" {
			m.License = r.License.Name
		}
	}

	return m
}

type statsResponse []struct {
	Total int   `json:"total"`
	Week  int64 `json:"week"`
	Days  []int `json:"days"`
}

func (s statsResponse) ToWeeks() []app.CommitWeek {
	ws := make([]app.CommitWeek, 0, len(s))
	for _, el := range s {
		ws = append(ws, app.CommitWeek{
			Total: el.Total,
			Week:  el.Week,
			Days:  el.Days,
		})
	}

	return ws
}
