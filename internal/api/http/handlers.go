package http

import (
	"net/http"

	"github.com/creativetech/repodir/internal/app"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// Catalog answers queries over the materialized snapshot.
type Catalog interface {
	Len() int
	Query(c app.Criteria) []app.EnrichedEntry
}

type catalogResponse struct {
	// Total is the catalog size before filtering. The client needs both
	// counts to tell an empty catalog apart from a query with no matches.
	Total int                 `json:"total"`
	Count int                 `json:"count"`
	Repos []app.EnrichedEntry `json:"repos"`
}

// NewCatalogHandler creates handlerfunc returning filtered, sorted catalog entries.
// Malformed criteria are no constraint, the handler never fails a request over them.
func NewCatalogHandler(catalog Catalog, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		criteria := app.Criteria{
			Search:   q.Get("search"),
			Category: q.Get("category"),
			Status:   q.Get("status"),
			Language: q.Get("language"),
			SortBy:   q.Get("sort"),
		}

		repos := catalog.Query(criteria)
		response := catalogResponse{
			Total: catalog.Len(),
			Count: len(repos),
			Repos: repos,
		}

		w.Header().Set("Content-type", "application/json; charset=utf-8")
		if err := jsoniter.ConfigFastest.NewEncoder(w).Encode(response); err != nil {
			l.Errorf("encoding catalog response: %v", err)
		}
	}
}
