package http

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// NewMux creates router for app's http server.
// publicDir is served as static files next to the query api.
func NewMux(catalog Catalog, publicDir string, timeout time.Duration, l logrus.FieldLogger) *http.ServeMux {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)

	catalogHandler := NewCatalogHandler(catalog, l)
	catalogHandler = timeoutMiddleware(catalogHandler)

	m := http.NewServeMux()
	m.HandleFunc("/api/repos", catalogHandler)
	m.Handle("/", http.FileServer(http.Dir(publicDir)))

	return m
}
