package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMux(t *testing.T) {
	t.Parallel()

	publicDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(publicDir, "repos.json"),
		[]byte(`[]`),
		0o644,
	))

	tests := []struct {
		name           string
		path           string
		wantStatusCode int
	}{
		{
			name:           "catalog api",
			path:           "/api/repos?category=tools",
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "static snapshot file",
			path:           "/repos.json",
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "missing static file",
			path:           "/nope.html",
			wantStatusCode: http.StatusNotFound,
		},
	}

	m := NewMux(testCatalog(), publicDir, time.Second, logrus.New())
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			m.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Result().StatusCode)
		})
	}
}
