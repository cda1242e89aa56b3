// Package api_test exercises the assembled server: routing, auth and the
// embedded UI, end to end over httptest.
package api_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zonekit/zonekeeper/internal/api"
	"github.com/zonekit/zonekeeper/internal/config"
	"github.com/zonekit/zonekeeper/internal/store"
)

func newTestServer(t *testing.T, apiKey string) *api.Server {
	t.Helper()
	base := t.TempDir()
	cfg := &config.AppConfig{
		Host:         "127.0.0.1",
		Port:         8053,
		PrimaryDir:   filepath.Join(base, "primary"),
		SecondaryDir: filepath.Join(base, "secondary"),
		APIKey:       apiKey,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.New(cfg.PrimaryDir, cfg.SecondaryDir, logger)
	return api.New(cfg, st, nil, logger)
}

func performRequest(h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestServer_Addr(t *testing.T) {
	srv := newTestServer(t, "")
	assert.Equal(t, "127.0.0.1:8053", srv.Addr())
}

func TestServer_HealthIsAlwaysOpen(t *testing.T) {
	srv := newTestServer(t, "secret")

	w := performRequest(srv.Engine(), http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServer_APIKeyEnforcement(t *testing.T) {
	srv := newTestServer(t, "secret")

	w := performRequest(srv.Engine(), http.MethodGet, "/api/v1/zones", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(srv.Engine(), http.MethodGet, "/api/v1/zones", "",
		map[string]string{"X-API-Key": "secret"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServer_WriteReadDeleteFlow(t *testing.T) {
	srv := newTestServer(t, "")

	body := `{"A": [{"value": "192.0.2.10"}]}`
	w := performRequest(srv.Engine(), http.MethodPut, "/api/v1/zones/flow.example.com", body, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = performRequest(srv.Engine(), http.MethodGet, "/api/v1/zones/flow.example.com/file", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "192.0.2.10")

	w = performRequest(srv.Engine(), http.MethodDelete, "/api/v1/zones/flow.example.com", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestServer_ServesEmbeddedUI(t *testing.T) {
	srv := newTestServer(t, "secret")

	w := performRequest(srv.Engine(), http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ZoneKeeper")
}
