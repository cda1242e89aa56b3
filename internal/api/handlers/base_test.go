package handlers_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/zonekit/zonekeeper/internal/api/handlers"
	"github.com/zonekit/zonekeeper/internal/changelog"
	"github.com/zonekit/zonekeeper/internal/config"
	"github.com/zonekit/zonekeeper/internal/store"
)

type testEnv struct {
	handler *handlers.Handler
	router  *gin.Engine
}

func newTestEnv(t *testing.T, withJournal bool) *testEnv {
	t.Helper()

	base := t.TempDir()
	cfg := &config.AppConfig{
		Host:         "127.0.0.1",
		Port:         8053,
		PrimaryDir:   filepath.Join(base, "primary"),
		SecondaryDir: filepath.Join(base, "secondary"),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.New(cfg.PrimaryDir, cfg.SecondaryDir, logger)

	var journal *changelog.Log
	if withJournal {
		var err error
		journal, err = changelog.Open(filepath.Join(base, "changelog.db"))
		require.NoError(t, err)
		t.Cleanup(func() { journal.Close() })
	}

	h := handlers.New(cfg, st, journal, logger)
	return &testEnv{handler: h, router: setupTestRouter(h)}
}

func setupTestRouter(h *handlers.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	api := r.Group("/api/v1")
	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)
	api.GET("/zones", h.ListZones)
	api.GET("/zones/:domain", h.GetZone)
	api.POST("/zones/:domain", h.UpsertZone)
	api.PUT("/zones/:domain", h.UpsertZone)
	api.GET("/zones/:domain/file", h.GetZoneFile)
	api.DELETE("/zones/:domain", h.DeleteZone)
	api.GET("/changes", h.ListChanges)

	return r
}

func (e *testEnv) perform(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
