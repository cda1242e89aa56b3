// Package api provides the REST management server for ZoneKeeper: zone
// record-set CRUD, the rendered zone-file download, the change journal, and
// the embedded editor UI, served through Gin.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zonekit/zonekeeper/internal/api/handlers"
	"github.com/zonekit/zonekeeper/internal/api/middleware"
	"github.com/zonekit/zonekeeper/internal/changelog"
	"github.com/zonekit/zonekeeper/internal/config"
	"github.com/zonekit/zonekeeper/internal/store"
)

// Server is the management REST API server.
//
// Security note: do not expose the API to untrusted networks without an API
// key configured.
type Server struct {
	cfg        *config.AppConfig
	logger     *slog.Logger
	engine     *gin.Engine
	httpServer *http.Server
}

// New wires the handlers and returns a ready-to-run Server. journal may be
// nil when journaling is disabled.
func New(cfg *config.AppConfig, st *store.Store, journal *changelog.Log, logger *slog.Logger) *Server {
	if cfg == nil {
		panic("api.New: cfg is nil")
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))

	h := handlers.New(cfg, st, journal, logger)
	RegisterRoutes(engine, h, cfg)
	MountUI(engine, logger)

	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{cfg: cfg, logger: logger, engine: engine, httpServer: httpServer}
}

func (s *Server) Addr() string {
	if s.httpServer == nil {
		return ""
	}
	return s.httpServer.Addr
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
