// Package handlers implements the REST API endpoint handlers for ZoneKeeper.
//
// REST API Endpoints:
//
// System:
//   - GET /api/v1/health - Health check status
//   - GET /api/v1/stats - Server statistics (uptime, memory, zone count)
//
// Zones:
//   - GET    /api/v1/zones - All record sets, keyed by domain
//   - GET    /api/v1/zones/:domain - One record set ({} when unknown)
//   - POST   /api/v1/zones/:domain - Validate and write a record set
//   - PUT    /api/v1/zones/:domain - Same as POST; writes always replace
//   - GET    /api/v1/zones/:domain/file - Rendered zone file (text/plain)
//   - DELETE /api/v1/zones/:domain - Best-effort artifact removal
//
// Changes:
//   - GET /api/v1/changes - Recent write/delete journal entries
//
// All endpoints except /health require the X-API-Key header when an API key
// is configured.
//
// @title ZoneKeeper Management API
// @version 1.0
// @description REST API for editing DNS zone record sets and managing their zone-file artifacts.
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:8053
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package handlers

import (
	"log/slog"
	"time"

	"github.com/zonekit/zonekeeper/internal/changelog"
	"github.com/zonekit/zonekeeper/internal/config"
	"github.com/zonekit/zonekeeper/internal/store"
)

// Handler contains dependencies for API handlers.
type Handler struct {
	cfg       *config.AppConfig
	store     *store.Store
	journal   *changelog.Log // nil when journaling is disabled
	logger    *slog.Logger
	startTime time.Time
}

// New creates a Handler. journal may be nil.
func New(cfg *config.AppConfig, st *store.Store, journal *changelog.Log, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		cfg:       cfg,
		store:     st,
		journal:   journal,
		logger:    logger,
		startTime: time.Now(),
	}
}

// record appends to the journal, logging rather than failing: journaling is
// observational and must never block the write path.
func (h *Handler) record(e changelog.Entry) {
	if h.journal == nil {
		return
	}
	if err := h.journal.Append(e); err != nil {
		h.logger.Warn("changelog append failed", "domain", e.Domain, "err", err)
	}
}
