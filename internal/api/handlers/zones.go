package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zonekit/zonekeeper/internal/api/models"
	"github.com/zonekit/zonekeeper/internal/changelog"
	"github.com/zonekit/zonekeeper/internal/zone"
)

// ListZones godoc
// @Summary List all zones
// @Description Returns every stored record set, keyed by domain
// @Tags zones
// @Produce json
// @Success 200 {object} models.ZoneListResponse
// @Security ApiKeyAuth
// @Router /zones [get]
func (h *Handler) ListZones(c *gin.Context) {
	all := h.store.LoadAll()
	c.JSON(http.StatusOK, models.ZoneListResponse{Zones: all, Count: len(all)})
}

// GetZone godoc
// @Summary Get one zone's record set
// @Description Returns the stored record set for a domain, or an empty object when unknown
// @Tags zones
// @Produce json
// @Param domain path string true "Domain"
// @Success 200 {object} zone.RecordSet
// @Security ApiKeyAuth
// @Router /zones/{domain} [get]
func (h *Handler) GetZone(c *gin.Context) {
	rs := h.store.LoadAll()[c.Param("domain")]
	if rs == nil {
		rs = zone.RecordSet{}
	}
	c.JSON(http.StatusOK, rs)
}

// UpsertZone godoc
// @Summary Create or replace a zone
// @Description Validates the submitted record set, renders the zone file and persists both artifacts. Writes always replace the previous record set.
// @Tags zones
// @Accept json
// @Produce json
// @Param domain path string true "Domain"
// @Param records body zone.RecordSet true "Record set"
// @Success 200 {object} models.WriteResponse
// @Failure 422 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /zones/{domain} [put]
func (h *Handler) UpsertZone(c *gin.Context) {
	domain := c.Param("domain")

	var rs zone.RecordSet
	if err := c.ShouldBindJSON(&rs); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ValidationErrorResponse{
			Errors: []string{"record set is not an object"},
		})
		return
	}

	if errs := zone.Validate(rs); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, models.ValidationErrorResponse{Errors: errs})
		return
	}

	res, err := h.store.Write(domain, rs)
	if err != nil {
		h.logger.Error("zone write failed", "domain", domain, "err", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	h.record(changelog.Entry{
		Domain:   domain,
		Action:   changelog.ActionWrite,
		Location: string(res.Location),
		Path:     res.Path,
		Warning:  res.Warning,
	})

	c.JSON(http.StatusOK, models.WriteResponse{
		Status:   "ok",
		Path:     res.Path,
		Location: string(res.Location),
		Warning:  res.Warning,
	})
}

// GetZoneFile godoc
// @Summary Download the rendered zone file
// @Description Returns the BIND-style zone text for a stored domain
// @Tags zones
// @Produce plain
// @Param domain path string true "Domain"
// @Success 200 {string} string
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /zones/{domain}/file [get]
func (h *Handler) GetZoneFile(c *gin.Context) {
	domain := c.Param("domain")
	rs, ok := h.store.LoadAll()[domain]
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "zone not found: " + domain})
		return
	}
	c.String(http.StatusOK, zone.Render(domain, rs))
}

// DeleteZone godoc
// @Summary Delete a zone
// @Description Removes the zone text and snapshot from both storage locations, best-effort
// @Tags zones
// @Produce json
// @Param domain path string true "Domain"
// @Success 200 {object} models.DeleteResponse
// @Security ApiKeyAuth
// @Router /zones/{domain} [delete]
func (h *Handler) DeleteZone(c *gin.Context) {
	domain := c.Param("domain")
	removed := h.store.Delete(domain)

	h.record(changelog.Entry{Domain: domain, Action: changelog.ActionDelete})

	c.JSON(http.StatusOK, models.DeleteResponse{Status: "ok", Removed: removed})
}
