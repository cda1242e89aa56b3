package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zonekit/zonekeeper/internal/api/models"
	"github.com/zonekit/zonekeeper/internal/changelog"
)

// ListChanges godoc
// @Summary Recent zone changes
// @Description Returns the most recent write/delete journal entries, newest first
// @Tags changes
// @Produce json
// @Param limit query int false "Maximum number of entries" default(50)
// @Success 200 {object} models.ChangesResponse
// @Failure 500 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /changes [get]
func (h *Handler) ListChanges(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	entries := []changelog.Entry{}
	if h.journal != nil {
		var err error
		entries, err = h.journal.Recent(limit)
		if err != nil {
			h.logger.Error("changelog query failed", "err", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "changelog unavailable"})
			return
		}
	}

	c.JSON(http.StatusOK, models.ChangesResponse{Entries: entries, Count: len(entries)})
}
