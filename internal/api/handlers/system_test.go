package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zonekit/zonekeeper/internal/api/models"
)

func TestHealth(t *testing.T) {
	env := newTestEnv(t, false)

	w := env.perform(http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestStats(t *testing.T) {
	env := newTestEnv(t, false)

	w := env.perform(http.MethodPut, "/api/v1/zones/example.com", validBody)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.perform(http.MethodGet, "/api/v1/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.ZoneCount)
	assert.GreaterOrEqual(t, resp.UptimeSeconds, int64(0))
	assert.Positive(t, resp.GoRoutines)
	assert.Positive(t, resp.MemoryAllocMB)
}
