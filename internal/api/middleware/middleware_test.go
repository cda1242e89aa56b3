package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/zonekit/zonekeeper/internal/api/middleware"
)

func protectedRouter(key string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequireAPIKey(key))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestRequireAPIKey(t *testing.T) {
	tests := []struct {
		name       string
		expected   string
		sent       string
		wantStatus int
	}{
		{name: "no key configured", expected: "", sent: "", wantStatus: http.StatusOK},
		{name: "correct key", expected: "secret", sent: "secret", wantStatus: http.StatusOK},
		{name: "missing key", expected: "secret", sent: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong key", expected: "secret", sent: "nope", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := protectedRouter(tt.expected)
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.sent != "" {
				req.Header.Set("X-API-Key", tt.sent)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.GET("/zones", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/zones", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, "api request")
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "path=/zones")
	assert.Contains(t, out, "status=200")
}
