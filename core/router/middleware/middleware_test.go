package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"scout/core/config"
	"scout/core/router"

	"github.com/stretchr/testify/assert"
)

func performRequest(r *router.Router, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func okHandler(c *router.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"status": "ok"})
}

func TestApplyConfigurableMiddlewareEnablesCORS(t *testing.T) {
	r := router.New()
	ApplyConfigurableMiddleware(r, &config.MiddlewareConfig{
		CORSEnabled:        true,
		CORSAllowedOrigins: []string{"https://example.com"},
	})
	r.GET("/", okHandler)

	w := performRequest(r, http.MethodGet, "/", map[string]string{
		"Origin": "https://example.com",
	})
	assert.Equal(t, "https://example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = performRequest(r, http.MethodGet, "/", map[string]string{
		"Origin": "https://evil.example",
	})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestApplyConfigurableMiddlewareDisabledCORS(t *testing.T) {
	r := router.New()
	ApplyConfigurableMiddleware(r, &config.MiddlewareConfig{CORSEnabled: false})
	r.GET("/", okHandler)

	w := performRequest(r, http.MethodGet, "/", map[string]string{
		"Origin": "https://example.com",
	})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecoveryConvertsPanics(t *testing.T) {
	r := router.New()
	ApplyConfigurableMiddleware(r, &config.MiddlewareConfig{})
	r.GET("/boom", func(c *router.Context) error {
		panic("boom")
	})

	w := performRequest(r, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
