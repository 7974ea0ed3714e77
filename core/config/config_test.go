package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLoggingRequired(t *testing.T) {
	cfg := MiddlewareConfig{
		SkipLoggingPaths: []string{"/health", "/swagger"},
	}

	assert.False(t, cfg.IsLoggingRequired("/health"))
	assert.False(t, cfg.IsLoggingRequired("/swagger/index.html"))
	assert.True(t, cfg.IsLoggingRequired("/api/search"))
}

func TestNormalizePort(t *testing.T) {
	assert.Equal(t, ":8100", normalizePort(""))
	assert.Equal(t, ":8100", normalizePort("8100"))
	assert.Equal(t, ":9000", normalizePort(":9000"))
}

func TestNewConfigEnvOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("SEARCH_DEFAULT_LIMIT", "25")
	t.Setenv("SEARCH_CASE_SENSITIVE", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg := NewConfig()
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 25, cfg.SearchDefaultLimit)
	assert.True(t, cfg.SearchCaseSensitive)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Middleware.CORSAllowedOrigins)
}
