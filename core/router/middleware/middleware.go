package middleware

import (
	"net/http"

	"scout/core/config"
	"scout/core/router"
)

// ApplyConfigurableMiddleware wires the middleware enabled by configuration
func ApplyConfigurableMiddleware(r *router.Router, cfg *config.MiddlewareConfig) {
	r.Use(Recovery())

	if cfg.CORSEnabled {
		r.Use(CORSMiddleware(cfg.CORSAllowedOrigins))
	}
}

// Recovery converts handler panics into 500 responses
func Recovery() router.Middleware {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(c *router.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = c.JSON(http.StatusInternalServerError, map[string]any{
						"error": "Internal server error",
					})
				}
			}()
			return next(c)
		}
	}
}

// CORSMiddleware allows cross-origin requests from the given origins.
// An empty or ["*"] list allows any origin
func CORSMiddleware(allowedOrigins []string) router.Middleware {
	allowAll := len(allowedOrigins) == 0
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		if origin != "" {
			allowed[origin] = struct{}{}
		}
	}

	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(c *router.Context) error {
			origin := c.Request.Header.Get("Origin")
			if origin != "" {
				if _, ok := allowed[origin]; ok || allowAll {
					header := c.Writer.Header()
					header.Set("Access-Control-Allow-Origin", origin)
					header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
					header.Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Api-Key")
				}
			}

			if c.Request.Method == http.MethodOptions {
				c.Writer.WriteHeader(http.StatusNoContent)
				return nil
			}

			return next(c)
		}
	}
}
