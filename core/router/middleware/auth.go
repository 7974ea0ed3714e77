package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"scout/core/config"
	"scout/core/router"
	"scout/core/types"

	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware guards the API group. A request is accepted when it carries
// either a valid X-Api-Key header or a Bearer token signed with the
// configured JWT secret. When neither an API key nor a JWT secret is
// configured the guard is disabled (development mode)
func AuthMiddleware(cfg *config.Config) router.Middleware {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(c *router.Context) error {
			if cfg.ApiKey == "" && cfg.JWTSecret == "" {
				return next(c)
			}

			if cfg.ApiKey != "" && c.Request.Header.Get("X-Api-Key") == cfg.ApiKey {
				return next(c)
			}

			if cfg.JWTSecret != "" {
				auth := c.Request.Header.Get("Authorization")
				if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
					claims, err := validateToken(token, cfg.JWTSecret)
					if err == nil {
						if sub, _ := claims.GetSubject(); sub != "" {
							c.Set("user_id", sub)
						}
						return next(c)
					}
				}
			}

			return c.JSON(http.StatusUnauthorized, types.ErrorResponse{Error: "Unauthorized"})
		}
	}
}

// validateToken parses an HMAC-signed JWT and returns its claims
func validateToken(tokenString, secret string) (jwt.Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return token.Claims, nil
}
