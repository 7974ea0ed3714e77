package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performRequest(r *Router, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouteMatching(t *testing.T) {
	r := New()
	r.GET("/health", func(c *Context) error {
		return c.JSON(http.StatusOK, map[string]any{"status": "ok"})
	})

	w := performRequest(r, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestNamedParams(t *testing.T) {
	r := New()
	var id string
	r.GET("/posts/:id", func(c *Context) error {
		id = c.Param("id")
		return c.JSON(http.StatusOK, nil)
	})

	w := performRequest(r, http.MethodGet, "/posts/42")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", id)
}

func TestCatchAllParams(t *testing.T) {
	r := New()
	var filepath string
	r.GET("/static/*filepath", func(c *Context) error {
		filepath = c.Param("filepath")
		return c.JSON(http.StatusOK, nil)
	})

	w := performRequest(r, http.MethodGet, "/static/css/app.css")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "css/app.css", filepath)
}

func TestMethodMismatchFallsToNotFound(t *testing.T) {
	r := New()
	r.GET("/posts", func(c *Context) error {
		return c.JSON(http.StatusOK, nil)
	})

	w := performRequest(r, http.MethodPost, "/posts")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGroupPrefixAndMiddleware(t *testing.T) {
	r := New()
	api := r.Group("/api")
	api.Use(func(next HandlerFunc) HandlerFunc {
		return func(c *Context) error {
			c.Set("seen", true)
			return next(c)
		}
	})

	var seen bool
	api.GET("/search", func(c *Context) error {
		v, _ := c.Get("seen")
		seen, _ = v.(bool)
		return c.JSON(http.StatusOK, nil)
	})

	w := performRequest(r, http.MethodGet, "/api/search")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, seen)
}

func TestGlobalMiddlewareOrder(t *testing.T) {
	r := New()
	var order []string
	r.Use(func(next HandlerFunc) HandlerFunc {
		return func(c *Context) error {
			order = append(order, "outer")
			return next(c)
		}
	})
	r.Use(func(next HandlerFunc) HandlerFunc {
		return func(c *Context) error {
			order = append(order, "inner")
			return next(c)
		}
	})
	r.GET("/", func(c *Context) error {
		order = append(order, "handler")
		return c.JSON(http.StatusOK, nil)
	})

	performRequest(r, http.MethodGet, "/")
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestHandlerErrorRendersInternalError(t *testing.T) {
	r := New()
	r.GET("/boom", func(c *Context) error {
		return assert.AnError
	})

	w := performRequest(r, http.MethodGet, "/boom")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
