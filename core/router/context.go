package router

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate checks struct tags on bound request payloads. The tag name
// matches the `binding` tags used across request models
var validate = func() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}()

// Context carries the request, response writer, route parameters and
// per-request values through the handler chain
type Context struct {
	Request *http.Request
	Writer  *ResponseWriter

	params map[string]string
	values map[string]any
}

func newContext(w http.ResponseWriter, req *http.Request) *Context {
	return &Context{
		Request: req,
		Writer:  &ResponseWriter{ResponseWriter: w},
	}
}

// Param returns the named route parameter
func (c *Context) Param(name string) string {
	return c.params[name]
}

// Query returns the named query-string parameter
func (c *Context) Query(name string) string {
	return c.Request.URL.Query().Get(name)
}

// Set stores a per-request value
func (c *Context) Set(key string, value any) {
	if c.values == nil {
		c.values = make(map[string]any)
	}
	c.values[key] = value
}

// Get retrieves a per-request value
func (c *Context) Get(key string) (any, bool) {
	value, ok := c.values[key]
	return value, ok
}

// JSON writes a JSON response with the given status code
func (c *Context) JSON(status int, body any) error {
	c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.Writer.WriteHeader(status)
	return json.NewEncoder(c.Writer).Encode(body)
}

// Redirect sends an HTTP redirect to location
func (c *Context) Redirect(status int, location string) error {
	http.Redirect(c.Writer, c.Request, location, status)
	return nil
}

// ShouldBindJSON decodes the request body into obj and validates it
func (c *Context) ShouldBindJSON(obj any) error {
	if err := json.NewDecoder(c.Request.Body).Decode(obj); err != nil {
		return err
	}
	return validate.Struct(obj)
}

// ClientIP returns the caller's IP, honoring proxy headers
func (c *Context) ClientIP() string {
	if xff := c.Request.Header.Get("X-Forwarded-For"); xff != "" {
		if i := strings.Index(xff, ","); i >= 0 {
			return strings.TrimSpace(xff[:i])
		}
		return strings.TrimSpace(xff)
	}
	if realIP := c.Request.Header.Get("X-Real-Ip"); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}

// ResponseWriter wraps http.ResponseWriter to record the status code
type ResponseWriter struct {
	http.ResponseWriter
	status  int
	written bool
}

// WriteHeader records the status before delegating
func (w *ResponseWriter) WriteHeader(status int) {
	if w.written {
		return
	}
	w.status = status
	w.written = true
	w.ResponseWriter.WriteHeader(status)
}

// Write marks the response as written with an implicit 200
func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.status = http.StatusOK
		w.written = true
	}
	return w.ResponseWriter.Write(b)
}

// Status returns the response status code, 200 if unset
func (w *ResponseWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// Written reports whether anything has been written to the response
func (w *ResponseWriter) Written() bool {
	return w.written
}
