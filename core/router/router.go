package router

import (
	"net/http"
	"strings"
)

// HandlerFunc is the signature of all route handlers
type HandlerFunc func(*Context) error

// Middleware wraps a handler with additional behavior
type Middleware func(HandlerFunc) HandlerFunc

type route struct {
	method   string
	segments []string
	handler  HandlerFunc
}

// Router is a small net/http router with named parameters (:id), catch-all
// parameters (*filepath), route groups and a middleware chain
type Router struct {
	routes      []*route
	middlewares []Middleware
	notFound    HandlerFunc
}

// New creates a new Router
func New() *Router {
	return &Router{
		notFound: func(c *Context) error {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "Not found"})
		},
	}
}

// Use appends a middleware to the global chain. Middlewares apply to every
// route, including routes registered before the Use call
func (r *Router) Use(mw Middleware) {
	r.middlewares = append(r.middlewares, mw)
}

// Handle registers a handler for the given method and pattern
func (r *Router) Handle(method, pattern string, handler HandlerFunc) {
	r.routes = append(r.routes, &route{
		method:   method,
		segments: splitPath(pattern),
		handler:  handler,
	})
}

func (r *Router) GET(pattern string, h HandlerFunc)    { r.Handle(http.MethodGet, pattern, h) }
func (r *Router) POST(pattern string, h HandlerFunc)   { r.Handle(http.MethodPost, pattern, h) }
func (r *Router) PUT(pattern string, h HandlerFunc)    { r.Handle(http.MethodPut, pattern, h) }
func (r *Router) PATCH(pattern string, h HandlerFunc)  { r.Handle(http.MethodPatch, pattern, h) }
func (r *Router) DELETE(pattern string, h HandlerFunc) { r.Handle(http.MethodDelete, pattern, h) }

// Group creates a route group with the given prefix
func (r *Router) Group(prefix string) *RouterGroup {
	return &RouterGroup{router: r, prefix: strings.TrimSuffix(prefix, "/")}
}

// Static serves files from dir under the given URL prefix
func (r *Router) Static(prefix, dir string) {
	fileServer := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
	r.GET(prefix+"/*filepath", func(c *Context) error {
		fileServer.ServeHTTP(c.Writer, c.Request)
		return nil
	})
}

// NotFound sets the handler invoked when no route matches
func (r *Router) NotFound(h HandlerFunc) {
	r.notFound = h
}

// ServeHTTP implements http.Handler
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	ctx := newContext(w, req)

	handler := r.notFound
	pathSegments := splitPath(req.URL.Path)
	for _, rt := range r.routes {
		if rt.method != req.Method {
			continue
		}
		params, ok := match(rt.segments, pathSegments)
		if !ok {
			continue
		}
		ctx.params = params
		handler = rt.handler
		break
	}

	// Apply the global middleware chain, first registered outermost
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		handler = r.middlewares[i](handler)
	}

	if err := handler(ctx); err != nil && !ctx.Writer.Written() {
		_ = ctx.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
}

// Run starts the HTTP server on the given port (":8100")
func (r *Router) Run(port string) error {
	return http.ListenAndServe(port, r)
}

// RouterGroup registers routes under a shared prefix and middleware chain
type RouterGroup struct {
	router      *Router
	prefix      string
	middlewares []Middleware
}

// Use appends a middleware applied to every route registered on this group
// after the call
func (g *RouterGroup) Use(mw Middleware) {
	g.middlewares = append(g.middlewares, mw)
}

// Group creates a nested group
func (g *RouterGroup) Group(prefix string) *RouterGroup {
	return &RouterGroup{
		router:      g.router,
		prefix:      g.prefix + strings.TrimSuffix(prefix, "/"),
		middlewares: append([]Middleware{}, g.middlewares...),
	}
}

// Handle registers a handler with the group prefix and middleware applied
func (g *RouterGroup) Handle(method, pattern string, handler HandlerFunc) {
	for i := len(g.middlewares) - 1; i >= 0; i-- {
		handler = g.middlewares[i](handler)
	}
	g.router.Handle(method, g.prefix+pattern, handler)
}

func (g *RouterGroup) GET(pattern string, h HandlerFunc)    { g.Handle(http.MethodGet, pattern, h) }
func (g *RouterGroup) POST(pattern string, h HandlerFunc)   { g.Handle(http.MethodPost, pattern, h) }
func (g *RouterGroup) PUT(pattern string, h HandlerFunc)    { g.Handle(http.MethodPut, pattern, h) }
func (g *RouterGroup) PATCH(pattern string, h HandlerFunc)  { g.Handle(http.MethodPatch, pattern, h) }
func (g *RouterGroup) DELETE(pattern string, h HandlerFunc) { g.Handle(http.MethodDelete, pattern, h) }

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// match compares pattern segments against path segments, collecting named
// (:name) and catch-all (*name) parameters
func match(pattern, path []string) (map[string]string, bool) {
	params := map[string]string{}
	for i, seg := range pattern {
		if strings.HasPrefix(seg, "*") {
			params[seg[1:]] = strings.Join(path[i:], "/")
			return params, true
		}
		if i >= len(path) {
			return nil, false
		}
		if strings.HasPrefix(seg, ":") {
			params[seg[1:]] = path[i]
			continue
		}
		if seg != path[i] {
			return nil, false
		}
	}
	if len(path) != len(pattern) {
		return nil, false
	}
	return params, true
}
