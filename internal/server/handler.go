package server

import (
	"net/http"
	"strings"

	"go.uber.org/fx"
)

// HttpHandler is a route contributed to the server router. Name is
// either "/", the catch-all route, or an exact path optionally
// prefixed with a method, e.g. "GET /health".
type HttpHandler struct {
	Name    string
	Handler http.Handler
}

type HttpHandlerResult struct {
	fx.Out

	Handler *HttpHandler `group:"handlers"`
}

func AsHttpHandler(
	name string,
	handler http.Handler,
) HttpHandlerResult {
	return HttpHandlerResult{
		Handler: &HttpHandler{
			Name:    name,
			Handler: handler,
		},
	}
}

// Router dispatches requests on the raw request path. Unlike
// http.ServeMux it never cleans or redirects paths, so "//a" and
// "/a/../b" reach the catch-all route unchanged.
type Router struct {
	routes   map[string]http.Handler
	fallback http.Handler
}

// NewRouter registers all handlers on a fresh router.
func NewRouter(handlers []*HttpHandler) *Router {
	router := &Router{
		routes: make(map[string]http.Handler),
	}

	for _, handler := range handlers {
		if handler.Name == "/" {
			router.fallback = handler.Handler
			continue
		}

		method, path, found := strings.Cut(handler.Name, " ")
		if !found {
			method, path = "", handler.Name
		}

		router.routes[routeKey(method, path)] = handler.Handler
	}

	return router
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler(req).ServeHTTP(w, req)
}

func (r *Router) handler(req *http.Request) http.Handler {
	path := req.URL.Path

	if h, ok := r.routes[routeKey(req.Method, path)]; ok {
		return h
	}

	// GET routes also answer HEAD
	if req.Method == http.MethodHead {
		if h, ok := r.routes[routeKey(http.MethodGet, path)]; ok {
			return h
		}
	}

	if h, ok := r.routes[routeKey("", path)]; ok {
		return h
	}

	if r.fallback != nil {
		return r.fallback
	}

	return http.NotFoundHandler()
}

func routeKey(method, path string) string {
	return method + " " + path
}
