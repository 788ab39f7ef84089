// Package server wires the fixed handlers into a static, exact-match route
// table.
package server

import "net/http"

// Route binds one method and path to the handler that answers it.
type Route struct {
	Name    string
	Method  string
	Path    string
	Handler http.HandlerFunc
}

// Router dispatches on exact (method, path) equality. The query string is not
// part of the key, paths are matched byte for byte in their escaped form (so
// /%65vening is not /evening), and nothing is cleaned or redirected. Every request without a route gets NotFoundHandler.
//
// A Router is read-only once SetupRoutes returns it.
type Router struct {
	routes []Route
	static map[string]map[string]Route
}

// SetupRoutes builds the application router. It does not bind a socket.
func SetupRoutes() *Router {
	return newRouter([]Route{
		{Name: "hello", Method: http.MethodGet, Path: "/", Handler: HelloHandler},
		{Name: "evening", Method: http.MethodGet, Path: "/evening", Handler: EveningHandler},
	})
}

func newRouter(routes []Route) *Router {
	rt := &Router{
		routes: append([]Route(nil), routes...),
		static: make(map[string]map[string]Route),
	}
	for _, route := range rt.routes {
		paths, ok := rt.static[route.Method]
		if !ok {
			paths = make(map[string]Route)
			rt.static[route.Method] = paths
		}
		paths[route.Path] = route
	}
	return rt
}

// Match returns the route registered for method and path, if any.
func (rt *Router) Match(method, path string) (Route, bool) {
	route, ok := rt.static[method][path]
	return route, ok
}

// Routes returns a copy of the table in registration order.
func (rt *Router) Routes() []Route {
	return append([]Route(nil), rt.routes...)
}

// ServeHTTP implements http.Handler.
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if route, ok := rt.Match(r.Method, r.URL.EscapedPath()); ok {
		route.Handler(w, r)
		return
	}
	NotFoundHandler(w, r)
}
