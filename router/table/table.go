package table

import (
	"github.com/indigo-web/coyote/http"
	"github.com/indigo-web/coyote/http/method"
	"github.com/indigo-web/coyote/http/status"
)

type (
	Handler      func(*http.Request) *http.Response
	ErrorHandler func(*http.Request, error) *http.Response
	// Middleware wraps a handler. Middlewares are applied in the order of registration,
	// so the first one registered is the outermost.
	Middleware func(next Handler) Handler
)

// Route is a single entry of the table. Path is matched exactly and case-sensitively.
type Route struct {
	Method  method.Method
	Path    string
	Handler Handler
}

// Router is a static ordered table of routes. Requests are matched against the routes in
// the order of registration, the first exact (method, path) match wins. Requests matching
// no route go to the fallback handler.
type Router struct {
	routes      []Route
	fallback    Handler
	middlewares []Middleware
	errHandlers map[status.Code]ErrorHandler
}

// New returns a router answering everything with the fallback until routes are added.
func New(fallback Handler) *Router {
	return &Router{
		fallback:    fallback,
		errHandlers: make(map[status.Code]ErrorHandler),
	}
}

// Route appends a route to the end of the table.
func (r *Router) Route(m method.Method, path string, handler Handler) *Router {
	r.routes = append(r.routes, Route{
		Method:  m,
		Path:    path,
		Handler: handler,
	})

	return r
}

// Get is a shortcut for Route(method.GET, ...)
func (r *Router) Get(path string, handler Handler) *Router {
	return r.Route(method.GET, path, handler)
}

// Post is a shortcut for Route(method.POST, ...)
func (r *Router) Post(path string, handler Handler) *Router {
	return r.Route(method.POST, path, handler)
}

// Use adds middlewares wrapping every handler, the fallback included.
func (r *Router) Use(middlewares ...Middleware) *Router {
	r.middlewares = append(r.middlewares, middlewares...)
	return r
}

// RouteError sets a custom handler for errors of the given codes. Errors of codes without
// a handler are rendered by http.Response.Error.
func (r *Router) RouteError(handler ErrorHandler, codes ...status.Code) *Router {
	for _, code := range codes {
		r.errHandlers[code] = handler
	}

	return r
}

// Routes returns the table in its matching order.
func (r *Router) Routes() []Route {
	return r.routes
}

// Match returns the handler of the first route matching the method and path, or the
// fallback if there's none.
func (r *Router) Match(m method.Method, path string) Handler {
	for _, route := range r.routes {
		if route.Method == m && route.Path == path {
			return route.Handler
		}
	}

	return r.fallback
}

func (r *Router) OnRequest(request *http.Request) *http.Response {
	handler := r.Match(request.Method, request.Path)
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		handler = r.middlewares[i](handler)
	}

	return handler(request)
}

func (r *Router) OnError(request *http.Request, err error) *http.Response {
	if handler, found := r.errHandlers[status.CodeOf(err)]; found {
		return handler(request, err)
	}

	return http.Error(request, err)
}
