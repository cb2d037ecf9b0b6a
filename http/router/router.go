package router

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/override"
	"github.com/xy-planning-network/override/http/middleware"
)

// A Route maps a path and HTTP method to an [http.HandlerFunc].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
type Route struct {
	Path        string
	Method      string
	Handler     http.HandlerFunc
	Middlewares []middleware.Adapter
}

// Router routes requests to the handlers registered for their path and method.
//
// Router matches on the request's method as it arrives,
// so a method override has to wrap the Router, not be registered on it.
type Router struct {
	Env           override.Environment
	everyReqStack []middleware.Adapter
	r             *mux.Router
	routes        *atomic.Int64
}

// New constructs a [*Router] for the given environment.
func New(env override.Environment) *Router {
	return &Router{Env: env, r: mux.NewRouter(), routes: new(atomic.Int64)}
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleMethodNotAllowed sets the provided [http.HandlerFunc] as the function
// for when a registered path is matched but none of its methods are.
func (r *Router) HandleMethodNotAllowed(handler http.HandlerFunc) {
	r.r.MethodNotAllowedHandler = middleware.Chain(handler, r.everyReqStack...)
}

// HandleNotFound sets the provided [http.HandlerFunc] as the default function
// for when no other registered Route is matched.
func (r *Router) HandleNotFound(handler http.HandlerFunc) {
	r.r.NotFoundHandler = middleware.Chain(handler, r.everyReqStack...)
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := make([]middleware.Adapter, 0, len(r.everyReqStack)+len(middlewares)+len(route.Middlewares)+1)
		mws = append(mws, middleware.ReportPanic(r.Env))
		mws = append(mws, r.everyReqStack...)
		mws = append(mws, middlewares...)
		mws = append(mws, route.Middlewares...)

		r.r.Handle(route.Path, middleware.Chain(route.Handler, mws...)).Methods(route.Method)
		r.routes.Add(1)
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
//
// Only routes registered afterwards get the middlewares.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// Ready reports an error until the Router has at least one route to send requests to.
func (r *Router) Ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if r.routes.Load() == 0 {
		return fmt.Errorf("%w: no routes registered", override.ErrNotReady)
	}

	return nil
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// Subrouter constructs a [Router] that handles requests to endpoints matching the prefix.
//
// e.g., r.Subrouter("/api/v1") handles requests to endpoints like /api/v1/items
//
// Routes registered on the subrouter count towards the parent's readiness.
func (r *Router) Subrouter(prefix string) *Router {
	return &Router{
		Env:           r.Env,
		everyReqStack: append([]middleware.Adapter(nil), r.everyReqStack...),
		r:             r.r.PathPrefix(prefix).Subrouter(),
		routes:        r.routes,
	}
}
