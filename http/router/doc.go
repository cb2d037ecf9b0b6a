/*
Package router registers handlers by path and HTTP method.

[Router] is a thin wrapper around [github.com/gorilla/mux].
It leverages a standardized data model, a [Route], when registering how requests should be routed.
A path and an HTTP method comprise a [Route].
Before a request gets to a handler,
any middlewares added to the Route are called in the order they appear.

Many routes for a web server share identical middleware stacks,
so a Router registers many logically associated Routes in one call:

	r.HandleRoutes([]router.Route{
		{Path: "/items", Method: http.MethodPost, Handler: h.create},
		{Path: "/items/{id}", Method: http.MethodPut, Handler: h.rename},
		{Path: "/items/{id}", Method: http.MethodDelete, Handler: h.remove},
	})

HTML forms reach the PUT and DELETE routes above through a method override
wrapping the whole Router:

	http.ListenAndServe(addr, middleware.NewOverride(r))
*/
package router
