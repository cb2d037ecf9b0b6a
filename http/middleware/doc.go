/*
The middleware package defines what a middleware is and a set of basic middlewares,
the chief of which is MethodOverride.

# Method override

HTML forms can only send GET and POST.
[MethodOverride] and [NewOverride] let a POST stand in for PUT, PATCH, or DELETE
by naming the method in the "_method" query parameter:

	<form method="POST" action="/items/1?_method=PATCH">

The override only applies to POST, only to those three methods spelled in uppercase,
and only looks at the first "_method" in the query string.
Nothing but the request's method is changed.

Because routers match on method, the override must run before routing:

	h := middleware.NewOverride(router)

# Others

The other available middlewares are:
- CORS
- InjectIPAddress
- LogRequest
- RateLimit
- ReportPanic
- RequestID

Middlewares that need context from the request, like LogRequest,
are chained around the override with [Chain]:

	h := middleware.Chain(
		middleware.NewOverride(router),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(log),
	)
*/
package middleware
