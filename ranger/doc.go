/*
Package ranger initializes and manages an app with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type, constructed with [New].

[*Ranger.Guide] begins the app's web server.
By default, [*Ranger.Guide] listens on [DefaultHost]:[DefaultPort] (localhost:3000).
Stop that web server with [*Ranger.Shutdown] or by sending a signal [*Ranger.Guide] listens for.

Every request passes through, in order:
  - the readiness check answering GET [ReadyPath]
  - the before-routing middlewares; cf. [WithBeforeRouting]
  - the method override; cf. [middleware.Override]
  - the router, and the middlewares registered with each route

Routes are registered on the embedded [*router.Router]
and so match on the overridden method:
a form POSTing to "/items/1?_method=DELETE" reaches the DELETE route for "/items/{id}".

# Configuration

A developer configures an app through environment variables and [Option].
Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - BASE_URL: the origin allowed to make cross-origin requests; default: none, CORS is off
  - ENVIRONMENT: the environment the application is running in; cf. [override.Environment]
  - FORCE_HTTPS: whether to redirect plain HTTP requests to HTTPS; default: false
  - HOST: the host the application is running on; default: localhost
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - PORT: the port the application should listen on; default: 3000
  - RATE_LIMIT_RPS: requests per second allowed per IP address; default: 0, rate limiting is off
  - RATE_LIMIT_BURST: requests allowed in a burst per IP address; default: 20
  - SENTRY_DSN: the Sentry project errors and panics are reported to; default: none
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
*/
package ranger
