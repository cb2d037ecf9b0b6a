/*
Package logger provides leveled logging through the [Logger] interface
and an implementation of it, [StdLogger].

An implementation of Logger is initialized at a [LogLevel]
and only emits messages at or above that level of importance.
For example, a [StdLogger] built with [WithLevel]([LogLevelWarn])
only produces messages for [*StdLogger.Warn], [*StdLogger.Error], and [*StdLogger.Fatal].

Log messages are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2026/04/28 15:55:21 [INFO] example/main.go:43 'deleted item' log_context: {"data":{"id":3}}

The log context is a JSON-encoded [LogContext].
It carries data inessential to the message proper.

When SENTRY_DSN is set, [New] returns a [SentryLogger],
which additionally reports any [LogContext.Error] logged at WARN or above.
*/
package logger
