package logger

import (
	"fmt"
	"runtime"

	"github.com/getsentry/sentry-go"
)

// A SentryLogger writes through a StdLogger
// and reports errors at or above LogLevelWarn to Sentry.
type SentryLogger struct {
	l *StdLogger
}

// NewSentryLogger initializes the Sentry client for dsn.
// If that fails, the StdLogger is returned on its own.
func NewSentryLogger(l *StdLogger, dsn string) Logger {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:          dsn,
		Environment:  l.env,
		IgnoreErrors: []string{"write: broken pipe"},
	})
	if err != nil {
		l.Error(fmt.Sprintf("unable to init Sentry: %s", err), nil)
		return l
	}

	return &SentryLogger{l: l}
}

// Debug writes a debug log.
func (sl *SentryLogger) Debug(msg string, ctx *LogContext) {
	sl.l.Debug(msg, sl.withCaller(ctx))
}

// Error writes an error log and sends it to Sentry.
func (sl *SentryLogger) Error(msg string, ctx *LogContext) {
	sl.l.Error(msg, sl.withCaller(ctx))
	sl.send(LogLevelError, sentry.LevelError, ctx)
}

// Fatal writes a fatal log and sends it to Sentry.
func (sl *SentryLogger) Fatal(msg string, ctx *LogContext) {
	sl.l.Fatal(msg, sl.withCaller(ctx))
	sl.send(LogLevelFatal, sentry.LevelFatal, ctx)
}

// Info writes an info log.
func (sl *SentryLogger) Info(msg string, ctx *LogContext) {
	sl.l.Info(msg, sl.withCaller(ctx))
}

// Warn writes a warning log and sends it to Sentry.
func (sl *SentryLogger) Warn(msg string, ctx *LogContext) {
	sl.l.Warn(msg, sl.withCaller(ctx))
	sl.send(LogLevelWarn, sentry.LevelWarning, ctx)
}

// LogLevel returns the LogLevel set for the SentryLogger.
func (sl *SentryLogger) LogLevel() LogLevel { return sl.l.LogLevel() }

// withCaller pins the call site to the SentryLogger's caller,
// since the StdLogger would otherwise report this file.
func (sl *SentryLogger) withCaller(ctx *LogContext) *LogContext {
	if ctx != nil && ctx.Caller != "" {
		return ctx
	}

	var lc LogContext
	if ctx != nil {
		lc = *ctx
	}
	_, file, line, _ := runtime.Caller(2)
	lc.Caller = callSite(file, line)

	return &lc
}

// send ships the LogContext.Error to Sentry,
// including any additional data from LogContext.
func (sl *SentryLogger) send(ll LogLevel, level sentry.Level, ctx *LogContext) {
	if sl.l.LogLevel() > ll || ctx == nil || ctx.Error == nil {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		if ctx.Request != nil {
			scope.SetRequest(ctx.Request)
		}

		if ctx.Data != nil {
			scope.SetExtra("data", ctx.Data)
		}

		scope.SetLevel(level)
		sentry.CaptureException(ctx.Error)
	})
}
