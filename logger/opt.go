package logger

import "log"

// An OptFn is a functional option configuring a StdLogger when constructing a new one.
type OptFn func(*StdLogger)

// WithEnv sets the environment StdLogger is operating in.
func WithEnv(env string) OptFn {
	return func(l *StdLogger) {
		l.env = env
	}
}

// WithLevel sets the log level StdLogger uses.
func WithLevel(level LogLevel) OptFn {
	return func(l *StdLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger StdLogger writes to.
func WithLogger(log *log.Logger) OptFn {
	return func(l *StdLogger) {
		l.l = log
	}
}
