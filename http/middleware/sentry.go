package middleware

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/override"
)

// ReportPanic recovers panics in the handler it wraps and reports them to Sentry,
// answering with 500 Internal Server Error.
//
// In development, panics are left to net/http so they surface in the terminal.
func ReportPanic(env override.Environment) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         false,
		WaitForDelivery: true,
	})

	return func(h http.Handler) http.Handler {
		return sh.Handle(recoverWith500(h))
	}
}

// recoverWith500 writes the status sentryhttp leaves unwritten after recovering.
func recoverWith500(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				panic(err)
			}
		}()

		h.ServeHTTP(w, r)
	})
}
