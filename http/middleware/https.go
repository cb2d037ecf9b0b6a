package middleware

import (
	"net/http"
	"net/url"
)

// ForceHTTPS redirects HTTP requests to HTTPS.
//
// The "X-Forwarded-Proto" is used to check whether HTTP was requested due to an app
// running behind a proxy.
//
// The redirect is 308 Permanent Redirect, so a form's POST and its query string,
// "_method" included, are sent again as they were.
//
// If enabled is false, NoopAdapter returns and this middleware does nothing.
func ForceHTTPS(enabled bool) Adapter {
	if !enabled {
		return NoopAdapter
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-Forwarded-Proto") == "https" || r.TLS != nil {
				handler.ServeHTTP(w, r)
				return
			}

			u := new(url.URL)
			*u = *r.URL
			u.Scheme = "https"
			u.Host = r.Host

			http.Redirect(w, r, u.String(), http.StatusPermanentRedirect)
		})
	}
}
