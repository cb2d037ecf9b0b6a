package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// OverrideParam is the query parameter naming the method a POST stands in for.
const OverrideParam = "_method"

// overridable maps the accepted OverrideParam values to the method they set.
// Matching is exact and case-sensitive.
var overridable = map[string]string{
	http.MethodDelete: http.MethodDelete,
	http.MethodPatch:  http.MethodPatch,
	http.MethodPut:    http.MethodPut,
}

// A Readier reports whether it is able to handle requests.
type Readier interface {
	Ready(ctx context.Context) error
}

// An Override lets clients limited to GET and POST, such as HTML forms,
// reach handlers for PUT, PATCH, and DELETE.
//
// A POST whose query string carries "_method=PUT", "_method=PATCH", or "_method=DELETE"
// is handed to the wrapped handler with its method replaced.
// Any other request is handed over as is.
//
// Only the query string is consulted:
// the body is never read, so form and multipart payloads reach the wrapped handler intact.
//
//	<form method="POST" action="/items/1?_method=DELETE">
//	  <button type="submit">Delete item</button>
//	</form>
type Override struct {
	next http.Handler
}

// NewOverride constructs an *Override wrapping next.
func NewOverride(next http.Handler) *Override {
	return &Override{next: next}
}

// MethodOverride is NewOverride as an Adapter.
//
// MethodOverride has to run before routing.
// With gorilla/mux that means wrapping the router itself,
// since mux.Router.Use middlewares run after a route, and its method, has matched.
func MethodOverride() Adapter {
	return func(h http.Handler) http.Handler {
		return NewOverride(h)
	}
}

// Ready reports the readiness of the wrapped handler, if it is a Readier.
// Otherwise, the wrapped handler is always ready.
func (o *Override) Ready(ctx context.Context) error {
	if rd, ok := o.next.(Readier); ok {
		return rd.Ready(ctx)
	}

	return nil
}

// ServeHTTP rewrites r.Method when overridden and calls the wrapped handler.
func (o *Override) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if method, ok := overrideMethod(r); ok {
		r.Method = method
	}

	o.next.ServeHTTP(w, r)
}

// overrideMethod returns the method r should be handled as, if any.
func overrideMethod(r *http.Request) (string, bool) {
	if r.Method != http.MethodPost || r.URL == nil {
		return "", false
	}

	val, ok := firstQueryValue(r.URL.RawQuery, OverrideParam)
	if !ok {
		return "", false
	}

	method, ok := overridable[val]
	return method, ok
}

// firstQueryValue scans the "&" separated pairs of query in order
// and returns the value of the first whose key is key.
//
// Unlike url.ParseQuery, no pair is dropped:
// a key or value failing to unescape is compared as written,
// so a malformed first occurrence still shadows later ones.
func firstQueryValue(query, key string) (string, bool) {
	for query != "" {
		var pair string
		pair, query, _ = strings.Cut(query, "&")
		if pair == "" {
			continue
		}

		k, v, _ := strings.Cut(pair, "=")
		if unescape(k) == key {
			return unescape(v), true
		}
	}

	return "", false
}

func unescape(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}

	return s
}
