package router_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/override"
	"github.com/xy-planning-network/override/http/middleware"
	"github.com/xy-planning-network/override/http/router"
)

// echo writes back the name of the route and the id in the path.
func echo(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, name, " ", mux.Vars(r)["id"])
	}
}

func newItemsRouter() *router.Router {
	r := router.New(override.Testing)
	r.HandleRoutes([]router.Route{
		{Path: "/items", Method: http.MethodGet, Handler: echo("list")},
		{Path: "/items", Method: http.MethodPost, Handler: echo("create")},
		{Path: "/items/{id}", Method: http.MethodPut, Handler: echo("rename")},
		{Path: "/items/{id}", Method: http.MethodPatch, Handler: echo("toggle")},
		{Path: "/items/{id}", Method: http.MethodDelete, Handler: echo("remove")},
	})

	return r
}

func TestRouterBehindOverride(t *testing.T) {
	h := middleware.NewOverride(newItemsRouter())

	for _, tc := range []struct {
		name         string
		method       string
		target       string
		expectedCode int
		expectedBody string
	}{
		{"List", http.MethodGet, "/items", http.StatusOK, "list "},
		{"Create", http.MethodPost, "/items", http.StatusOK, "create "},
		{"Create-Ignores-Get", http.MethodPost, "/items?_method=GET", http.StatusOK, "create "},
		{"Form-Rename", http.MethodPost, "/items/7?_method=PUT", http.StatusOK, "rename 7"},
		{"Form-Toggle", http.MethodPost, "/items/7?_method=PATCH", http.StatusOK, "toggle 7"},
		{"Form-Remove", http.MethodPost, "/items/7?_method=DELETE", http.StatusOK, "remove 7"},
		{"Real-Delete", http.MethodDelete, "/items/7", http.StatusOK, "remove 7"},
		{"Delete-Not-Overridden", http.MethodDelete, "/items/7?_method=PUT", http.StatusOK, "remove 7"},
		{"Form-No-Override", http.MethodPost, "/items/7", http.StatusMethodNotAllowed, ""},
		{"Form-Lowercase", http.MethodPost, "/items/7?_method=delete", http.StatusMethodNotAllowed, ""},
		{"Get-Not-Overridden", http.MethodGet, "/items/7?_method=DELETE", http.StatusMethodNotAllowed, ""},
		{"Not-Found", http.MethodPost, "/nope?_method=DELETE", http.StatusNotFound, "404 page not found\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, tc.target, nil)

			// Act
			h.ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.expectedCode, w.Code)
			require.Equal(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestRouterWithoutOverride(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/items/7?_method=DELETE", nil)

	// Act
	newItemsRouter().ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouterHandlers(t *testing.T) {
	// Arrange
	rt := newItemsRouter()
	rt.HandleNotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	rt.HandleMethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "use ?_method=", http.StatusMethodNotAllowed)
	})
	h := middleware.NewOverride(rt)

	// Act
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	// Assert
	require.Equal(t, http.StatusTeapot, w.Code)

	// Act
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/items/1", nil))

	// Assert
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	require.Equal(t, "use ?_method=\n", w.Body.String())
}

func TestRouterMiddlewareOrder(t *testing.T) {
	// Arrange
	tag := func(name string) middleware.Adapter {
		return func(h http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Add("X-Order", name)
				h.ServeHTTP(w, r)
			})
		}
	}

	rt := router.New(override.Testing)
	rt.OnEveryRequest(tag("every"))
	rt.HandleRoutes(
		[]router.Route{{
			Path:        "/items/{id}",
			Method:      http.MethodPut,
			Handler:     echo("rename"),
			Middlewares: []middleware.Adapter{tag("route")},
		}},
		tag("group"),
	)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/items/3?_method=PUT", nil)

	// Act
	middleware.NewOverride(rt).ServeHTTP(w, r)

	// Assert
	require.Equal(t, "rename 3", w.Body.String())
	require.Equal(t, []string{"every", "group", "route"}, w.Header().Values("X-Order"))
}

func TestSubrouter(t *testing.T) {
	// Arrange
	rt := router.New(override.Testing)
	api := rt.Subrouter("/api/v1")

	// Act + Assert
	require.ErrorIs(t, rt.Ready(context.Background()), override.ErrNotReady)

	// Arrange
	api.Handle(router.Route{Path: "/items/{id}", Method: http.MethodDelete, Handler: echo("remove")})
	w := httptest.NewRecorder()

	// Act
	middleware.NewOverride(rt).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/items/9?_method=DELETE", nil))

	// Assert
	require.Nil(t, rt.Ready(context.Background()))
	require.Equal(t, "remove 9", w.Body.String())
}

func TestRouterReady(t *testing.T) {
	// Arrange
	rt := router.New(override.Testing)
	o := middleware.NewOverride(rt)

	// Act + Assert
	require.ErrorIs(t, o.Ready(context.Background()), override.ErrNotReady)

	// Arrange
	rt.Handle(router.Route{Path: "/", Method: http.MethodGet, Handler: echo("root")})

	// Act + Assert
	require.Nil(t, o.Ready(context.Background()))

	// Arrange
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act + Assert
	require.ErrorIs(t, o.Ready(ctx), context.Canceled)
}

func TestRouterRecoversPanics(t *testing.T) {
	// Arrange
	rt := router.New(override.Staging)
	rt.Handle(router.Route{
		Path:    "/items/{id}",
		Method:  http.MethodDelete,
		Handler: func(w http.ResponseWriter, r *http.Request) { panic("hit a rock") },
	})
	w := httptest.NewRecorder()

	// Act
	middleware.NewOverride(rt).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/items/1?_method=DELETE", nil))

	// Assert
	require.Equal(t, http.StatusInternalServerError, w.Code)
}
