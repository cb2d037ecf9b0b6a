package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/override"
	"github.com/xy-planning-network/override/http/middleware"
)

func TestRequestID(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	seen := make([]string, 0, 2)
	h := middleware.RequestID()(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
		val, ok := rx.Context().Value(override.RequestIDKey).(string)
		require.True(t, ok)
		seen = append(seen, val)
	}))

	// Act
	h.ServeHTTP(w, r)
	h.ServeHTTP(w, r)

	// Assert
	require.Len(t, seen, 2)
	require.NotEqual(t, seen[0], seen[1])
	for _, id := range seen {
		_, err := uuid.Parse(id)
		require.Nil(t, err)
	}
}
