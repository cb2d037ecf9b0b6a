package logger_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/override/logger"
)

func TestLogContextMarshalText(t *testing.T) {
	// Arrange
	lc := logger.LogContext{}

	// Act
	b, err := lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, []byte("{}"), b)

	// Arrange
	lc = logger.LogContext{Data: map[string]any{"test": "data"}, Caller: "ignored.go:1"}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"data":{"test":"data"}}`, string(b))

	// Arrange
	lc = logger.LogContext{Error: errors.New("test")}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"error":"test"}`, string(b))

	// Arrange
	body := "name=untouched"
	r := httptest.NewRequest(http.MethodPost, "https://example.com/items/1?_method=PUT", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	lc = logger.LogContext{Request: r}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	m := make(map[string]any)
	require.Nil(t, json.Unmarshal(b, &m))
	req := m["request"].(map[string]any)
	require.Equal(t, http.MethodPost, req["method"])
	require.Equal(t, "https://example.com/items/1?_method=PUT", req["url"])
	require.NotContains(t, string(b), body)
}

func TestLogContextString(t *testing.T) {
	lc := logger.LogContext{Data: map[string]any{"id": 3}}
	require.Equal(t, `{"data":{"id":3}}`, lc.String())

	lc = logger.LogContext{Data: map[string]any{"fn": func() {}}}
	require.Contains(t, lc.String(), "unable to marshal log context")
}

func TestCurrentCaller(t *testing.T) {
	var actual string
	func() {
		actual = logger.CurrentCaller()
	}()

	require.Contains(t, actual, "logger/context_test.go:")
}
