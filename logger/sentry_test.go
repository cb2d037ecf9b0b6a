package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/override/logger"
)

func TestNewSentryLoggerBadDSN(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	std, ok := logger.New(logger.WithLogger(newTestLogger(b))).(*logger.StdLogger)
	require.True(t, ok)

	// Act
	actual := logger.NewSentryLogger(std, "not a dsn")

	// Assert
	require.Same(t, std, actual)
	require.Contains(t, b.String(), "unable to init Sentry")
}
