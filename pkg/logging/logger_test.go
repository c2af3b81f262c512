package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAcceptsKnownLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "garbage", ""} {
		logger := New(level)
		require.NotNil(t, logger, "level %q", level)
		require.NotNil(t, logger.Logger, "level %q", level)
	}
}

func TestNamedReturnsChildLogger(t *testing.T) {
	logger := New("info")
	child := logger.Named("telegram")
	require.NotNil(t, child)
	assert.NotSame(t, logger, child)
}

func TestDefault(t *testing.T) {
	require.NotNil(t, Default())
}
