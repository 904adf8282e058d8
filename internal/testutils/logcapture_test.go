package testutils

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogCapture(t *testing.T) {
	t.Parallel()

	capture, logger := NewLogCapture()
	child := logger.With(slog.String("component", "test"))

	logger.Info("first")
	child.Warn("second", slog.Int("n", 2))

	entries := capture.Entries()
	require.Len(t, entries, 2)
	assert.NotContains(t, entries[0], "component")

	second, ok := capture.Find("second")
	require.True(t, ok)
	assert.Equal(t, "WARN", second["level"])
	assert.Equal(t, "test", second["component"])
	assert.Equal(t, int64(2), second["n"])

	_, ok = capture.Find("missing")
	assert.False(t, ok)
}
