package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler(t *testing.T) {
	t.Run("json output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(NewHandler(&buf, "json", "info"))
		logger.Info("signed in", "email", "a@example.com")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "signed in", rec["msg"])
		assert.Equal(t, "a@example.com", rec["email"])
	})

	t.Run("level filters debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(NewHandler(&buf, "text", "warn"))
		logger.Debug("hidden")
		logger.Info("hidden too")
		assert.Empty(t, buf.String())

		logger.Warn("shown")
		assert.Contains(t, buf.String(), "msg=shown")
		assert.Contains(t, buf.String(), "source=")
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, ParseLevel("INFO"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelDebug, ParseLevel("nonsense"))
}
