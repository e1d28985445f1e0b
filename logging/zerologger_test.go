package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("tags every line with the logger name", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New("engine", &buf, "debug")

		logger.Info().Str(SessionIDKey, "abc").Msg("session created")

		assert.Contains(t, buf.String(), "session created")
		assert.Contains(t, buf.String(), "engine")
		assert.Contains(t, buf.String(), "abc")
	})

	t.Run("drops lines below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New("engine", &buf, "warn")

		logger.Info().Msg("hidden")

		assert.Empty(t, buf.String())
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New("engine", &buf, "loud")

		logger.Debug().Msg("hidden")
		logger.Info().Msg("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})
}
