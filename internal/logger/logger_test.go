package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithWriter(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	t.Run("writes json outside development", func(t *testing.T) {
		var buf bytes.Buffer
		InitWithWriter("production", "info", &buf)

		log.Info().Str("isbn", "123").Msg("book created")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "info", line["level"])
		assert.Equal(t, "123", line["isbn"])
		assert.Equal(t, "book created", line["message"])
	})

	t.Run("respects level", func(t *testing.T) {
		var buf bytes.Buffer
		InitWithWriter("production", "error", &buf)

		log.Info().Msg("hidden")
		assert.Empty(t, buf.String())

		log.Error().Msg("shown")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("falls back to info on unknown level", func(t *testing.T) {
		var buf bytes.Buffer
		InitWithWriter("production", "loud", &buf)

		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})

	t.Run("console output in development", func(t *testing.T) {
		var buf bytes.Buffer
		InitWithWriter("development", "debug", &buf)

		log.Debug().Msg("starting")
		assert.Contains(t, buf.String(), "starting")
		assert.False(t, json.Valid(buf.Bytes()))
	})
}
