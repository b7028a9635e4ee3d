package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LevelAndService(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Output: &buf, Service: "checker"})

	logger.Info().Msg("dropped")
	logger.Warn().Msg("kept")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec[zerolog.MessageFieldName])
	assert.Equal(t, "checker", rec[FieldService])
	assert.Equal(t, "warn", rec[zerolog.LevelFieldName])
}

func TestNew_EnvLevel(t *testing.T) {
	t.Setenv("ROWMAP_LOG_LEVEL", "error")

	var buf bytes.Buffer
	logger := New(Config{Output: &buf})
	logger.Warn().Msg("dropped")

	assert.Empty(t, buf.String())
	assert.Equal(t, zerolog.ErrorLevel, logger.GetLevel())
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	logger := New(Config{Level: "chatty", Output: &bytes.Buffer{}})
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestWithComponent(t *testing.T) {
	logger := WithComponent("automap")
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}
