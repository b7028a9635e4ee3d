package automap

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// captureLogger returns a logger writing JSON records into the returned buffer.
func captureLogger() (zerolog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return zerolog.New(&buf), &buf
}

// warnings returns the messages of all warn-level records in buf.
func warnings(t *testing.T, buf *bytes.Buffer) []string {
	t.Helper()

	var msgs []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		if rec[zerolog.LevelFieldName] == zerolog.LevelWarnValue {
			msgs = append(msgs, rec[zerolog.MessageFieldName].(string))
		}
	}

	return msgs
}
