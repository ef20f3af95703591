package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/dirk.krummacker/assistant/internal/config"
)

// TestFromWriter writes one message into a buffer.
func TestFromWriter(t *testing.T) {
	buff := bytes.NewBuffer([]byte{})
	log := FromWriter(buff)
	require.Equal(t, 0, buff.Len())
	log.Info().Str("command", "add").Msg("Test")
	assert.Contains(t, buff.String(), `"message":"Test"`)
	assert.Contains(t, buff.String(), `"command":"add"`)
	assert.Contains(t, buff.String(), `"time":`)
}

// TestFile expects messages at or above the level to be appended to the file.
func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assistant.log")
	log, err := New(&config.ConfigLogger{Level: "info", Path: path})
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Msg("first")
	require.NoError(t, log.Close())

	log, err = New(&config.ConfigLogger{Level: "info", Path: path})
	require.NoError(t, err)
	log.Warn().Msg("second")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}

// TestDiscard expects an empty path to produce a logger without output.
func TestDiscard(t *testing.T) {
	log, err := New(&config.ConfigLogger{Level: "debug", Path: ""})
	require.NoError(t, err)
	log.Info().Msg("nowhere")
	assert.NoError(t, log.Close())
}

// TestInvalidLevel expects an unknown level to be rejected.
func TestInvalidLevel(t *testing.T) {
	_, err := New(&config.ConfigLogger{Level: "loud", Path: ""})
	assert.Error(t, err)
}
