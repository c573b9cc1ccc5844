package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("info", "json", &buf)

	log.Info().Str("ratio", "current_ratio").Msg("question generated")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "current_ratio", entry["ratio"])
	assert.Equal(t, "question generated", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestSetup_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("warn", "json", &buf)

	log.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetup_UnknownLevelFallsBackToWarn(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, Setup("loud", "json", &bytes.Buffer{}).GetLevel())
	assert.Equal(t, zerolog.WarnLevel, Setup("", "json", &bytes.Buffer{}).GetLevel())
	assert.Equal(t, zerolog.DebugLevel, Setup("debug", "json", &bytes.Buffer{}).GetLevel())
}

func TestSetup_Pretty(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("debug", "pretty", &buf)

	log.Debug().Str("session", "abc").Msg("set started")

	out := buf.String()
	assert.Contains(t, out, "set started")
	assert.Contains(t, out, "session=abc")
	assert.False(t, strings.HasPrefix(out, "{"), "pretty output should not be JSON")
}

func TestOpenFile_Empty(t *testing.T) {
	w, closeFn, err := OpenFile("")
	require.NoError(t, err)
	require.NotNil(t, closeFn)
	_, err = w.Write([]byte("dropped"))
	assert.NoError(t, err)
	assert.NoError(t, closeFn())
}

func TestOpenFile_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "ratiolab.log")
	w, closeFn, err := OpenFile(path)
	require.NoError(t, err)

	log := Setup("info", "json", w)
	log.Info().Msg("hello")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
