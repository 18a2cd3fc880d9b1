package ylog

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	testdir := t.TempDir()

	var (
		output    = path.Join(testdir, "output.log")
		errOutput = path.Join(testdir, "err_output.log")
	)

	conf := Config{
		Level:       "info",
		Output:      output,
		ErrorOutput: errOutput,
		Format:      "json",
		DisableTime: true,
	}

	logger := slog.New(NewHandlerFromConfig(conf))

	logger.Debug("some debug", "scenario", "HappyPath")
	logger.Info("some info", "scenario", "HappyPath")

	logger.Error("stream error", "err", io.EOF, "scenario", "Timeout")

	log, err := os.ReadFile(output)
	require.NoError(t, err)

	data := make(map[string]string)
	err = json.Unmarshal(log, &data)
	assert.NoError(t, err)
	assert.Equal(t, "some info", data["msg"])
	assert.Equal(t, "HappyPath", data["scenario"])

	errlog, err := os.ReadFile(errOutput)
	require.NoError(t, err)

	data = make(map[string]string)
	err = json.Unmarshal(errlog, &data)
	assert.NoError(t, err)
	assert.Equal(t, "stream error", data["msg"])
	assert.Equal(t, "EOF", data["err"])
	assert.Equal(t, "Timeout", data["scenario"])
}

func TestParseToSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseToSlogLevel("debug"))
	assert.Equal(t, slog.LevelInfo, parseToSlogLevel("INFO"))
	assert.Equal(t, slog.LevelWarn, parseToSlogLevel("warn"))
	assert.Equal(t, slog.LevelError, parseToSlogLevel("error"))
	assert.Equal(t, slog.LevelDebug, parseToSlogLevel("unknown"))
}

func TestParseToWriter(t *testing.T) {
	assert.Equal(t, os.Stdout, parseToWriter(Config{}, "stdout", io.Discard))
	assert.Equal(t, os.Stderr, parseToWriter(Config{}, "STDERR", io.Discard))
	assert.Equal(t, io.Discard, parseToWriter(Config{}, "", io.Discard))
	assert.NotEqual(t, io.Discard, parseToWriter(Config{}, path.Join(t.TempDir(), "a.log"), io.Discard))
}
