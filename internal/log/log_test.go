// Package log_test: black-box tests for the log package API surface.
package log_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsdraven/FFI_Tools_GoLang/internal/config"
	logpkg "github.com/jsdraven/FFI_Tools_GoLang/internal/log"
)

func TestNew_LogLevels(t *testing.T) {
	cfg := &config.Config{}
	var buf bytes.Buffer
	logger, closer, err := logpkg.New(cfg, &buf, nil)
	require.NoError(t, err)
	defer closer.Close()

	logger.Debug("debug_message")
	logger.Info("info_message")
	logger.Warn("warn_message")

	out := buf.String()
	assert.Contains(t, out, "| INFO | info_message")
	assert.Contains(t, out, "| WARNING | warn_message")
	assert.NotContains(t, out, "debug_message")
}

func TestNew_NilConfig(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logpkg.New(nil, &buf, nil)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown")
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestNew_FileSinkAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.log")
	require.NoError(t, os.WriteFile(path, []byte("existing\n"), 0o644))
	cfg := &config.Config{LogFile: path}

	for _, msg := range []string{"first", "second"} {
		logger, closer, err := logpkg.New(cfg, nil, nil)
		require.NoError(t, err)
		logger.Info(msg)
		require.NoError(t, closer.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "existing", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "| INFO | first"))
	assert.True(t, strings.HasSuffix(lines[2], "| INFO | second"))
}

func TestNew_FileSinkCreated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.log")
	logger, closer, err := logpkg.New(&config.Config{LogFile: path}, nil, nil)
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, closer.Close())

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestNew_OpenError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "logs.log")
	logger, closer, err := logpkg.New(&config.Config{LogFile: path}, nil, nil)
	require.Error(t, err)
	assert.Nil(t, logger)
	assert.Nil(t, closer)
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
	assert.Contains(t, err.Error(), "open log sink")
}

func TestNew_ConsoleMirror(t *testing.T) {
	var file, console bytes.Buffer
	logger, _, err := logpkg.New(&config.Config{LogConsole: true}, &file, &console)
	require.NoError(t, err)
	logger.Info("both sinks")

	assert.Contains(t, file.String(), "| INFO | both sinks")
	assert.Contains(t, console.String(), "| INFO | both sinks")
}

func TestNew_ConsoleDisabledIgnoresWriter(t *testing.T) {
	var file, console bytes.Buffer
	logger, _, err := logpkg.New(&config.Config{ConsoleLevel: slog.LevelDebug}, &file, &console)
	require.NoError(t, err)
	logger.Info("file only")

	assert.Contains(t, file.String(), "| INFO | file only")
	assert.Empty(t, console.String())
}

func TestNew_FileLevelPinned(t *testing.T) {
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		var file, console bytes.Buffer
		cfg := &config.Config{LogConsole: true, ConsoleLevel: level}
		logger, _, err := logpkg.New(cfg, &file, &console)
		require.NoError(t, err)

		logger.Info("the line")
		logger.Debug("detail")

		assert.Equal(t, 1, strings.Count(file.String(), "\n"), "console level %v", level)
		assert.Contains(t, file.String(), "| INFO | the line", "console level %v", level)
		assert.NotContains(t, file.String(), "detail", "console level %v", level)
		if level == slog.LevelDebug {
			assert.Contains(t, console.String(), "| DEBUG | detail")
		}
		if level > slog.LevelInfo {
			assert.Empty(t, console.String(), "console level %v", level)
		}
	}
}

type errHandler struct{}

func (errHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (errHandler) Handle(context.Context, slog.Record) error { return errors.New("boom") }
func (h errHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h errHandler) WithGroup(string) slog.Handler           { return h }

func TestFanout_JoinsErrorsAndSkipsDisabled(t *testing.T) {
	var info, errOnly bytes.Buffer
	f := logpkg.NewFanout(
		slog.NewTextHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&errOnly, &slog.HandlerOptions{Level: slog.LevelError}),
		errHandler{},
	)

	logger := slog.New(f.WithAttrs([]slog.Attr{slog.String("k", "v")}).WithGroup("g"))
	logger.Info("x", "a", 1)
	assert.Contains(t, info.String(), "k=v")
	assert.Contains(t, info.String(), "g.a=1")
	assert.Empty(t, errOnly.String())

	err := f.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "y", 0))
	assert.EqualError(t, err, "boom")
}

func TestFanout_Enabled(t *testing.T) {
	var buf bytes.Buffer
	f := logpkg.NewFanout(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	assert.False(t, f.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, f.Enabled(context.Background(), slog.LevelError))
}
