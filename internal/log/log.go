// Package log assembles the ffilog logger: an append-only file sink plus an
// optional console mirror, both rendered by logx.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jsdraven/FFI_Tools_GoLang/internal/config"
	"github.com/jsdraven/FFI_Tools_GoLang/internal/logx"
)

// FileLevel is fixed so every run appends exactly its one INFO line,
// whatever the console mirror is set to.
const FileLevel = slog.LevelInfo

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New initializes a slog.Logger based on the application config.
// A nil file opens cfg.LogFile for appending; tests pass a buffer instead.
// console receives the mirror when cfg.LogConsole is set (nil means stderr).
// The returned Closer releases the file sink.
func New(cfg *config.Config, file, console io.Writer) (*slog.Logger, io.Closer, error) {
	// This check handles the case where a nil config is passed.
	if cfg == nil {
		cfg = &config.Config{LogFile: config.DefaultLogFile, ConsoleLevel: slog.LevelInfo}
	}

	var closer io.Closer = nopCloser{}
	if file == nil {
		f, err := openSink(cfg.LogFile)
		if err != nil {
			return nil, nil, err
		}
		file, closer = f, f
	}

	if !cfg.LogConsole {
		return logx.New(file, FileLevel), closer, nil
	}
	if console == nil {
		console = os.Stderr
	}
	return slog.New(NewFanout(
		logx.NewHandler(file, FileLevel),
		logx.NewHandler(console, cfg.ConsoleLevel),
	)), closer, nil
}

// openSink opens path for appending, creating it if absent. Existing content
// is never truncated.
func openSink(path string) (*os.File, error) {
	if path == "" {
		path = config.DefaultLogFile
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log sink %q: %w", path, err)
	}
	return f, nil
}
