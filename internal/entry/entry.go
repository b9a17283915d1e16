// Package entry implements the ffilog run: print the marker, append the
// debug line.
// SPDX-License-Identifier: AGPL-3.0-or-later
package entry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jsdraven/FFI_Tools_GoLang/internal/config"
	"github.com/jsdraven/FFI_Tools_GoLang/internal/invocation"
	logging "github.com/jsdraven/FFI_Tools_GoLang/internal/log"
	"github.com/jsdraven/FFI_Tools_GoLang/internal/marker"
)

// Run wires config, log sink, and emission together for one invocation.
// The sink is opened before anything is printed, so a sink failure leaves
// stdout untouched. stderr receives the console mirror when enabled.
func Run(ctx context.Context, cfg *config.Config, rec invocation.Record, stdout, stderr io.Writer) (err error) {
	logger, closer, err := logging.New(cfg, nil, stderr)
	if err != nil {
		return err
	}
	defer func() { err = closeSink(closer, err) }()

	return Emit(ctx, logger, cfg.UnsetPlaceholder, rec, stdout)
}

// closeSink closes c and joins a close failure onto err.
func closeSink(c io.Closer, err error) error {
	if cerr := c.Close(); cerr != nil {
		return errors.Join(err, fmt.Errorf("close log sink: %w", cerr))
	}
	return err
}

// Emit writes the marker to stdout and logs the record's line.
func Emit(ctx context.Context, logger *slog.Logger, placeholder string, rec invocation.Record, stdout io.Writer) error {
	if err := marker.Emit(stdout); err != nil {
		return fmt.Errorf("write marker: %w", err)
	}

	logger.InfoContext(ctx, rec.Line(placeholder))
	if rec.Index != nil {
		logger.DebugContext(ctx, "invocation_index", "i", *rec.Index)
	}
	return nil
}
