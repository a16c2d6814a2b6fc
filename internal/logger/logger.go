// SPDX-License-Identifier: MIT

// Package logger holds the process-wide structured logger of the motion CLI.
//
// Logger is a no-op until Initialize is called, so packages may log
// unconditionally. Logs go to stderr; command output stays on stdout.
package logger

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global logger instance.
	Logger *zap.SugaredLogger = zap.NewNop().Sugar()

	// JSONOutput records whether Initialize selected JSON encoding.
	JSONOutput bool
)

// Initialize replaces Logger with a stderr logger at the given level
// ("debug", "info", "warn", "error"); JSON encoding when jsonOutput is set,
// a compact console encoding otherwise.
func Initialize(jsonOutput bool, level string) error {
	l, err := New(os.Stderr, jsonOutput, level)
	if err != nil {
		return err
	}
	JSONOutput = jsonOutput
	Logger = l

	return nil
}

// New builds a logger writing to w without touching the global one.
func New(w io.Writer, jsonOutput bool, level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(err, "invalid log level %q", level),
			"use debug, info, warn or error")
	}

	var enc zapcore.Encoder
	if jsonOutput {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		enc = newConsoleEncoder()
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))

	return zap.New(core).Sugar(), nil
}

// newConsoleEncoder is a calm human-readable encoder: short time, level,
// message, then fields.
func newConsoleEncoder() zapcore.Encoder {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.CallerKey = ""
	cfg.StacktraceKey = ""

	return zapcore.NewConsoleEncoder(cfg)
}

// Sync flushes the global logger. Errors from syncing stderr are ignored.
func Sync() {
	_ = Logger.Sync()
}
