// Package log builds the process-wide logger used by the merge tools.
//
// Both binaries log human-readable lines to stderr in real time; a merge can
// run for a long while and operators watch the stream as it goes, so the
// console core is unbuffered and every write is flushed by the OS pipe.
package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewConsole returns a logger that writes plain console lines to stderr.
// Level is Info; the tools have no verbosity knob.
func NewConsole() *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = "" // operators read these lines live; timestamps are noise
	cfg.CallerKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.Lock(os.Stderr),
		zapcore.InfoLevel,
	)
	return zap.New(core)
}
