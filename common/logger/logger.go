// Package logger builds the zap logger used for diagnostics on stderr.
// Status lines meant for the user stay on stdout and do not go through here.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names for structured logging.
const (
	FieldFile       = "file"
	FieldCount      = "count"
	FieldRule       = "rule"
	FieldFrom       = "from"
	FieldTo         = "to"
	FieldBackup     = "backup"
	FieldCodec      = "codec"
	FieldDurationMS = "duration_ms"
)

// VerbosityToLevel maps repeated -v flags to a zap level.
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= 0:
		return zapcore.WarnLevel
	case verbosity == 1:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// New returns a console logger writing to stderr, or a JSON one when jsonOutput is set.
func New(verbosity int, jsonOutput bool) *zap.Logger {
	level := zap.NewAtomicLevelAt(VerbosityToLevel(verbosity))

	var enc zapcore.Encoder
	if jsonOutput {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cfg.CallerKey = ""
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	return zap.New(zapcore.NewCore(enc, zapcore.Lock(os.Stderr), level))
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
