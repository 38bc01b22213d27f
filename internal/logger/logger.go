// Package logger wires the process-wide zap logger.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log and Sugar start as no-ops so packages can log before Init runs.
var (
	Log   = zap.NewNop()
	Sugar = Log.Sugar()
)

// Options selects the log sinks. The zero value logs to stderr at info
// level.
type Options struct {
	Level string
	File  string // rotating file sink, disabled when empty

	// Rotation limits for the file sink. Zero fields fall back to 20 MB,
	// 3 backups, 7 days.
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int

	NoConsole bool // drop the stderr sink, used by tests
}

// Init configures the globals for the common case: colored stderr lines
// plus an optional rotating file.
func Init(level, file string) {
	Setup(Options{Level: level, File: file})
}

// Setup rebuilds the global loggers from opts.
func Setup(opts Options) {
	lvl := parseLevel(opts.Level)

	var cores []zapcore.Core
	if !opts.NoConsole {
		enc := newEncoder(zapcore.TimeEncoderOfLayout("15:04:05"), zapcore.CapitalColorLevelEncoder)
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(os.Stderr), lvl))
	}
	if opts.File != "" {
		w := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    orDefault(opts.MaxSizeMB, 20),
			MaxBackups: orDefault(opts.MaxBackups, 3),
			MaxAge:     orDefault(opts.MaxAgeDays, 7),
			Compress:   true,
			LocalTime:  true,
		}
		enc := newEncoder(zapcore.ISO8601TimeEncoder, zapcore.CapitalLevelEncoder)
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(w), lvl))
	}

	Log = zap.New(zapcore.NewTee(cores...))
	Sugar = Log.Sugar()
}

func newEncoder(time zapcore.TimeEncoder, level zapcore.LevelEncoder) zapcore.Encoder {
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeTime:       time,
		EncodeLevel:      level,
		ConsoleSeparator: " ",
	})
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// parseLevel maps unknown level names to info rather than failing.
func parseLevel(s string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(s)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Log.Sync()
}
