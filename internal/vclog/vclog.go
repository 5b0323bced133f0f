/*
NAME
  vclog.go

DESCRIPTION
  vclog.go wraps go.uber.org/zap behind a small Logger type whose call
  shape (Info/Error/Fatal taking a message and alternating key-value
  pairs) matches the ausocean/utils/logging API used throughout
  cmd/rv/main.go ("log.Info("starting rv", "version", version)"). The
  image CLI constructs one Logger writing to stderr, optionally tee'd to
  a rotated log file via gopkg.in/natefinch/lumberjack.v2, the same
  pairing cmd/rv/main.go uses for its file sink.

LICENSE
  Copyright (C) 2026 Saltmarsh Systems. All Rights Reserved.
*/

// Package vclog provides the structured logger used by the vcimage CLI
// tools.
package vclog

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a thin structured-logging facade over zap.SugaredLogger.
type Logger struct {
	s *zap.SugaredLogger
}

// Config controls where a Logger's output goes.
type Config struct {
	// LogFile, if non-empty, additionally writes log output to a
	// size/age-rotated file at this path.
	LogFile string

	// MaxSizeMB, MaxBackups, and MaxAgeDays configure rotation for
	// LogFile; zero values fall back to lumberjack's own defaults.
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New builds a Logger that always writes to stderr and, when cfg names
// a LogFile, also tees output to a lumberjack-rotated file.
func New(cfg Config) *Logger {
	writers := []io.Writer{os.Stderr}
	if cfg.LogFile != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		})
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(io.MultiWriter(writers...)),
		zapcore.InfoLevel,
	)

	return &Logger{s: zap.New(core).Sugar()}
}

// Info logs an informational message with alternating key-value pairs.
func (l *Logger) Info(msg string, kv ...interface{}) {
	l.s.Infow(msg, kv...)
}

// Error logs an error-level message with alternating key-value pairs.
func (l *Logger) Error(msg string, kv ...interface{}) {
	l.s.Errorw(msg, kv...)
}

// Fatal logs a fatal-level message, flushes buffered log entries, and
// terminates the process with a nonzero exit code.
func (l *Logger) Fatal(msg string, kv ...interface{}) {
	l.s.Fatalw(msg, kv...)
}

// Sync flushes any buffered log entries. Callers should defer Sync in
// main after constructing a Logger.
func (l *Logger) Sync() error {
	return l.s.Sync()
}
