// Package observability builds the process logger.
package observability

import (
	"os"
	"sync/atomic"

	"github.com/san-kum/wanderer/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var globalLogger atomic.Pointer[zap.Logger]

// New builds a logger writing to console, which may be nil to log only to
// cfg.File. An unknown level falls back to info.
func New(cfg config.LoggerConfig, console zapcore.WriteSyncer) *zap.Logger {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	var cores []zapcore.Core
	if console != nil {
		cores = append(cores, zapcore.NewCore(getEncoder(cfg.Format), zapcore.Lock(console), level))
	}
	if cfg.File != "" {
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		})
		cores = append(cores, zapcore.NewCore(getEncoder("json"), fileWriter, level))
	}
	if len(cores) == 0 {
		return zap.NewNop()
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zap.ErrorLevel)).Named(cfg.ServiceName)
}

func getEncoder(format string) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	if format == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(encoderConfig)
	}
	return zapcore.NewJSONEncoder(encoderConfig)
}

// Initialize installs a stderr logger as the process-wide logger.
func Initialize(cfg config.LoggerConfig) *zap.Logger {
	logger := New(cfg, os.Stderr)
	globalLogger.Store(logger)
	zap.ReplaceGlobals(logger)
	return logger
}

// GetLogger returns the installed logger, or a no-op one before Initialize.
func GetLogger() *zap.Logger {
	if logger := globalLogger.Load(); logger != nil {
		return logger
	}
	return zap.NewNop()
}

// Sync flushes buffered entries. Errors from syncing a terminal are expected
// and ignored.
func Sync() {
	if logger := globalLogger.Load(); logger != nil {
		_ = logger.Sync()
	}
}
