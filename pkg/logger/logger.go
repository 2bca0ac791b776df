package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"phone-extractor/internal/domain"
)

// AppLogger implements the domain.Logger interface on top of zap
type AppLogger struct {
	logger *zap.SugaredLogger
}

// NewLogger creates a new JSON logger writing to stdout at the given level
func NewLogger(levelStr string) domain.Logger {
	return NewLoggerWithOutput(levelStr, "stdout")
}

// NewLoggerWithOutput creates a new JSON logger writing to the given zap
// output paths ("stdout", "stderr" or file paths)
func NewLoggerWithOutput(levelStr string, outputPaths ...string) *AppLogger {
	zapCfg := zap.NewProductionConfig()
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	zapCfg.Level = zap.NewAtomicLevelAt(parseLogLevel(levelStr))
	zapCfg.OutputPaths = outputPaths

	z, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	return &AppLogger{logger: z.Sugar()}
}

// NewWithCore wraps an existing zap core, used by tests to capture output
func NewWithCore(core zapcore.Core) *AppLogger {
	return &AppLogger{logger: zap.New(core, zap.AddCallerSkip(1)).Sugar()}
}

// Info logs an info message
func (l *AppLogger) Info(msg string, fields ...interface{}) {
	l.logger.Infow(msg, fields...)
}

// Error logs an error message
func (l *AppLogger) Error(msg string, err error, fields ...interface{}) {
	l.logger.Errorw(msg, append([]interface{}{zap.Error(err)}, fields...)...)
}

// Debug logs a debug message
func (l *AppLogger) Debug(msg string, fields ...interface{}) {
	l.logger.Debugw(msg, fields...)
}

// Warn logs a warning message
func (l *AppLogger) Warn(msg string, fields ...interface{}) {
	l.logger.Warnw(msg, fields...)
}

// Sync flushes any buffered log entries
func (l *AppLogger) Sync() error {
	return l.logger.Sync()
}

// parseLogLevel converts string log level to a zap level
func parseLogLevel(levelStr string) zapcore.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
