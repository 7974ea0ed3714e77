package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field represents a structured logging field
type Field = zap.Field

// Logger is the logging interface used across all modules
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Config holds the logger configuration
type Config struct {
	Environment string // "development" or "production"
	LogPath     string // Directory for log files
	Level       string // "debug", "info", "warn", "error"
}

// Field constructors re-exported so callers never import zap directly
func String(key, value string) Field            { return zap.String(key, value) }
func Int(key string, value int) Field           { return zap.Int(key, value) }
func Int64(key string, value int64) Field       { return zap.Int64(key, value) }
func Bool(key string, value bool) Field         { return zap.Bool(key, value) }
func Float64(key string, value float64) Field   { return zap.Float64(key, value) }
func Duration(key string, d time.Duration) Field { return zap.Duration(key, d) }
func Any(key string, value any) Field           { return zap.Any(key, value) }

type zapLogger struct {
	log *zap.Logger
}

// NewNop returns a logger that discards everything. Used in tests
func NewNop() Logger {
	return &zapLogger{log: zap.NewNop()}
}

// NewLogger creates a logger writing to stdout and, outside development,
// to a rotating-friendly file under cfg.LogPath
func NewLogger(cfg Config) (Logger, error) {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{}

	if cfg.Environment == "development" {
		devCfg := zap.NewDevelopmentEncoderConfig()
		devCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(devCfg),
			zapcore.AddSync(os.Stdout),
			level,
		))
	} else {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.AddSync(os.Stdout),
			level,
		))
	}

	if cfg.LogPath != "" {
		if err := os.MkdirAll(cfg.LogPath, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err := os.OpenFile(
			filepath.Join(cfg.LogPath, "app.log"),
			os.O_APPEND|os.O_CREATE|os.O_WRONLY,
			0o644,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.AddSync(file),
			level,
		))
	}

	log := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))
	return &zapLogger{log: log}, nil
}

func (l *zapLogger) Debug(msg string, fields ...Field) { l.log.Debug(msg, fields...) }
func (l *zapLogger) Info(msg string, fields ...Field)  { l.log.Info(msg, fields...) }
func (l *zapLogger) Warn(msg string, fields ...Field)  { l.log.Warn(msg, fields...) }
func (l *zapLogger) Error(msg string, fields ...Field) { l.log.Error(msg, fields...) }
func (l *zapLogger) Fatal(msg string, fields ...Field) { l.log.Fatal(msg, fields...) }

func (l *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{log: l.log.With(fields...)}
}
