package logger

import (
	"io"
	"os"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var defaultLogger atomic.Pointer[zap.SugaredLogger]

func init() {
	defaultLogger.Store(build(os.Stdout, "info", "text"))
}

// Initialize sets up the global logger with the specified level and format.
func Initialize(level, format string) {
	InitializeWriter(os.Stdout, level, format)
}

// InitializeWriter is Initialize with an explicit destination.
func InitializeWriter(w io.Writer, level, format string) {
	l := build(w, level, format)
	defaultLogger.Store(l)
	zap.ReplaceGlobals(l.Desugar())
}

func build(w io.Writer, level, format string) *zap.SugaredLogger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if strings.ToLower(format) == "json" {
		enc = zapcore.NewJSONEncoder(cfg)
	} else {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), parseLevel(level))
	return zap.New(core).Sugar()
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Get returns the current global logger.
func Get() *zap.SugaredLogger {
	return defaultLogger.Load()
}

func Debug(msg string, kv ...any) { Get().Debugw(msg, kv...) }
func Info(msg string, kv ...any)  { Get().Infow(msg, kv...) }
func Warn(msg string, kv ...any)  { Get().Warnw(msg, kv...) }
func Error(msg string, kv ...any) { Get().Errorw(msg, kv...) }

// Sync flushes buffered entries.
func Sync() error {
	return Get().Sync()
}

// WithService returns a logger with the service name attached
func WithService(serviceName string) *zap.SugaredLogger {
	return Get().With("service", serviceName)
}
