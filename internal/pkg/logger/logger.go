package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ougirez/coalportal/internal/pkg/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global = zap.NewNop().Sugar()

// Init builds the process-wide logger. encoding is "json" or "console".
func Init(level, encoding string) error {
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if encoding == "console" {
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	global = l.Sugar()
	return nil
}

// Sync flushes buffered entries.
func Sync() {
	_ = global.Sync()
}

// WithRequestID stores the request id in ctx so every log line of the request carries it.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constants.CtxKeyRequestID, requestID)
}

func fromCtx(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return global
	}
	if id, ok := ctx.Value(constants.CtxKeyRequestID).(string); ok && id != "" {
		return global.With("request_id", id)
	}
	return global
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Infof(format, args...)
}

func Infow(ctx context.Context, msg string, keysAndValues ...interface{}) {
	fromCtx(ctx).Infow(msg, keysAndValues...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Warnf(format, args...)
}

func Error(ctx context.Context, args ...interface{}) {
	fromCtx(ctx).Error(args...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Errorf(format, args...)
}

func Fatal(ctx context.Context, args ...interface{}) {
	fromCtx(ctx).Error(args...)
	Sync()
	os.Exit(1)
}
