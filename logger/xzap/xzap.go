package xzap

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var global = zap.NewNop()

// SetUp 按配置构建全局logger，进程启动时调用一次
func SetUp(level string, development bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	lv := zapcore.InfoLevel
	if err := lv.UnmarshalText([]byte(level)); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lv)
	}
	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	global = logger
	return logger, nil
}

// WithContext 取出上下文绑定的logger，没有则退回全局logger
func WithContext(ctx context.Context) *Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok {
			return &Logger{l: l}
		}
	}
	return &Logger{l: global}
}

// NewContext 把带字段的子logger绑定进上下文
func NewContext(ctx context.Context, fields ...zap.Field) context.Context {
	return context.WithValue(ctx, ctxKey{}, WithContext(ctx).l.With(fields...))
}

// Logger 是zap.Logger的薄封装，保持调用方写法稳定
type Logger struct {
	l *zap.Logger
}

func (x *Logger) Debug(msg string, fields ...zap.Field) { x.l.Debug(msg, fields...) }
func (x *Logger) Info(msg string, fields ...zap.Field)  { x.l.Info(msg, fields...) }
func (x *Logger) Warn(msg string, fields ...zap.Field)  { x.l.Warn(msg, fields...) }
func (x *Logger) Error(msg string, fields ...zap.Field) { x.l.Error(msg, fields...) }

func (x *Logger) Sync() error { return x.l.Sync() }
