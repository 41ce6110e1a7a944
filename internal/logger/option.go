package logger

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// fixedLevelCore filters entries by its own level instead of the shared
// atomic level, so one command can log more or less than the settings say.
type fixedLevelCore struct {
	zapcore.Core

	level zapcore.Level
}

func (c *fixedLevelCore) Enabled(l zapcore.Level) bool {
	return c.level.Enabled(l)
}

//nolint:gocritic // AddCore requires ent to be passed by value.
func (c *fixedLevelCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(ent.Level) {
		return ce
	}

	return ce.AddCore(ent, c)
}

//nolint:ireturn,nolintlint // zapcore.Core is the interface zap expects.
func (c *fixedLevelCore) With(fields []zapcore.Field) zapcore.Core {
	return &fixedLevelCore{Core: c.Core.With(fields), level: c.level}
}

// WithLevel pins the logger to lvl regardless of the global level.
//
//nolint:ireturn,nolintlint // zap.Option is the interface zap expects.
func WithLevel(lvl zapcore.Level) zap.Option {
	return zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return &fixedLevelCore{Core: core, level: lvl}
	})
}

// WithLevelName returns a context whose logger is pinned to the named level.
// An empty name leaves ctx unchanged.
func WithLevelName(ctx context.Context, name string) (context.Context, error) {
	if name == "" {
		return ctx, nil
	}

	level, ok := ParseLogLevel(name)
	if !ok {
		return ctx, fmt.Errorf("unknown log level %q", name)
	}

	return ToContext(ctx, FromContext(ctx).WithOptions(WithLevel(level))), nil
}
