// Package logging holds the module-wide structured logger.
//
// Library code logs through L(), which defaults to a no-op zap logger so
// that importing the module never produces output. Applications install
// their own logger with SetLogger or build one from a level name with New.
package logging

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global atomic.Pointer[zap.Logger]

func init() {
	global.Store(zap.NewNop())
}

// L returns the current global logger.
func L() *zap.Logger {
	return global.Load()
}

// Named returns the global logger scoped to a component name.
func Named(component string) *zap.Logger {
	return L().Named(component)
}

// SetLogger installs logger as the global logger and returns a function that
// restores the previous one. A nil logger installs a no-op logger.
func SetLogger(logger *zap.Logger) (restore func()) {
	if logger == nil {
		logger = zap.NewNop()
	}
	prev := global.Swap(logger)
	return func() { global.Store(prev) }
}

// New builds a console logger writing to stderr at the named level
// ("debug", "info", "warn", "error").
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}
