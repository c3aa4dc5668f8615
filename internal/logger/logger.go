// Package logger owns the process-wide zap logger.
package logger

import (
	"go.uber.org/zap"
)

// Logger holds the zap logger handed to every component.
type Logger struct {
	Log *zap.Logger
}

// New returns a Logger that discards everything until Init is called.
func New() *Logger {
	return &Logger{
		Log: zap.NewNop(),
	}
}

// Init builds a production logger at level, named after the project.
func (l *Logger) Init(level, name string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	zl, err := cfg.Build()
	if err != nil {
		return err
	}

	if name != "" {
		zl = zl.Named(name)
	}
	l.Log = zl
	return nil
}

// Sync flushes buffered entries. Errors from syncing stderr are ignored.
func (l *Logger) Sync() {
	_ = l.Log.Sync()
}
