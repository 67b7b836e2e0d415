// Package logging holds the process-wide logger used by tagwire packages. It defaults
// to a no-op logger so that libraries embedding tagwire are silent unless asked.
package logging

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// L returns the current logger.
func L() *zap.Logger {
	return logger.Load()
}

// Set replaces the logger. A nil logger restores the no-op logger.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}
