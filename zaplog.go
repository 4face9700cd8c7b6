package cassowary

import (
	"go.uber.org/zap"

	"github.com/costela/cassowary/internal/engine"
)

// zapAdapter implements the engine's leveled Logger on top of a
// sugared zap logger, and is the Solver's default when no WithLogger
// option is given.
type zapAdapter struct {
	sugar *zap.SugaredLogger
}

func newDefaultLogger() engine.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		return engine.NopLogger
	}
	return zapAdapter{sugar: logger.Sugar()}
}

func (z zapAdapter) Debugf(format string, args ...interface{}) {
	z.sugar.Debugf(format, args...)
}

func (z zapAdapter) Infof(format string, args ...interface{}) {
	z.sugar.Infof(format, args...)
}

func (z zapAdapter) Warnf(format string, args ...interface{}) {
	z.sugar.Warnf(format, args...)
}
