package cassowary

import (
	"fmt"

	"github.com/costela/cassowary/internal/engine"
)

// Logger is the extension point for a Solver's diagnostics: a line on
// every pivot, every constraint add/remove, and every edit session
// boundary, plus a warning whenever a required constraint is
// rejected. Implement this to route solver diagnostics into whatever
// logging library an application already uses. If no Logger is
// supplied via WithLogger, the solver uses a zap-backed default (see
// zaplog.go) instead of this interface.
type Logger interface {
	Print(v ...interface{})
}

type noopLogger struct{}

func (noopLogger) Print(v ...interface{}) {}

// NopLogger discards every message.
var NopLogger Logger = noopLogger{}

// printAdapter bridges the public, teacher-shaped Logger (a single
// Print method, no levels) onto the engine's leveled Logger, which
// the solver core actually calls. All three levels collapse onto
// Print, with the level folded into the formatted message, since a
// caller plugging in their own Print-only Logger has no separate
// handling per level anyway.
type printAdapter struct {
	logger Logger
}

func (a printAdapter) Debugf(format string, args ...interface{}) {
	a.logger.Print(fmt.Sprintf("DEBUG: "+format, args...))
}

func (a printAdapter) Infof(format string, args ...interface{}) {
	a.logger.Print(fmt.Sprintf("INFO: "+format, args...))
}

func (a printAdapter) Warnf(format string, args ...interface{}) {
	a.logger.Print(fmt.Sprintf("WARN: "+format, args...))
}

func adaptLogger(l Logger) engine.Logger {
	if l == nil {
		l = NopLogger
	}
	return printAdapter{logger: l}
}
