package cassowary

import "github.com/costela/cassowary/internal/engine"

// Variable is a client-visible decision variable: something the
// solver is free to move in order to satisfy the installed
// constraints. Identity is by pointer, exactly like a C handle, so two
// variables created with the same name are still distinct.
type Variable = engine.Var

// NewVariable creates a decision variable with the given name (purely
// for diagnostics) and an initial value of 0.
func NewVariable(name string) *Variable {
	return engine.NewDecisionVariable(name)
}
