package cassowary

import "github.com/costela/cassowary/internal/engine"

// The three error kinds a Solver can return, checked with errors.Is.
// Structured detail travels with them; recover it with
// FailingConstraint/FailingVariable rather than a type assertion.
var (
	// ErrRequiredFailure means a required constraint could not be
	// satisfied alongside the constraints already installed.
	ErrRequiredFailure = engine.ErrRequiredFailure
	// ErrConstraintNotFound means RemoveConstraint was called with a
	// constraint the solver has no record of (never added, or already
	// removed).
	ErrConstraintNotFound = engine.ErrConstraintNotFound
	// ErrInternalError means a solver invariant was violated; this
	// indicates a bug in the solver itself, not a malformed model.
	ErrInternalError = engine.ErrInternalError
)

// FailingConstraint recovers the constraint that caused err, if any.
func FailingConstraint(err error) (*Constraint, bool) {
	return engine.FailingConstraint(err)
}

// FailingVariable recovers the variable that caused err, if any.
func FailingVariable(err error) (*Variable, bool) {
	return engine.FailingVariable(err)
}
