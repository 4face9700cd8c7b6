package engine

import (
	"errors"
	"fmt"
)

// The three sentinel error kinds from spec §7. Callers branch on these
// with errors.Is; structured detail (which constraint, which variable)
// travels alongside via solverError and is recovered with
// FailingConstraint/FailingVariable.
var (
	ErrRequiredFailure    = errors.New("cassowary: required constraints are inconsistent")
	ErrConstraintNotFound = errors.New("cassowary: constraint has no recorded marker")
	ErrInternalError      = errors.New("cassowary: internal solver invariant violated")
)

// solverError wraps one of the three sentinels above with whatever
// detail the call site had on hand.
type solverError struct {
	sentinel   error
	constraint *Constraint
	variable   *Var
	detail     string
}

func (e *solverError) Error() string {
	if e.detail != "" {
		return fmt.Sprintf("%s: %s", e.sentinel, e.detail)
	}
	return e.sentinel.Error()
}

func (e *solverError) Unwrap() error { return e.sentinel }

func (e *solverError) Is(target error) bool { return target == e.sentinel }

// NewRequiredFailure reports that c could not be satisfied alongside
// the already-required constraints.
func NewRequiredFailure(c *Constraint) error {
	return &solverError{sentinel: ErrRequiredFailure, constraint: c}
}

// NewConstraintNotFound reports that c has no recorded marker, i.e. it
// was never added or was already removed.
func NewConstraintNotFound(c *Constraint) error {
	return &solverError{sentinel: ErrConstraintNotFound, constraint: c}
}

// NewInternalError reports a broken solver invariant with a
// human-readable detail string (e.g. which step detected it).
func NewInternalError(detail string) error {
	return &solverError{sentinel: ErrInternalError, detail: detail}
}

// NewInternalErrorVar is like NewInternalError but additionally
// attaches the offending variable for FailingVariable to recover.
func NewInternalErrorVar(detail string, v *Var) error {
	return &solverError{sentinel: ErrInternalError, detail: detail, variable: v}
}

// FailingConstraint recovers the constraint attached to err, if any.
func FailingConstraint(err error) (*Constraint, bool) {
	var se *solverError
	if errors.As(err, &se) && se.constraint != nil {
		return se.constraint, true
	}
	return nil, false
}

// FailingVariable recovers the variable attached to err, if any.
func FailingVariable(err error) (*Var, bool) {
	var se *solverError
	if errors.As(err, &se) && se.variable != nil {
		return se.variable, true
	}
	return nil, false
}
