package cassowary

import (
	"fmt"

	"github.com/costela/cassowary/internal/engine"
)

// Solver is the incremental constraint solver: a live tableau that
// AddConstraint/RemoveConstraint mutate in place, re-optimizing after
// every change (unless WithAutoSolve(false) was given) and writing
// the resulting values back onto every decision Variable it touched.
//
// Solver is not safe for concurrent use. A caller that needs
// concurrent access must serialize it externally.
type Solver = engine.Solver

// NewSolver constructs a Solver, applying the given Options in order.
// With no options, auto-solve is on and diagnostics go to a
// zap-backed production logger.
func NewSolver(opts ...Option) (*Solver, error) {
	solver := engine.NewSolver()
	solver.SetLogger(newDefaultLogger())

	for _, opt := range opts {
		if err := opt(solver); err != nil {
			return nil, fmt.Errorf("applying solver option: %w", err)
		}
	}

	return solver, nil
}
