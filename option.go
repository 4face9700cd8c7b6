package cassowary

// Option configures a Solver at construction time.
type Option func(*Solver) error

// WithLogger installs a custom diagnostic sink. The default is a
// zap-backed production logger (see zaplog.go); pass NopLogger to
// silence it entirely.
func WithLogger(logger Logger) Option {
	return func(s *Solver) error {
		s.SetLogger(adaptLogger(logger))
		return nil
	}
}

// WithAutoSolve controls whether AddConstraint/RemoveConstraint
// re-optimize and write values back immediately (the default, true)
// or leave that to an explicit call to Solve, useful when loading a
// model's constraints in bulk.
func WithAutoSolve(auto bool) Option {
	return func(s *Solver) error {
		s.SetAutoSolve(auto)
		return nil
	}
}

// WithEpsilon overrides the numeric tolerance the simplex
// entering/exiting-variable rules use to treat a coefficient or row
// constant as zero. Defaults to 1e-8.
func WithEpsilon(epsilon float64) Option {
	return func(s *Solver) error {
		s.SetEpsilon(epsilon)
		return nil
	}
}
