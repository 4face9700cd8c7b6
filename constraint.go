package cassowary

import "github.com/costela/cassowary/internal/engine"

// Constraint is an equality (lhs = rhs) or inequality (lhs >= rhs, or
// equivalently lhs <= rhs with the sides swapped) between two linear
// expressions, carrying a Strength and a per-constraint weight
// multiplier that together determine how strongly the solver resists
// violating it.
type Constraint = engine.Constraint

// EqualTo builds the constraint lhs = rhs.
func EqualTo(lhs, rhs *Expression, strength Strength, weight float64) *Constraint {
	return engine.NewEqualityConstraint(lhs.Minus(rhs), strength, weight)
}

// LessThanOrEqualTo builds the constraint lhs <= rhs.
func LessThanOrEqualTo(lhs, rhs *Expression, strength Strength, weight float64) *Constraint {
	return engine.NewInequalityConstraint(rhs.Minus(lhs), strength, weight)
}

// GreaterThanOrEqualTo builds the constraint lhs >= rhs.
func GreaterThanOrEqualTo(lhs, rhs *Expression, strength Strength, weight float64) *Constraint {
	return engine.NewInequalityConstraint(lhs.Minus(rhs), strength, weight)
}
