package cassowary

import "github.com/costela/cassowary/internal/engine"

// Expression is an immutable linear combination of variables plus a
// constant: constant + Σ coefficient·variable. Every method below
// returns a new Expression; none mutates its receiver.
type Expression = engine.Expression

// NewConstantExpression returns the expression with no terms, just c.
func NewConstantExpression(c float64) *Expression {
	return engine.NewConstantExpression(c)
}

// NewVariableExpression returns the expression `coefficient * v`.
func NewVariableExpression(v *Variable, coefficient float64) *Expression {
	return engine.NewVariableExpression(v, coefficient)
}
