package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpressionAlgebra(t *testing.T) {
	x := NewDecisionVariable("x")
	y := NewDecisionVariable("y")

	e := NewVariableExpression(x, 2).PlusTerm(y, -3)
	require.Equal(t, 2.0, e.CoefficientFor(x))
	require.Equal(t, -3.0, e.CoefficientFor(y))
	require.Equal(t, 0.0, e.Constant())

	sum := e.Plus(NewConstantExpression(5))
	assert.Equal(t, 5.0, sum.Constant())
	assert.Equal(t, 2.0, sum.CoefficientFor(x))

	neg := e.Negate()
	assert.Equal(t, -2.0, neg.CoefficientFor(x))
	assert.Equal(t, 3.0, neg.CoefficientFor(y))

	diff := e.Minus(e)
	assert.True(t, diff.IsConstant())
	assert.Equal(t, 0.0, diff.Constant())
}

func TestExpressionWithCoefficientDropsNearZero(t *testing.T) {
	x := NewDecisionVariable("x")
	e := NewVariableExpression(x, 1)

	zeroed := e.WithCoefficient(x, 1e-12)
	assert.Equal(t, 0, zeroed.Size())
	assert.Equal(t, 0.0, zeroed.CoefficientFor(x))
}

func TestExpressionSubstituteOut(t *testing.T) {
	x := NewDecisionVariable("x")
	y := NewDecisionVariable("y")
	z := NewDecisionVariable("z")

	// e = 2x + 3, sub x = y + 1
	e := NewVariableExpression(x, 2).Plus(NewConstantExpression(3))
	sub := NewVariableExpression(y, 1).Plus(NewConstantExpression(1))

	result := e.SubstituteOut(x, sub)
	assert.Equal(t, 0.0, result.CoefficientFor(x))
	assert.Equal(t, 2.0, result.CoefficientFor(y))
	assert.Equal(t, 5.0, result.Constant()) // 2*1 + 3

	untouched := e.SubstituteOut(z, sub)
	assert.Equal(t, 2.0, untouched.CoefficientFor(x))
}

func TestExpressionNewSubjectAndChangeSubject(t *testing.T) {
	x := NewDecisionVariable("x")
	y := NewDecisionVariable("y")

	// 2x + 4y + 6 = 0  =>  x = -2y - 3
	e := NewVariableExpression(x, 2).PlusTerm(y, 4).Plus(NewConstantExpression(6))

	solvedForX := e.newSubjectExpression(x)
	assert.Equal(t, -2.0, solvedForX.CoefficientFor(y))
	assert.Equal(t, -3.0, solvedForX.Constant())

	// rowForX is x's defining row (x = 2y + 3; by tableau convention it
	// never contains x itself). changeSubject(x, y) should produce the
	// row defining y in terms of x: y = 0.5x - 1.5.
	rowForX := NewVariableExpression(y, 2).Plus(NewConstantExpression(3))
	changed := rowForX.changeSubject(x, y)
	assert.Equal(t, 0.5, changed.CoefficientFor(x))
	assert.Equal(t, -1.5, changed.Constant())
}
