package cassowary

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-7

func newTestSolver(t *testing.T) *Solver {
	t.Helper()
	s, err := NewSolver(WithLogger(NopLogger))
	require.NoError(t, err)
	return s
}

func TestInstantiation(t *testing.T) {
	s, err := NewSolver()
	require.NoError(t, err)
	assert.True(t, s.AutoSolve())
}

func TestWithAutoSolveFalse(t *testing.T) {
	s, err := NewSolver(WithLogger(NopLogger), WithAutoSolve(false))
	require.NoError(t, err)
	assert.False(t, s.AutoSolve())

	x := NewVariable("x")
	require.NoError(t, s.AddConstraint(EqualTo(NewVariableExpression(x, 1), NewConstantExpression(10), Required, 1)))

	// auto-solve is off: the value hasn't been written back yet.
	assert.Equal(t, 0.0, x.Value())

	require.NoError(t, s.Solve())
	assert.InDelta(t, 10.0, x.Value(), delta)
}

func TestEqualToAndStay(t *testing.T) {
	s := newTestSolver(t)

	x := NewVariable("x")
	y := NewVariable("y")
	x.SetValue(3)

	require.NoError(t, s.AddStay(x, Strong, 1))
	require.NoError(t, s.AddConstraint(EqualTo(NewVariableExpression(y, 1), NewVariableExpression(x, 1), Required, 1)))

	assert.InDelta(t, 3.0, x.Value(), delta)
	assert.InDelta(t, 3.0, y.Value(), delta)
}

func TestLessThanOrEqualTo(t *testing.T) {
	s := newTestSolver(t)

	x := NewVariable("x")
	require.NoError(t, s.AddStay(x, Weak, 1))
	x.SetValue(100)
	require.NoError(t, s.AddStay(x, Weak, 1))

	require.NoError(t, s.AddConstraint(LessThanOrEqualTo(NewVariableExpression(x, 1), NewConstantExpression(10), Required, 1)))

	assert.LessOrEqual(t, x.Value(), 10.0+delta)
}

func TestBoundsSugar(t *testing.T) {
	s := newTestSolver(t)
	x := NewVariable("x")

	require.NoError(t, AddBounds(s, x, 2, 8))
	require.NoError(t, s.AddStay(x, Weak, 1))
	x.SetValue(100)
	require.NoError(t, s.AddStay(x, Weak, 1))

	assert.LessOrEqual(t, x.Value(), 8.0+delta)
	assert.GreaterOrEqual(t, x.Value(), 2.0-delta)
}

// solution is a snapshot of two variables' solved values, compared via
// go-cmp to check that a constraint's add/remove round trip leaves the
// solver exactly where it started.
type solution struct {
	X, Y float64
}

func TestAddRemoveConstraintRoundTripIsIdempotent(t *testing.T) {
	s := newTestSolver(t)
	x := NewVariable("x")
	y := NewVariable("y")
	x.SetValue(5)
	y.SetValue(5)

	require.NoError(t, s.AddStay(x, Weak, 1))
	require.NoError(t, s.AddStay(y, Weak, 1))

	before := solution{X: x.Value(), Y: y.Value()}

	c := EqualTo(
		NewVariableExpression(y, 1),
		NewVariableExpression(x, 1).Plus(NewConstantExpression(100)),
		Required, 1,
	)
	require.NoError(t, s.AddConstraint(c))
	assert.InDelta(t, 105.0, y.Value(), delta)

	require.NoError(t, s.RemoveConstraint(c))
	after := solution{X: x.Value(), Y: y.Value()}

	if diff := cmp.Diff(before, after, cmpopts.EquateApprox(0, delta)); diff != "" {
		t.Errorf("solver did not return to its pre-constraint solution after add/remove round trip:\n%s", diff)
	}
}

func TestRequiredConflictReturnsInspectableError(t *testing.T) {
	s := newTestSolver(t)
	x := NewVariable("x")

	require.NoError(t, s.AddConstraint(EqualTo(NewVariableExpression(x, 1), NewConstantExpression(1), Required, 1)))
	err := s.AddConstraint(EqualTo(NewVariableExpression(x, 1), NewConstantExpression(2), Required, 1))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequiredFailure)
	_, ok := FailingConstraint(err)
	assert.True(t, ok)
}

func TestEditProtocolEndToEnd(t *testing.T) {
	s := newTestSolver(t)
	x := NewVariable("x")
	y := NewVariable("y")

	require.NoError(t, s.AddStay(x, Weak, 1))
	require.NoError(t, s.AddStay(y, Weak, 1))
	require.NoError(t, s.AddConstraint(EqualTo(
		NewVariableExpression(y, 1),
		NewVariableExpression(x, 1).Plus(NewConstantExpression(1)),
		Required, 1,
	)))

	require.NoError(t, s.AddEditVar(x, Strong))
	require.NoError(t, s.BeginEdit())
	require.NoError(t, s.SuggestValue(x, 20))
	require.NoError(t, s.Resolve())
	require.NoError(t, s.EndEdit())

	assert.InDelta(t, 20.0, x.Value(), delta)
	assert.InDelta(t, 21.0, y.Value(), delta)
}
