package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableauAddRemoveRow(t *testing.T) {
	tab := newTableau()
	x := NewDecisionVariable("x")
	y := NewDecisionVariable("y")

	row := NewVariableExpression(y, 1).Plus(NewConstantExpression(2))
	tab.AddRow(x, row)

	require.True(t, tab.IsBasic(x))
	assert.True(t, tab.HasColumn(y))
	assert.Contains(t, tab.ColumnVars(y), x)

	// x is external and basic: it should be tracked in externalRows.
	found := false
	tab.ExternalRows(func(v *Var) {
		if v == x {
			found = true
		}
	})
	assert.True(t, found)

	removed := tab.RemoveRow(x)
	require.NotNil(t, removed)
	assert.False(t, tab.IsBasic(x))
	assert.False(t, tab.HasColumn(y))
}

func TestTableauSubstituteOut(t *testing.T) {
	tab := newTableau()
	x := NewDecisionVariable("x")
	y := NewDecisionVariable("y")
	z := NewDecisionVariable("z")

	// rows: x = y + 1, z = 2y + 3
	tab.AddRow(x, NewVariableExpression(y, 1).Plus(NewConstantExpression(1)))
	tab.AddRow(z, NewVariableExpression(y, 2).Plus(NewConstantExpression(3)))

	// substitute y = 5 (constant) everywhere
	tab.SubstituteOut(y, NewConstantExpression(5))

	assert.Equal(t, 6.0, tab.RowExpression(x).Constant())
	assert.Equal(t, 13.0, tab.RowExpression(z).Constant())
	assert.False(t, tab.HasColumn(y))
}

func TestTableauInfeasibleTracking(t *testing.T) {
	tab := newTableau()
	slack := newSlackVariable("s1")

	// AddRow itself never flags infeasibility (spec leaves that to
	// SuggestValue's perturbation); setRow does, since that's the path
	// perturbation actually goes through.
	tab.AddRow(slack, NewConstantExpression(3))
	assert.False(t, tab.HasInfeasibleRows())

	tab.setRow(slack, NewConstantExpression(-3))
	assert.True(t, tab.HasInfeasibleRows())

	v, ok := tab.PopInfeasible()
	require.True(t, ok)
	assert.Equal(t, slack, v)
	assert.False(t, tab.HasInfeasibleRows())
}
