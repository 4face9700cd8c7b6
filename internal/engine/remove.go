package engine

import "math"

// RemoveConstraint implements spec §4.8: undo whatever AddConstraint
// did for c, re-optimize, and forget c's bookkeeping. Returns
// ConstraintNotFound if c was never added (or already removed).
func (s *Solver) RemoveConstraint(c *Constraint) error {
	marker, ok := s.markerVariables[c]
	if !ok {
		return NewConstraintNotFound(c)
	}

	s.removeErrorEffects(c, marker)

	if !s.tableau.IsBasic(marker) {
		exit, found := s.chooseMarkerExitRow(marker)
		if !found {
			return NewInternalErrorVar("remove constraint: no exit row available to pivot marker in", marker)
		}
		s.pivot(marker, exit)
	}

	s.tableau.RemoveRow(marker)
	s.tableau.RemoveColumn(marker)

	delete(s.markerVariables, c)
	delete(s.errorVariables, c)
	if c.IsStay() || c.IsEdit() {
		s.forgetStayOrEdit(c)
	}

	s.logger.Infof("removed constraint (strength=%s, weight=%v)", c.Strength(), c.Weight())

	if s.autoSolve {
		if err := s.optimize(s.objective); err != nil {
			return err
		}
		s.setExternalVariables()
	}
	return nil
}

// removeErrorEffects strips every one of c's error variables'
// contribution back out of the objective row, then drops each error
// variable's column entirely, per spec §4.8 step 2. marker keeps its
// column even when it is itself an error variable (the
// required-equality/dummy case has none, but a plain equality's marker
// is one of its two error variables): RemoveConstraint still has to
// pivot it into the basis and remove its row.
func (s *Solver) removeErrorEffects(c *Constraint, marker *Var) {
	weight := c.ObjectiveWeight()
	for _, ev := range s.errorVariables[c] {
		if !isNearZero(weight) {
			zRow := s.tableau.RowExpression(s.objective)
			if row := s.tableau.RowExpression(ev); row != nil {
				s.tableau.setRow(s.objective, zRow.Minus(row.Times(weight)))
			} else {
				s.tableau.setRow(s.objective, zRow.PlusTerm(ev, -weight))
			}
		}
		if ev != marker {
			s.tableau.RemoveColumn(ev)
		}
	}
}

// chooseMarkerExitRow implements spec §4.8 step 3's three-pass ratio
// test for picking which basic variable to pivot out in order to bring
// marker into the basis: prefer a row where marker's coefficient is
// negative (minimizing -constant/coefficient), fall back to a
// positive-coefficient row (minimizing constant/coefficient, left
// un-negated per the pack's convention), and fall back further to any
// row that mentions marker at all.
func (s *Solver) chooseMarkerExitRow(marker *Var) (*Var, bool) {
	var negativeExit, positiveExit, anyExit *Var
	negativeRatio := math.Inf(1)
	positiveRatio := math.Inf(1)

	for b := range s.tableau.ColumnVars(marker) {
		basicRow := s.tableau.RowExpression(b)
		coefficient := basicRow.CoefficientFor(marker)
		if coefficient == 0 {
			continue
		}
		anyExit = b
		if !b.IsRestricted() {
			continue
		}
		if coefficient < 0 {
			ratio := -basicRow.Constant() / coefficient
			if ratio < negativeRatio {
				negativeRatio = ratio
				negativeExit = b
			}
		} else {
			ratio := basicRow.Constant() / coefficient
			if ratio < positiveRatio {
				positiveRatio = ratio
				positiveExit = b
			}
		}
	}

	if negativeExit != nil {
		return negativeExit, true
	}
	if positiveExit != nil {
		return positiveExit, true
	}
	return anyExit, anyExit != nil
}
