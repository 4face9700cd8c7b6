package engine

// AddStay adds a stay constraint on v at the given strength and
// weight: a soft request that v keep whatever value it currently
// holds unless a stronger constraint forces it elsewhere.
func (s *Solver) AddStay(v *Var, strength Strength, weight float64) error {
	c := NewStayConstraint(v, strength, weight)
	return s.AddConstraint(c)
}

// resetStayConstants implements spec §4.7: for every installed stay,
// zero out whichever of its plus/minus error variables is currently
// basic, so the next optimization pass starts from "no deviation
// recorded yet" instead of carrying over a deviation left by whatever
// ran before it.
func (s *Solver) resetStayConstants() {
	for _, pair := range s.stays {
		if pair.plus != nil {
			if row := s.tableau.RowExpression(pair.plus); row != nil {
				s.tableau.setRow(pair.plus, row.WithConstant(0))
			}
		}
		if pair.minus != nil {
			if row := s.tableau.RowExpression(pair.minus); row != nil {
				s.tableau.setRow(pair.minus, row.WithConstant(0))
			}
		}
	}
}

// forgetStayOrEdit drops c's entry from whichever of the stay/edit
// bookkeeping maps it belongs to, called from RemoveConstraint once
// the marker pivot has already been undone.
func (s *Solver) forgetStayOrEdit(c *Constraint) {
	delete(s.stays, c)
	if v := c.EditVariable(); v != nil {
		if info, ok := s.editVarMap[v]; ok && info.Constraint == c {
			delete(s.editVarMap, v)
		}
	}
}
