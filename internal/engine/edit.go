package engine

// AddEditVar registers v as editable at the given strength by adding
// an edit constraint for it; SuggestValue can target v afterward.
func (s *Solver) AddEditVar(v *Var, strength Strength) error {
	if strength.IsRequired() {
		return NewInternalErrorVar("edit variable strength must not be Required", v)
	}
	c := NewEditConstraint(v, strength)
	return s.AddConstraint(c)
}

// BeginEdit opens a new edit session, recording the current edit
// ordinal watermark so a matching EndEdit knows exactly which edit
// constraints it introduced. At least one edit variable must already
// be registered via AddEditVar.
func (s *Solver) BeginEdit() error {
	if len(s.editVarMap) == 0 {
		return NewInternalError("begin edit: no edit variable has been added")
	}
	s.tableau.ClearInfeasible()
	s.resetStayConstants()
	s.editStack = append(s.editStack, s.editCount)
	s.logger.Infof("begin edit session (depth=%d)", len(s.editStack))
	return nil
}

// SuggestValue implements spec §4.6's SuggestValue: perturb v's edit
// row constant by delta and propagate that perturbation through every
// row that depends on it, without re-optimizing (Resolve does that).
func (s *Solver) SuggestValue(v *Var, value float64) error {
	info, ok := s.editVarMap[v]
	if !ok {
		return NewInternalErrorVar("suggest value: variable has no active edit constraint", v)
	}
	delta := value - info.PrevValue
	info.PrevValue = value
	s.applyEditDelta(info, delta)
	return nil
}

// applyEditDelta implements the three cases of spec §4.6's delta
// propagation: the plus error variable may itself be basic, the minus
// error variable may be basic instead, or (the common case) neither is
// basic and the perturbation must ripple through every row that
// mentions the plus variable as a parameter.
func (s *Solver) applyEditDelta(info *EditInfo, delta float64) {
	plus, minus := info.PlusVar, info.MinusVar

	if row := s.tableau.RowExpression(plus); row != nil {
		s.tableau.setRow(plus, row.WithConstant(row.Constant()-delta))
		return
	}
	if row := s.tableau.RowExpression(minus); row != nil {
		s.tableau.setRow(minus, row.WithConstant(row.Constant()+delta))
		return
	}
	for b := range s.tableau.ColumnVars(plus) {
		row := s.tableau.RowExpression(b)
		coefficient := row.CoefficientFor(plus)
		if coefficient == 0 {
			continue
		}
		s.tableau.setRow(b, row.WithConstant(row.Constant()+coefficient*delta))
	}
}

// Resolve implements spec §4.6's Resolve: re-establish feasibility
// with DualOptimize, write values back, then clear any leftover
// infeasible-row bookkeeping and reset stay constants so the next
// SuggestValue/Resolve round starts clean. Call this after one or
// more SuggestValue calls in an edit session.
func (s *Solver) Resolve() error {
	if err := s.dualOptimize(); err != nil {
		return err
	}
	s.setExternalVariables()
	s.tableau.ClearInfeasible()
	s.resetStayConstants()
	return nil
}

// EndEdit closes the most recently opened edit session: every edit
// constraint added since the matching BeginEdit is removed, and the
// solver re-optimizes to settle back onto the stay/required
// constraints that remain.
func (s *Solver) EndEdit() error {
	if len(s.editStack) == 0 {
		return NewInternalError("end edit: no edit session is open")
	}
	watermark := s.editStack[len(s.editStack)-1]
	s.editStack = s.editStack[:len(s.editStack)-1]

	var toRemove []*Constraint
	for _, info := range s.editVarMap {
		if info.Index >= watermark {
			toRemove = append(toRemove, info.Constraint)
		}
	}
	for _, c := range toRemove {
		if err := s.RemoveConstraint(c); err != nil {
			return err
		}
	}

	s.logger.Infof("end edit session (depth=%d)", len(s.editStack))
	return nil
}
