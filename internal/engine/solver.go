package engine

import (
	"fmt"
	"math"
)

type stayPair struct {
	plus  *Var
	minus *Var
}

// Solver is the Cassowary tableau/simplex engine: everything from
// spec §4 except the thin public-facing convenience wrappers, which
// live one layer up in the cassowary package.
type Solver struct {
	tableau   *Tableau
	objective *Var

	markerVariables map[*Constraint]*Var
	errorVariables  map[*Constraint][]*Var
	knownVars       map[*Var]bool

	stays map[*Constraint]stayPair

	editVarMap map[*Var]*EditInfo
	editStack  []int
	editCount  int

	autoSolve bool
	logger    Logger
	epsilon   float64

	slackCount      int
	dummyCount      int
	errorCount      int
	artificialCount int
}

// NewSolver constructs a Solver with auto-solve enabled and a no-op
// logger, ready for AddConstraint calls.
func NewSolver() *Solver {
	s := &Solver{
		tableau:         newTableau(),
		markerVariables: map[*Constraint]*Var{},
		errorVariables:  map[*Constraint][]*Var{},
		knownVars:       map[*Var]bool{},
		stays:           map[*Constraint]stayPair{},
		editVarMap:      map[*Var]*EditInfo{},
		autoSolve:       true,
		logger:          NopLogger,
		epsilon:         Epsilon,
	}
	s.objective = newObjectiveVariable("objective")
	s.tableau.AddRow(s.objective, NewConstantExpression(0))
	return s
}

// SetLogger installs the diagnostic sink used for every subsequent
// operation.
func (s *Solver) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger
	}
	s.logger = l
}

// SetAutoSolve toggles whether structural mutations finish by
// optimizing and writing values back, or leave that to an explicit
// Solve() call.
func (s *Solver) SetAutoSolve(auto bool) { s.autoSolve = auto }

// AutoSolve reports the current auto-solve setting.
func (s *Solver) AutoSolve() bool { return s.autoSolve }

// SetEpsilon overrides the feasibility tolerance used by the simplex
// entering/exiting-variable rules. Defaults to Epsilon.
func (s *Solver) SetEpsilon(e float64) { s.epsilon = e }

func (s *Solver) newSlack() *Var {
	s.slackCount++
	return newSlackVariable(fmt.Sprintf("s%d", s.slackCount))
}

func (s *Solver) newDummy() *Var {
	s.dummyCount++
	return newDummyVariable(fmt.Sprintf("d%d", s.dummyCount))
}

func (s *Solver) newErrorVar() *Var {
	s.errorCount++
	return newSlackVariable(fmt.Sprintf("e%d", s.errorCount))
}

func (s *Solver) newArtificial() *Var {
	s.artificialCount++
	return newArtificialVariable(fmt.Sprintf("a%d", s.artificialCount))
}

func (s *Solver) onlyColumnIsObjective(v *Var) bool {
	set := s.tableau.ColumnVars(v)
	if len(set) != 1 {
		return false
	}
	for b := range set {
		return b == s.objective
	}
	return false
}

// noteKnownVariables records every external variable the client's raw
// expression references, independent of whether the constraint ends
// up added successfully; ContainsVariable/AddVar rely on this.
func (s *Solver) noteKnownVariables(e *Expression) {
	e.Terms(func(v *Var, _ float64) {
		if v.IsExternal() {
			s.knownVars[v] = true
		}
	})
}

// ContainsVariable reports whether v has ever been referenced by a
// constraint passed to AddConstraint, whether or not it was accepted.
func (s *Solver) ContainsVariable(v *Var) bool {
	return s.knownVars[v]
}

// AddVar ensures v is known to the solver, adding a weak stay on it if
// it is not already.
func (s *Solver) AddVar(v *Var) error {
	if s.knownVars[v] {
		return nil
	}
	return s.AddStay(v, Weak, 1)
}

// expressionBuild is the intermediate result of building a
// constraint's canonical row, carrying whatever the error-variable
// setup needs to hand back to the caller (stay list registration,
// edit bookkeeping).
type expressionBuild struct {
	expr   *Expression
	marker *Var
	errors []*Var
	plus   *Var
	minus  *Var
}

// newExpression implements spec §4.3 steps 1-5: build the canonical
// row `expr` (to be asserted expr = 0), introducing whichever
// slack/dummy/error variables the constraint's shape calls for and
// folding their strength·weight penalty into the objective row.
func (s *Solver) newExpression(c *Constraint) *expressionBuild {
	cnExpr := c.Expression()
	expr := NewConstantExpression(cnExpr.Constant())
	cnExpr.Terms(func(v *Var, coefficient float64) {
		if row := s.tableau.RowExpression(v); row != nil {
			expr = expr.Plus(row.Times(coefficient))
		} else {
			expr = expr.PlusTerm(v, coefficient)
		}
	})

	build := &expressionBuild{expr: expr}

	switch {
	case c.IsInequality():
		slack := s.newSlack()
		build.expr = build.expr.PlusTerm(slack, -1)
		build.marker = slack
		if !c.Strength().IsRequired() {
			eminus := s.newErrorVar()
			build.expr = build.expr.PlusTerm(eminus, 1)
			s.addToObjective(eminus, c.ObjectiveWeight())
			build.errors = append(build.errors, eminus)
		}
	case c.Strength().IsRequired():
		dummy := s.newDummy()
		build.expr = build.expr.PlusTerm(dummy, 1)
		build.marker = dummy
	default:
		eplus := s.newErrorVar()
		eminus := s.newErrorVar()
		build.expr = build.expr.PlusTerm(eplus, -1)
		build.expr = build.expr.PlusTerm(eminus, 1)
		build.marker = eplus
		s.addToObjective(eplus, c.ObjectiveWeight())
		s.addToObjective(eminus, c.ObjectiveWeight())
		build.errors = append(build.errors, eplus, eminus)
		build.plus = eplus
		build.minus = eminus
	}

	if build.expr.Constant() < 0 {
		build.expr = build.expr.Negate()
	}

	return build
}

func (s *Solver) addToObjective(v *Var, weight float64) {
	if isNearZero(weight) {
		return
	}
	row := s.tableau.RowExpression(s.objective)
	s.tableau.setRow(s.objective, row.PlusTerm(v, weight))
}

// chooseSubject implements spec §4.3's ChooseSubject: scan expr's
// terms for a variable that can become the row's subject without
// needing the artificial-variable machinery. c is only used to
// populate RequiredFailure if the all-dummy rule detects a genuine
// inconsistency.
func (s *Solver) chooseSubject(expr *Expression, c *Constraint) (*Var, bool, error) {
	terms := expr.TermsSlice()

	for _, t := range terms {
		if !t.Var.IsRestricted() && !s.tableau.HasColumn(t.Var) {
			return t.Var, true, nil
		}
	}

	for _, t := range terms {
		v := t.Var
		if !v.IsRestricted() || v.IsDummy() {
			continue
		}
		if t.Coefficient >= -s.epsilon {
			continue
		}
		if !s.tableau.HasColumn(v) || s.onlyColumnIsObjective(v) {
			return v, true, nil
		}
	}

	allDummy := true
	for _, t := range terms {
		if !t.Var.IsDummy() {
			allDummy = false
			break
		}
	}
	if allDummy {
		for _, t := range terms {
			if s.tableau.HasColumn(t.Var) {
				continue
			}
			if !isNearZero(expr.Constant()) {
				return nil, false, NewRequiredFailure(c)
			}
			return t.Var, true, nil
		}
	}

	return nil, false, nil
}

// tryAddingDirectly attempts the pivot-free insertion path. It returns
// true if expr was added as a fresh row; false (with no error) means
// the caller must fall back to AddWithArtificialVariable.
func (s *Solver) tryAddingDirectly(expr *Expression, c *Constraint) (bool, error) {
	subject, found, err := s.chooseSubject(expr, c)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}

	rowExpr := expr.newSubjectExpression(subject)
	if s.tableau.HasColumn(subject) {
		s.tableau.SubstituteOut(subject, rowExpr)
	}
	s.tableau.AddRow(subject, rowExpr)
	return true, nil
}

// addWithArtificialVariable implements spec §4.3's fallback: minimize
// an auxiliary objective to find a feasible starting point, then
// splice the artificial variable back out.
func (s *Solver) addWithArtificialVariable(expr *Expression, c *Constraint) error {
	av := s.newArtificial()
	az := newObjectiveVariable("az")

	s.tableau.AddRow(az, expr.clone())
	s.tableau.AddRow(av, expr.clone())

	if err := s.optimize(az); err != nil {
		return err
	}

	azRow := s.tableau.RowExpression(az)
	failed := azRow == nil || !isNearZero(azRow.Constant())

	if failed {
		s.tableau.RemoveRow(av)
		s.tableau.RemoveColumn(av)
		s.tableau.RemoveRow(az)
		return NewRequiredFailure(c)
	}

	if avRow := s.tableau.RowExpression(av); avRow != nil {
		if avRow.IsConstant() {
			s.tableau.RemoveRow(av)
		} else {
			entering, ok := avRow.GetAnyPivotableVariable()
			if !ok {
				return NewInternalError("add-with-artificial: no pivotable variable to displace the artificial")
			}
			s.pivot(entering, av)
		}
	}

	s.tableau.RemoveColumn(av)
	s.tableau.RemoveRow(az)
	return nil
}

// pivot implements spec §4.4's pivot step: exit leaves the basis,
// entry takes its place.
func (s *Solver) pivot(entry, exit *Var) {
	s.logger.Debugf("pivot: %s enters, %s leaves", entry, exit)
	expr := s.tableau.RemoveRow(exit)
	expr = expr.changeSubject(exit, entry)
	s.tableau.SubstituteOut(entry, expr)
	s.tableau.AddRow(entry, expr)
}

// optimize implements spec §4.4's primal optimize loop, minimizing the
// row named by zVar.
func (s *Solver) optimize(zVar *Var) error {
	for {
		zRow := s.tableau.RowExpression(zVar)
		entry, found := s.chooseEnteringVariable(zRow)
		if !found {
			return nil
		}
		exit, found := s.chooseExitingVariable(entry)
		if !found {
			return NewInternalError("optimize: objective is unbounded")
		}
		s.pivot(entry, exit)
	}
}

func (s *Solver) chooseEnteringVariable(zRow *Expression) (*Var, bool) {
	var best *Var
	bestCoefficient := -s.epsilon
	zRow.Terms(func(v *Var, c float64) {
		if !v.IsPivotable() {
			return
		}
		if c < bestCoefficient {
			bestCoefficient = c
			best = v
		}
	})
	return best, best != nil
}

func (s *Solver) chooseExitingVariable(entry *Var) (*Var, bool) {
	var best *Var
	bestRatio := math.Inf(1)
	for b := range s.tableau.ColumnVars(entry) {
		if !b.IsPivotable() {
			continue
		}
		row := s.tableau.RowExpression(b)
		coefficient := row.CoefficientFor(entry)
		if coefficient >= -s.epsilon {
			continue
		}
		ratio := -row.Constant() / coefficient
		if ratio < bestRatio {
			bestRatio = ratio
			best = b
		}
	}
	return best, best != nil
}

// dualOptimize implements spec §4.5, re-establishing feasibility after
// row constants have been perturbed by the edit protocol.
func (s *Solver) dualOptimize() error {
	for {
		x, ok := s.tableau.PopInfeasible()
		if !ok {
			return nil
		}
		row := s.tableau.RowExpression(x)
		if row == nil || row.Constant() >= -s.epsilon {
			continue
		}
		entry, found := s.chooseDualEnteringVariable(row)
		if !found {
			return NewInternalError("dual optimize: no entering variable found")
		}
		s.pivot(entry, x)
	}
}

func (s *Solver) chooseDualEnteringVariable(row *Expression) (*Var, bool) {
	zRow := s.tableau.RowExpression(s.objective)
	var best *Var
	bestRatio := math.Inf(1)
	row.Terms(func(v *Var, c float64) {
		if c <= s.epsilon || !v.IsPivotable() {
			return
		}
		ratio := zRow.CoefficientFor(v) / c
		if ratio < bestRatio {
			bestRatio = ratio
			best = v
		}
	})
	return best, best != nil
}

// AddConstraint implements spec §4.3/§6: incorporate c into the
// tableau, failing with RequiredFailure if c is required and
// inconsistent with what's already there.
func (s *Solver) AddConstraint(c *Constraint) error {
	s.noteKnownVariables(c.Expression())

	build := s.newExpression(c)

	added, err := s.tryAddingDirectly(build.expr, c)
	if err != nil {
		s.logger.Warnf("constraint rejected: %v", err)
		return err
	}
	if !added {
		if err := s.addWithArtificialVariable(build.expr, c); err != nil {
			s.logger.Warnf("constraint rejected: %v", err)
			return err
		}
	}

	s.markerVariables[c] = build.marker
	if len(build.errors) > 0 {
		s.errorVariables[c] = build.errors
	}

	if c.IsStay() {
		s.stays[c] = stayPair{plus: build.plus, minus: build.minus}
	}
	if c.IsEdit() {
		s.editVarMap[c.EditVariable()] = &EditInfo{
			Constraint: c,
			PlusVar:    build.plus,
			MinusVar:   build.minus,
			PrevValue:  c.EditVariable().Value(),
			Index:      s.editCount,
		}
		s.editCount++
	}

	s.logger.Infof("added constraint (strength=%s, weight=%v)", c.Strength(), c.Weight())

	if s.autoSolve {
		if err := s.optimize(s.objective); err != nil {
			return err
		}
		s.setExternalVariables()
	}
	return nil
}

// Solve runs the primal optimizer and writes values back, for callers
// that disabled auto-solve to batch-load constraints.
func (s *Solver) Solve() error {
	if err := s.optimize(s.objective); err != nil {
		return err
	}
	s.setExternalVariables()
	return nil
}

// setExternalVariables implements spec §4.9's write-back.
func (s *Solver) setExternalVariables() {
	s.tableau.ExternalParametricVars(func(v *Var) {
		v.SetValue(0)
	})
	s.tableau.ExternalRows(func(v *Var) {
		if row := s.tableau.RowExpression(v); row != nil {
			v.SetValue(row.Constant())
		}
	})
}

// Reset is a documented stub: clearing a solver back to empty while
// correctly unwinding every marker/error/stay/edit map is an open
// design question (see Design Note 9's open question 1), so for now
// this returns nil without touching any state. Callers that need a
// clean slate should build a new Solver instead.
func (s *Solver) Reset() error {
	return nil
}
