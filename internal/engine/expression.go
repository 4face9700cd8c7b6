package engine

// Epsilon is the single numeric tolerance governing coefficient-is-zero
// tests, the artificial-objective feasibility check, and value-equality
// of stored decision values, per spec.
const Epsilon = 1e-8

// Expression is an immutable symbolic sum: constant + Σ coefficient·var.
// Every algebraic operation below returns a fresh Expression; none
// mutates its receiver. Terms whose coefficient falls within Epsilon of
// zero are dropped on construction, so a caller can rely on every
// remaining entry being a real, nonzero term.
type Expression struct {
	constant float64
	terms    map[*Var]float64
}

// NewConstantExpression returns the expression with no terms, just c.
func NewConstantExpression(c float64) *Expression {
	return &Expression{constant: c, terms: map[*Var]float64{}}
}

// NewVariableExpression returns the expression `coefficient * v`.
func NewVariableExpression(v *Var, coefficient float64) *Expression {
	e := &Expression{constant: 0, terms: map[*Var]float64{}}
	return e.WithCoefficient(v, coefficient)
}

func (e *Expression) clone() *Expression {
	terms := make(map[*Var]float64, len(e.terms))
	for v, c := range e.terms {
		terms[v] = c
	}
	return &Expression{constant: e.constant, terms: terms}
}

// Constant returns the expression's constant term.
func (e *Expression) Constant() float64 { return e.constant }

// CoefficientFor returns the coefficient of v, or 0 if v does not
// appear.
func (e *Expression) CoefficientFor(v *Var) float64 {
	if e == nil {
		return 0
	}
	return e.terms[v]
}

// Terms calls fn for every (variable, coefficient) pair. Iteration order
// is the unordered map order; callers that need determinism must sort.
func (e *Expression) Terms(fn func(v *Var, coefficient float64)) {
	for v, c := range e.terms {
		fn(v, c)
	}
}

// Term pairs a variable with its coefficient, for callers that need a
// snapshot to iterate more than once (e.g. multi-pass candidate scans).
type Term struct {
	Var         *Var
	Coefficient float64
}

// TermsSlice returns a snapshot of every nonzero term.
func (e *Expression) TermsSlice() []Term {
	terms := make([]Term, 0, len(e.terms))
	for v, c := range e.terms {
		terms = append(terms, Term{Var: v, Coefficient: c})
	}
	return terms
}

// Size returns the number of nonzero terms.
func (e *Expression) Size() int { return len(e.terms) }

// IsConstant reports whether the expression has no terms.
func (e *Expression) IsConstant() bool { return len(e.terms) == 0 }

// WithCoefficient returns a copy of e with v's coefficient set to
// exactly c (replacing any prior value), dropping the term entirely if
// c is within Epsilon of zero.
func (e *Expression) WithCoefficient(v *Var, c float64) *Expression {
	result := e.clone()
	if isNearZero(c) {
		delete(result.terms, v)
	} else {
		result.terms[v] = c
	}
	return result
}

// addTermInPlace merges coefficient*delta into result's own term map,
// dropping the entry if it cancels to ~0. Only used internally by
// operations that already own a freshly cloned result.
func addTermInPlace(terms map[*Var]float64, v *Var, delta float64) {
	c := terms[v] + delta
	if isNearZero(c) {
		delete(terms, v)
	} else {
		terms[v] = c
	}
}

// Plus returns e + other.
func (e *Expression) Plus(other *Expression) *Expression {
	result := e.clone()
	result.constant += other.constant
	for v, c := range other.terms {
		addTermInPlace(result.terms, v, c)
	}
	return result
}

// PlusTerm returns e + coefficient*v.
func (e *Expression) PlusTerm(v *Var, coefficient float64) *Expression {
	result := e.clone()
	addTermInPlace(result.terms, v, coefficient)
	return result
}

// Minus returns e - other.
func (e *Expression) Minus(other *Expression) *Expression {
	return e.Plus(other.Negate())
}

// Negate returns -e.
func (e *Expression) Negate() *Expression {
	return e.Times(-1)
}

// Times returns e scaled by the given scalar.
func (e *Expression) Times(scalar float64) *Expression {
	result := &Expression{constant: e.constant * scalar, terms: make(map[*Var]float64, len(e.terms))}
	for v, c := range e.terms {
		scaled := c * scalar
		if !isNearZero(scaled) {
			result.terms[v] = scaled
		}
	}
	return result
}

// DividedBy returns e scaled by 1/scalar.
func (e *Expression) DividedBy(scalar float64) *Expression {
	return e.Times(1 / scalar)
}

// WithConstant returns a copy of e with its constant replaced by c,
// leaving every term untouched. Used by the edit protocol, which only
// ever perturbs row constants directly.
func (e *Expression) WithConstant(c float64) *Expression {
	result := e.clone()
	result.constant = c
	return result
}

// SubstituteOut returns a copy of e in which every occurrence of v has
// been replaced by the expression sub, i.e. e with v's coefficient c
// dropped and c*sub folded in. If v does not appear in e, the clone is
// returned unchanged.
func (e *Expression) SubstituteOut(v *Var, sub *Expression) *Expression {
	c, ok := e.terms[v]
	if !ok {
		return e.clone()
	}
	result := e.clone()
	delete(result.terms, v)
	result.constant += c * sub.constant
	for sv, sc := range sub.terms {
		addTermInPlace(result.terms, sv, c*sc)
	}
	return result
}

// newSubjectExpression solves `0 = e` for subject, returning the
// resulting expression (with subject's own term removed). Used both as
// the single-variable solve in ChooseSubject/AddWithArtificialVariable
// and as the first step of changeSubject below.
func (e *Expression) newSubjectExpression(subject *Var) *Expression {
	coefficient := e.CoefficientFor(subject)
	scale := -1 / coefficient
	result := &Expression{constant: e.constant * scale, terms: make(map[*Var]float64, len(e.terms))}
	for v, c := range e.terms {
		if v == subject {
			continue
		}
		scaled := c * scale
		if !isNearZero(scaled) {
			result.terms[v] = scaled
		}
	}
	return result
}

// changeSubject treats e as the defining row of oldSubject (oldSubject
// = e) and returns the expression defining newSubject in terms of the
// remaining variables plus oldSubject itself (which becomes parametric
// with an implicit coefficient of 1/coefficientFor(newSubject)).
// newSubject must have a nonzero coefficient in e.
func (e *Expression) changeSubject(oldSubject, newSubject *Var) *Expression {
	coefficient := e.CoefficientFor(newSubject)
	result := e.newSubjectExpression(newSubject)
	return result.WithCoefficient(oldSubject, 1/coefficient)
}

// GetAnyPivotableVariable returns some variable in the expression whose
// Pivotable flag is true, and true; or nil, false if none exists.
func (e *Expression) GetAnyPivotableVariable() (*Var, bool) {
	for v := range e.terms {
		if v.IsPivotable() {
			return v, true
		}
	}
	return nil, false
}

func isNearZero(x float64) bool {
	return x < Epsilon && x > -Epsilon
}
