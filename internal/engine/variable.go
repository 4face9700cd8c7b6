// Package engine implements the Cassowary incremental constraint solver:
// the symbolic linear expression algebra, the tableau, and the primal/dual
// simplex engine that keeps it in canonical form. Clients of this module
// should not import it directly; the cassowary package is the public
// surface built on top of it.
package engine

import "fmt"

// varKind tags the role a Var plays in the tableau. The four capability
// predicates below (IsExternal, IsRestricted, IsPivotable, IsDummy) are
// derived from it rather than stored independently, so a kind and its
// capabilities can never drift apart.
type varKind uint8

const (
	kindDecision varKind = iota
	kindSlack
	kindDummy
	kindObjective
	kindArtificial
)

func (k varKind) String() string {
	switch k {
	case kindDecision:
		return "decision"
	case kindSlack:
		return "slack"
	case kindDummy:
		return "dummy"
	case kindObjective:
		return "objective"
	case kindArtificial:
		return "artificial"
	default:
		return "unknown"
	}
}

// Var is a tableau variable. Identity is by pointer: two Vars constructed
// with the same name are distinct, exactly as spec'd for decision variables
// and relied on throughout the solver for map keys.
type Var struct {
	name  string
	kind  varKind
	value float64
}

// NewDecisionVariable creates a user-visible decision variable with the
// given name and an initial value of 0.
func NewDecisionVariable(name string) *Var {
	return &Var{name: name, kind: kindDecision}
}

func newSlackVariable(name string) *Var {
	return &Var{name: name, kind: kindSlack}
}

func newDummyVariable(name string) *Var {
	return &Var{name: name, kind: kindDummy}
}

func newObjectiveVariable(name string) *Var {
	return &Var{name: name, kind: kindObjective}
}

func newArtificialVariable(name string) *Var {
	return &Var{name: name, kind: kindArtificial}
}

// Name returns the variable's human-readable name, purely for
// diagnostics and logging; it plays no role in equality or lookup.
func (v *Var) Name() string {
	if v == nil {
		return "<nil>"
	}
	return v.name
}

// Value returns the variable's current numeric value. Only meaningful
// for decision variables; internal variables always report 0 here since
// callers never observe them.
func (v *Var) Value() float64 {
	return v.value
}

// SetValue overwrites the stored value. Used by the solver's write-back
// step and, for decision variables, may be read by client code between
// solves.
func (v *Var) SetValue(x float64) {
	v.value = x
}

// IsExternal reports whether v is a client-visible decision variable.
func (v *Var) IsExternal() bool { return v.kind == kindDecision }

// IsRestricted reports whether v is implicitly constrained to be >= 0.
func (v *Var) IsRestricted() bool {
	switch v.kind {
	case kindSlack, kindDummy, kindArtificial:
		return true
	default:
		return false
	}
}

// IsPivotable reports whether v may be chosen as an entering variable.
func (v *Var) IsPivotable() bool {
	switch v.kind {
	case kindSlack, kindArtificial:
		return true
	default:
		return false
	}
}

// IsDummy reports whether v is a dummy marker, never pivoted into the
// basis and only used as a removable handle for required equalities.
func (v *Var) IsDummy() bool { return v.kind == kindDummy }

func (v *Var) String() string {
	if v == nil {
		return "<nil var>"
	}
	return fmt.Sprintf("%s[%s]", v.name, v.kind)
}
