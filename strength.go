package cassowary

import "github.com/costela/cassowary/internal/engine"

// Strength is a symbolic priority level: Required constraints must
// hold exactly, while Strong, Medium and Weak constraints are
// satisfied on a best-effort basis, strongest first, whenever they
// conflict with each other or cannot all be satisfied at once.
type Strength = engine.Strength

var (
	Required = engine.Required
	Strong   = engine.Strong
	Medium   = engine.Medium
	Weak     = engine.Weak
)
