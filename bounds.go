package cassowary

// AddLowerBound adds the required constraint v >= lower.
func AddLowerBound(s *Solver, v *Variable, lower float64) error {
	c := GreaterThanOrEqualTo(NewVariableExpression(v, 1), NewConstantExpression(lower), Required, 1)
	return s.AddConstraint(c)
}

// AddUpperBound adds the required constraint v <= upper.
func AddUpperBound(s *Solver, v *Variable, upper float64) error {
	c := LessThanOrEqualTo(NewVariableExpression(v, 1), NewConstantExpression(upper), Required, 1)
	return s.AddConstraint(c)
}

// AddBounds adds both AddLowerBound(s, v, lower) and AddUpperBound(s,
// v, upper), matching how golpa.Variable.SetBounds expresses a range
// as two inequalities rather than a first-class bound object.
func AddBounds(s *Solver, v *Variable, lower, upper float64) error {
	if err := AddLowerBound(s, v, lower); err != nil {
		return err
	}
	return AddUpperBound(s, v, upper)
}
