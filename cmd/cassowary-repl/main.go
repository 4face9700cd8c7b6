/*
Copyright © 2015-2022 Leo Antunes <leo@costela.net>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

// cassowary-repl is a small interactive driver for the cassowary
// constraint solver: it reads one command per line, translates it
// into calls against the public cassowary API, and prints every known
// variable's value after each constraint it adds (and on `show`). It
// has no access to the solver
// beyond what any other client of the library has.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/costela/cassowary"
)

type repl struct {
	solver *cassowary.Solver
	vars   map[string]*cassowary.Variable
	order  []string
}

func newRepl() (*repl, error) {
	solver, err := cassowary.NewSolver(cassowary.WithLogger(cassowary.NopLogger))
	if err != nil {
		return nil, err
	}
	return &repl{
		solver: solver,
		vars:   map[string]*cassowary.Variable{},
	}, nil
}

func (r *repl) variable(name string) *cassowary.Variable {
	if v, ok := r.vars[name]; ok {
		return v
	}
	v := cassowary.NewVariable(name)
	r.vars[name] = v
	r.order = append(r.order, name)
	if err := r.solver.AddVar(v); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return v
}

// parseExpr accepts a tiny subset of linear-expression syntax:
// a sequence of `[+|-] [coefficient*]name` or `[+|-]constant` terms,
// e.g. "2*x - y + 10".
func (r *repl) parseExpr(s string) (*cassowary.Expression, error) {
	s = strings.ReplaceAll(s, "-", " -")
	s = strings.ReplaceAll(s, "+", " +")
	fields := strings.Fields(s)

	expr := cassowary.NewConstantExpression(0)
	sign := 1.0
	for _, f := range fields {
		switch {
		case strings.HasPrefix(f, "+"):
			f = f[1:]
		case strings.HasPrefix(f, "-"):
			sign = -sign
			f = f[1:]
		}
		if f == "" {
			// a lone sign applies to the next term
			continue
		}

		name := f
		coefficient := 1.0
		if idx := strings.Index(f, "*"); idx >= 0 {
			var err error
			coefficient, err = strconv.ParseFloat(f[:idx], 64)
			if err != nil {
				return nil, fmt.Errorf("parsing coefficient in %q: %w", f, err)
			}
			name = f[idx+1:]
		}

		if c, err := strconv.ParseFloat(name, 64); err == nil {
			expr = expr.Plus(cassowary.NewConstantExpression(sign * c))
		} else {
			expr = expr.PlusTerm(r.variable(name), sign*coefficient)
		}
		sign = 1.0
	}
	return expr, nil
}

func (r *repl) handle(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	var err error
	switch fields[0] {
	case "add":
		err = r.handleAdd(fields[1:])
	case "edit":
		err = r.handleEdit(fields[1:])
	case "suggest":
		err = r.handleSuggest(fields[1:])
	case "begin":
		err = r.solver.BeginEdit()
	case "end":
		err = r.solver.EndEdit()
	case "resolve":
		err = r.solver.Resolve()
	case "show":
		r.show()
	case "help":
		r.help()
	default:
		err = fmt.Errorf("unknown command %q (try: help)", fields[0])
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
}

// handleAdd parses `add <lhs> <op> <rhs>` where op is one of =, <=, >=.
func (r *repl) handleAdd(fields []string) error {
	joined := strings.Join(fields, " ")
	var op string
	for _, candidate := range []string{"<=", ">=", "="} {
		if strings.Contains(joined, candidate) {
			op = candidate
			break
		}
	}
	if op == "" {
		return fmt.Errorf("expected one of =, <=, >= in %q", joined)
	}

	parts := strings.SplitN(joined, op, 2)
	lhs, err := r.parseExpr(parts[0])
	if err != nil {
		return err
	}
	rhs, err := r.parseExpr(parts[1])
	if err != nil {
		return err
	}

	var c *cassowary.Constraint
	switch op {
	case "=":
		c = cassowary.EqualTo(lhs, rhs, cassowary.Required, 1)
	case "<=":
		c = cassowary.LessThanOrEqualTo(lhs, rhs, cassowary.Required, 1)
	case ">=":
		c = cassowary.GreaterThanOrEqualTo(lhs, rhs, cassowary.Required, 1)
	}
	if err := r.solver.AddConstraint(c); err != nil {
		return err
	}
	r.show()
	return nil
}

func (r *repl) handleEdit(fields []string) error {
	if len(fields) != 1 {
		return fmt.Errorf("usage: edit <variable>")
	}
	return r.solver.AddEditVar(r.variable(fields[0]), cassowary.Strong)
}

func (r *repl) handleSuggest(fields []string) error {
	if len(fields) != 2 {
		return fmt.Errorf("usage: suggest <variable> <value>")
	}
	v, ok := r.vars[fields[0]]
	if !ok {
		return fmt.Errorf("unknown variable %q", fields[0])
	}
	value, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return fmt.Errorf("parsing value: %w", err)
	}
	return r.solver.SuggestValue(v, value)
}

func (r *repl) show() {
	for _, name := range r.order {
		fmt.Printf("%s = %g\n", name, r.vars[name].Value())
	}
}

func (r *repl) help() {
	fmt.Println(`commands:
  add <lhs> = <rhs>       add a required equality constraint
  add <lhs> <= <rhs>      add a required inequality constraint
  add <lhs> >= <rhs>      add a required inequality constraint
  begin                   start an edit session
  edit <var>              make <var> available to suggest (strong strength)
  suggest <var> <value>   perturb an edited variable's row constant
  resolve                 re-solve after one or more suggest commands
  end                     close the current edit session
  show                    print every known variable's value
  help                    print this message`)
}

func main() {
	r, err := newRepl()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not start solver: %v\n", err)
		os.Exit(1)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		r.handle(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "reading input: %v\n", err)
		os.Exit(1)
	}
}
