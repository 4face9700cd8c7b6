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

/*
Package cassowary implements the incremental Cassowary constraint-solving
algorithm: a simplex-based solver for linear equality and inequality
constraints where most constraints carry a strength (required, strong,
medium or weak) rather than a hard requirement, and where constraints
are added and removed one at a time against a live, already-solved
tableau rather than re-solved from scratch.

As an example of the API, asking one variable to stay near its current
value while a required relationship ties a second variable to it:

	package main

	import "fmt"

	import "github.com/costela/cassowary"

	func main() {
		solver, _ := cassowary.NewSolver() // you should check for errors

		x := cassowary.NewVariable("x")
		y := cassowary.NewVariable("y")
		x.SetValue(10)
		y.SetValue(10)

		solver.AddStay(x, cassowary.Weak, 1)
		solver.AddConstraint(cassowary.EqualTo(
			cassowary.NewVariableExpression(y, 1),
			cassowary.NewVariableExpression(x, 1),
			cassowary.Required, 1,
		))

		fmt.Printf("x = %f, y = %f\n", x.Value(), y.Value())
	}

Solver is not safe for concurrent use; a caller that needs concurrent
access must serialize it externally.
*/
package cassowary
