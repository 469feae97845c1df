// Package hydro holds types shared by the numeric hydrology packages.
package hydro

import "fmt"

// InvalidInputError reports an input outside the mathematical domain of
// a model: a division by zero, a logarithm of a non-positive number, or
// an unusable time grid. Physically implausible but computable
// parameters (θi > θs, f0 < fc, CN > 100) do not produce it; warning
// about those is a presentation concern.
type InvalidInputError struct {
	Param  string // name of the offending parameter
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Param, e.Reason)
}

// ConvergenceError reports that an iterative solve hit its iteration cap
// before reaching tolerance. Solves are iteration-capped so a
// pathological parameter set fails instead of spinning.
type ConvergenceError struct {
	Time       float64 // grid time being solved, in hours
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("no convergence after %d iterations at t=%g hr", e.Iterations, e.Time)
}
