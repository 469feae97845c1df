// Package infiltration implements the closed-form infiltration models
// (Green-Ampt, Philip, Horton) evaluated over a time grid. Every model
// is a pure function of its parameters: no shared state, deterministic
// output, safe to call concurrently.
package infiltration

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/hydromet/explorer/pkg/hydro"
)

// Grid is an ordered sequence of elapsed times in hours.
type Grid []float64

// UniformGrid returns an evenly spaced grid of points times spanning
// [start, end], endpoints included.
func UniformGrid(start, end float64, points int) (Grid, error) {
	if points < 2 {
		return nil, &hydro.InvalidInputError{Param: "points", Reason: "a uniform grid needs at least 2 points"}
	}
	if math.IsNaN(start) || math.IsInf(start, 0) || math.IsNaN(end) || math.IsInf(end, 0) {
		return nil, &hydro.InvalidInputError{Param: "grid", Reason: "grid bounds must be finite"}
	}
	if start < 0 {
		return nil, &hydro.InvalidInputError{Param: "start", Reason: "grid times must be non-negative"}
	}
	if end <= start {
		return nil, &hydro.InvalidInputError{Param: "end", Reason: "grid end must be greater than start"}
	}
	g := make(Grid, points)
	floats.Span(g, start, end)
	return g, nil
}

// Validate checks that the grid is usable for evaluation and sequential
// accumulation: non-empty, finite, non-negative, strictly increasing.
func (g Grid) Validate() error {
	if len(g) == 0 {
		return &hydro.InvalidInputError{Param: "grid", Reason: "empty time grid"}
	}
	prev := math.Inf(-1)
	for i, t := range g {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return &hydro.InvalidInputError{Param: "grid", Reason: fmt.Sprintf("non-finite time at index %d", i)}
		}
		if t < 0 {
			return &hydro.InvalidInputError{Param: "grid", Reason: fmt.Sprintf("negative time %g at index %d", t, i)}
		}
		if t <= prev {
			return &hydro.InvalidInputError{Param: "grid", Reason: fmt.Sprintf("times must be strictly increasing (index %d)", i)}
		}
		prev = t
	}
	return nil
}

// validatePositive is Validate plus the requirement that every time is
// strictly positive, for models whose rate diverges at t=0.
func (g Grid) validatePositive() error {
	if err := g.Validate(); err != nil {
		return err
	}
	if g[0] <= 0 {
		return &hydro.InvalidInputError{Param: "grid", Reason: "time grid must start above zero (rate is undefined at t=0)"}
	}
	return nil
}
