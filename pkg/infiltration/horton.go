package infiltration

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Horton holds the parameters of Horton's exponential-decay equation
// f(t) = fc + (f0−fc)·e^(−k·t). The rate is finite everywhere,
// including t=0 where it equals f0.
type Horton struct {
	F0    float64 // initial infiltration rate (cm/hr)
	Fc    float64 // final infiltration rate (cm/hr)
	Decay float64 // decay coefficient k (1/hr)
}

// Evaluate computes the rate curve in closed form and accumulates
// cumulative infiltration numerically: each interval contributes the
// rate at its right endpoint times the local step width (a rectangular
// rule, deliberately not the trapezoid of both endpoints), so
// cumulative[0] is exactly 0. The accumulation is a prefix sum over
// rate[i]·Δt[i], which handles non-uniform grids; unsorted grids are
// rejected by Validate. f0 < fc simply yields monotonic growth instead
// of decay.
func (m Horton) Evaluate(grid Grid) (*Series, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	s := newSeries(grid)
	inc := make([]float64, len(grid))
	for i, t := range grid {
		s.Rate[i] = m.Fc + (m.F0-m.Fc)*math.Exp(-m.Decay*t)
		if i > 0 {
			inc[i] = s.Rate[i] * (t - grid[i-1])
		}
	}
	floats.CumSum(s.Cumulative, inc)
	return s, nil
}
