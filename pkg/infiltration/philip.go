package infiltration

import "math"

// Philip holds the parameters of Philip's two-term infiltration
// equation, the short-time series solution of Richards' equation:
//
//	f(t) = ½·S·t^(−1/2) + K
//	F(t) = S·t^(1/2) + K·t
type Philip struct {
	Sorptivity float64 // S (cm/hr^0.5)
	K          float64 // hydraulic conductivity (cm/hr)
}

// Evaluate computes both curves in closed form. The grid must start
// strictly above zero: the sorptivity term diverges as t→0. Any real
// S and K are accepted; both curves are defined for all t > 0.
func (m Philip) Evaluate(grid Grid) (*Series, error) {
	if err := grid.validatePositive(); err != nil {
		return nil, err
	}
	s := newSeries(grid)
	for i, t := range grid {
		sqrtT := math.Sqrt(t)
		s.Rate[i] = 0.5*m.Sorptivity/sqrtT + m.K
		s.Cumulative[i] = m.Sorptivity*sqrtT + m.K*t
	}
	return s, nil
}
