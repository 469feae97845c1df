package infiltration

// Series holds an infiltration-rate curve and its cumulative curve,
// aligned index-for-index with the time grid that produced them.
// Cumulative is non-decreasing for every model; Rate is non-negative
// for physically valid parameter ranges but is reported as computed,
// never clamped (Green-Ampt with Δθ < 0 can go negative at small t).
type Series struct {
	Time       []float64 `json:"time"`       // hours
	Rate       []float64 `json:"rate"`       // cm/hr
	Cumulative []float64 `json:"cumulative"` // cm
}

// newSeries allocates a Series for the grid, with Time filled from a
// private copy so later mutation of the caller's grid cannot alias in.
func newSeries(grid Grid) *Series {
	n := len(grid)
	s := &Series{
		Time:       make([]float64, n),
		Rate:       make([]float64, n),
		Cumulative: make([]float64, n),
	}
	copy(s.Time, grid)
	return s
}
