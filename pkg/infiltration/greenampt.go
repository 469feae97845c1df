package infiltration

import (
	"math"

	"github.com/hydromet/explorer/pkg/hydro"
)

// Solver selects how Green-Ampt cumulative infiltration is computed.
type Solver int

const (
	// SolverExplicit uses the linear approximation F(t) = Ks·t. This is
	// the classroom shortcut: cumulative infiltration grows linearly and
	// does not show the deceleration implied by the implicit relation
	// that the model's governing equation displays.
	SolverExplicit Solver = iota
	// SolverImplicit solves F = Ks·t + ψΔθ·ln(1 + F/(ψΔθ)) at each grid
	// time with an iteration-capped Newton solve.
	SolverImplicit
)

// GreenAmpt holds the Green-Ampt infiltration model parameters.
type GreenAmpt struct {
	Ks     float64 // saturated hydraulic conductivity (cm/hr)
	Psi    float64 // matric potential at the wetting front (cm)
	ThetaI float64 // initial water content (cm³/cm³)
	ThetaS float64 // saturated water content (cm³/cm³)
	Solver Solver
}

const (
	maxNewtonIterations = 100
	newtonTolerance     = 1e-10
)

// DeltaTheta returns Δθ = θs − θi, the moisture deficit taken up as the
// wetting front advances.
func (m GreenAmpt) DeltaTheta() float64 {
	return m.ThetaS - m.ThetaI
}

// Evaluate computes the infiltration-rate and cumulative-infiltration
// series over the grid. The grid must start strictly above zero: the
// rate term ψΔθ/F(t) diverges as t→0. Ks must be positive for the same
// reason. θi > θs is computed as given (the early-time rate goes
// negative); it is not an error.
func (m GreenAmpt) Evaluate(grid Grid) (*Series, error) {
	if err := grid.validatePositive(); err != nil {
		return nil, err
	}
	if !(m.Ks > 0) {
		return nil, &hydro.InvalidInputError{Param: "ks", Reason: "saturated hydraulic conductivity must be positive"}
	}
	psiDelta := m.Psi * m.DeltaTheta()

	s := newSeries(grid)
	switch m.Solver {
	case SolverImplicit:
		if !(psiDelta > 0) {
			return nil, &hydro.InvalidInputError{Param: "psi", Reason: "implicit solve requires ψ·Δθ > 0"}
		}
		// Warm-start each solve from the previous grid time; F(t) is
		// increasing, so the previous root is a good left bracket.
		F := m.Ks * grid[0]
		for i, t := range grid {
			var ok bool
			F, ok = solveImplicitF(m.Ks*t, psiDelta, F)
			if !ok {
				return nil, &hydro.ConvergenceError{Time: t, Iterations: maxNewtonIterations}
			}
			s.Cumulative[i] = F
			s.Rate[i] = m.Ks * (1 + psiDelta/F)
		}
	default:
		for i, t := range grid {
			F := m.Ks * t
			s.Cumulative[i] = F
			s.Rate[i] = m.Ks * (1 + psiDelta/F)
		}
	}
	return s, nil
}

// solveImplicitF finds the root of h(F) = F − Ks·t − ψΔθ·ln(1 + F/(ψΔθ))
// by Newton's method. h is increasing and convex on F > 0 with
// h(Ks·t) < 0, so iteration from max(guess, Ks·t) converges; the cap is
// a safety net, not an expected exit.
func solveImplicitF(kst, psiDelta, guess float64) (float64, bool) {
	F := math.Max(guess, kst)
	for iter := 0; iter < maxNewtonIterations; iter++ {
		h := F - kst - psiDelta*math.Log(1+F/psiDelta)
		if math.Abs(h) <= newtonTolerance*(1+F) {
			return F, true
		}
		dh := F / (psiDelta + F)
		next := F - h/dh
		if next <= 0 || math.IsNaN(next) {
			next = F / 2
		}
		F = next
	}
	return F, false
}
