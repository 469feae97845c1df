package infiltration

import (
	"errors"
	"math"
	"testing"

	"github.com/hydromet/explorer/pkg/hydro"
)

func TestHortonValues(t *testing.T) {
	// f0=10, fc=1, k=1 over t = {0, 1, 2}:
	//   rate = {10, 1+9e⁻¹, 1+9e⁻²}
	//   cumulative = {0, rate[1]·1, rate[1]·1 + rate[2]·1}
	m := Horton{F0: 10, Fc: 1, Decay: 1}
	s, err := m.Evaluate(Grid{0, 1, 2})
	if err != nil {
		t.Fatal(err)
	}

	wantRate := []float64{10, 4.3109149705429805, 2.2180175491295143}
	wantCumulative := []float64{0, 4.3109149705429805, 6.528932519672495}
	for i := range wantRate {
		if math.Abs(s.Rate[i]-wantRate[i]) > 1e-9 {
			t.Errorf("rate[%d] = %v, want %v", i, s.Rate[i], wantRate[i])
		}
		if math.Abs(s.Cumulative[i]-wantCumulative[i]) > 1e-9 {
			t.Errorf("cumulative[%d] = %v, want %v", i, s.Cumulative[i], wantCumulative[i])
		}
	}
}

func TestHortonStartsAtF0WithZeroCumulative(t *testing.T) {
	m := Horton{F0: 10, Fc: 1, Decay: 2}
	grid, err := UniformGrid(0, 24, 100)
	if err != nil {
		t.Fatal(err)
	}

	s, err := m.Evaluate(grid)
	if err != nil {
		t.Fatal(err)
	}
	if s.Rate[0] != m.F0 {
		t.Errorf("rate at t=0 = %g, want f0 = %g", s.Rate[0], m.F0)
	}
	if s.Cumulative[0] != 0 {
		t.Errorf("cumulative at t=0 = %g, want exactly 0", s.Cumulative[0])
	}
	for i := 1; i < len(s.Cumulative); i++ {
		if s.Cumulative[i] <= s.Cumulative[i-1] {
			t.Fatalf("cumulative not strictly increasing at index %d", i)
		}
	}
	// Rate decays from f0 toward fc without crossing it.
	for i, r := range s.Rate {
		if r < m.Fc || r > m.F0 {
			t.Fatalf("index %d: rate %g outside [fc, f0]", i, r)
		}
	}
}

func TestHortonNonUniformGridUsesLocalSteps(t *testing.T) {
	// On {0, 0.5, 2} the second interval is 1.5 hr wide; a uniform-step
	// accumulation would get this wrong.
	m := Horton{F0: 10, Fc: 1, Decay: 1}
	s, err := m.Evaluate(Grid{0, 0.5, 2})
	if err != nil {
		t.Fatal(err)
	}

	rate1 := 1 + 9*math.Exp(-0.5)
	rate2 := 1 + 9*math.Exp(-2)
	wantCumulative := []float64{0, rate1 * 0.5, rate1*0.5 + rate2*1.5}
	for i := range wantCumulative {
		if math.Abs(s.Cumulative[i]-wantCumulative[i]) > 1e-12 {
			t.Errorf("cumulative[%d] = %v, want %v", i, s.Cumulative[i], wantCumulative[i])
		}
	}
}

func TestHortonRisingCurveAllowed(t *testing.T) {
	// f0 < fc is physically odd but well-defined: the rate grows toward
	// fc instead of decaying.
	m := Horton{F0: 1, Fc: 5, Decay: 1}
	s, err := m.Evaluate(Grid{0, 1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(s.Rate); i++ {
		if s.Rate[i] <= s.Rate[i-1] {
			t.Fatalf("rate not increasing at index %d", i)
		}
	}
}

func TestHortonRejectsBadGrid(t *testing.T) {
	m := Horton{F0: 10, Fc: 1, Decay: 1}
	grids := map[string]Grid{
		"unsorted":       {0, 2, 1},
		"duplicate time": {0, 1, 1},
		"negative time":  {-1, 0, 1},
		"empty":          {},
		"Inf time":       {0, math.Inf(1)},
	}

	for name, grid := range grids {
		t.Run(name, func(t *testing.T) {
			_, err := m.Evaluate(grid)
			var inv *hydro.InvalidInputError
			if !errors.As(err, &inv) {
				t.Fatalf("expected InvalidInputError, got %v", err)
			}
		})
	}
}

func TestHortonSingleZeroPoint(t *testing.T) {
	// A one-point grid at t=0 is legal: rate f0, nothing accumulated.
	m := Horton{F0: 7, Fc: 2, Decay: 0.5}
	s, err := m.Evaluate(Grid{0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Rate[0] != 7 || s.Cumulative[0] != 0 {
		t.Errorf("got rate %g cumulative %g, want 7 and 0", s.Rate[0], s.Cumulative[0])
	}
}
