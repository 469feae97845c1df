package catalog

import (
	"errors"
	"math"
	"testing"

	"github.com/hydromet/explorer/pkg/hydro"
)

func TestSlugsRoundTrip(t *testing.T) {
	for _, d := range Descriptors() {
		k, err := ParseKind(d.Slug)
		if err != nil {
			t.Errorf("ParseKind(%q): %v", d.Slug, err)
			continue
		}
		if k != d.Kind {
			t.Errorf("ParseKind(%q) = %v, want %v", d.Slug, k, d.Kind)
		}
		if d.Kind.String() != d.Slug {
			t.Errorf("Kind(%d).String() = %q, want %q", d.Kind, d.Kind.String(), d.Slug)
		}
	}
}

func TestParseKindUnknown(t *testing.T) {
	_, err := ParseKind("richards")
	if !errors.Is(err, ErrUnknownModel) {
		t.Errorf("expected ErrUnknownModel, got %v", err)
	}
}

func TestDescriptorTableIsSound(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range Descriptors() {
		if seen[d.Slug] {
			t.Errorf("duplicate slug %q", d.Slug)
		}
		seen[d.Slug] = true

		if d.Name == "" || d.Group == "" || d.Description == "" {
			t.Errorf("%s: incomplete descriptor", d.Slug)
		}
		if !d.Implemented {
			continue
		}
		if len(d.Equations) == 0 {
			t.Errorf("%s: implemented model without equations", d.Slug)
		}
		if len(d.Symbols) == 0 {
			t.Errorf("%s: implemented model without a symbol legend", d.Slug)
		}
		if len(d.Params) == 0 {
			t.Errorf("%s: implemented model without parameters", d.Slug)
		}
		for _, p := range d.Params {
			if p.Default < p.Min || p.Default > p.Max {
				t.Errorf("%s.%s: default %g outside [%g, %g]", d.Slug, p.Key, p.Default, p.Min, p.Max)
			}
			if p.Step <= 0 {
				t.Errorf("%s.%s: non-positive step", d.Slug, p.Key)
			}
		}
		switch d.Result {
		case ShapeSeries:
			if d.Grid == nil {
				t.Errorf("%s: series model without a default grid", d.Slug)
			}
		case ShapeScalars:
			if d.Grid != nil {
				t.Errorf("%s: scalar model with a grid", d.Slug)
			}
		default:
			t.Errorf("%s: implemented model without a result shape", d.Slug)
		}
	}
}

func TestEvaluateDefaults(t *testing.T) {
	// No parameters supplied: the descriptor defaults evaluate on the
	// descriptor grid.
	res, err := Evaluate(Request{Kind: KindPhilip})
	if err != nil {
		t.Fatal(err)
	}
	if res.Kind != KindPhilip {
		t.Errorf("result kind = %v, want philip", res.Kind)
	}
	if res.Runoff != nil {
		t.Error("series model filled the runoff arm")
	}
	if res.Series == nil {
		t.Fatal("series model returned no series")
	}
	if len(res.Series.Time) != 100 {
		t.Fatalf("got %d points, want the default 100", len(res.Series.Time))
	}
	// S=1, K=1 at t=0.1: f = 0.5/√0.1 + 1.
	if math.Abs(res.Series.Rate[0]-2.5811388300841898) > 1e-9 {
		t.Errorf("rate[0] = %v, want ≈2.58114", res.Series.Rate[0])
	}
}

func TestEvaluateWithParamsAndGrid(t *testing.T) {
	res, err := Evaluate(Request{
		Kind:   KindHorton,
		Params: map[string]float64{"f0": 10, "fc": 1, "k": 1},
		Grid:   &GridSpec{Start: 0, End: 2, Points: 3},
	})
	if err != nil {
		t.Fatal(err)
	}
	wantRate := []float64{10, 4.310914970542981, 2.2180175491295143}
	for i, want := range wantRate {
		if math.Abs(res.Series.Rate[i]-want) > 1e-9 {
			t.Errorf("rate[%d] = %v, want %v", i, res.Series.Rate[i], want)
		}
	}
	if res.Series.Cumulative[0] != 0 {
		t.Errorf("cumulative[0] = %v, want 0", res.Series.Cumulative[0])
	}
}

func TestEvaluateRunoff(t *testing.T) {
	res, err := Evaluate(Request{Kind: KindSCSCurveNumber})
	if err != nil {
		t.Fatal(err)
	}
	if res.Series != nil {
		t.Error("scalar model filled the series arm")
	}
	if res.Runoff == nil {
		t.Fatal("scalar model returned no runoff result")
	}
	// Defaults P=5, CN=70, λ=0.2.
	if math.Abs(res.Runoff.Runoff-0.5812803) > 1e-6 {
		t.Errorf("Q = %v, want ≈0.5812803", res.Runoff.Runoff)
	}
	if math.Abs(res.Runoff.Infiltration-4.4187197) > 1e-6 {
		t.Errorf("infiltration = %v, want ≈4.4187197", res.Runoff.Infiltration)
	}
}

func TestEvaluateRejections(t *testing.T) {
	tests := []struct {
		name      string
		req       Request
		wantParam string
	}{
		{
			"unknown parameter key",
			Request{Kind: KindPhilip, Params: map[string]float64{"f0": 1}},
			"f0",
		},
		{
			"non-finite value",
			Request{Kind: KindPhilip, Params: map[string]float64{"s": math.NaN()}},
			"s",
		},
		{
			"solver on non-green-ampt",
			Request{Kind: KindHorton, Solver: "implicit"},
			"solver",
		},
		{
			"unknown solver",
			Request{Kind: KindGreenAmpt, Solver: "bisect"},
			"solver",
		},
		{
			"grid on scalar model",
			Request{Kind: KindSCSCurveNumber, Grid: &GridSpec{Start: 0, End: 24, Points: 10}},
			"grid",
		},
		{
			"degenerate grid",
			Request{Kind: KindPhilip, Grid: &GridSpec{Start: 5, End: 5, Points: 10}},
			"end",
		},
		{
			"too few points",
			Request{Kind: KindPhilip, Grid: &GridSpec{Start: 0.1, End: 24, Points: 1}},
			"points",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.req)
			var inv *hydro.InvalidInputError
			if !errors.As(err, &inv) {
				t.Fatalf("expected InvalidInputError, got %v", err)
			}
			if inv.Param != tt.wantParam {
				t.Errorf("offending parameter = %q, want %q", inv.Param, tt.wantParam)
			}
		})
	}
}

func TestEvaluateSolverSelectsImplicit(t *testing.T) {
	explicit, err := Evaluate(Request{Kind: KindGreenAmpt, Solver: "explicit"})
	if err != nil {
		t.Fatal(err)
	}
	implicit, err := Evaluate(Request{Kind: KindGreenAmpt, Solver: "implicit"})
	if err != nil {
		t.Fatal(err)
	}
	n := len(explicit.Series.Cumulative) - 1
	if implicit.Series.Cumulative[n] <= explicit.Series.Cumulative[n] {
		t.Errorf("implicit cumulative %v not above explicit %v at the horizon",
			implicit.Series.Cumulative[n], explicit.Series.Cumulative[n])
	}
}

func TestEvaluatePlaceholders(t *testing.T) {
	for _, d := range Descriptors() {
		if d.Implemented {
			continue
		}
		_, err := Evaluate(Request{Kind: d.Kind})
		if !errors.Is(err, ErrNotImplemented) {
			t.Errorf("%s: expected ErrNotImplemented, got %v", d.Slug, err)
		}
	}
}

func TestEvaluateUnknownKind(t *testing.T) {
	_, err := Evaluate(Request{Kind: Kind(99)})
	if !errors.Is(err, ErrUnknownModel) {
		t.Errorf("expected ErrUnknownModel, got %v", err)
	}
	_, err = Evaluate(Request{Kind: KindUnknown})
	if !errors.Is(err, ErrUnknownModel) {
		t.Errorf("expected ErrUnknownModel for KindUnknown, got %v", err)
	}
}
