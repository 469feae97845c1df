// Package catalog names the models the explorer knows, carries their
// presentation metadata (governing equations, symbol legends, parameter
// bounds), and dispatches evaluation requests to the numeric packages.
// The set of kinds is closed: callers switch on Kind or on the sentinel
// errors, never on strings.
package catalog

import (
	"errors"
	"fmt"
	"math"

	"github.com/hydromet/explorer/pkg/hydro"
	"github.com/hydromet/explorer/pkg/infiltration"
	"github.com/hydromet/explorer/pkg/runoff"
)

// Kind identifies one model in the catalog.
type Kind int

const (
	KindUnknown Kind = iota
	KindGreenAmpt
	KindPhilip
	KindHorton
	KindSCSCurveNumber
	KindRationalMethod
	KindTimeArea
	KindUnitHydrograph
	KindPenmanMonteith
	KindHargreaves
	KindPriestleyTaylor
)

var (
	// ErrUnknownModel reports a slug or kind outside the catalog.
	ErrUnknownModel = errors.New("unknown model")
	// ErrNotImplemented reports a cataloged model that has metadata but
	// no evaluator yet. Callers render these as "coming soon", not as
	// client errors.
	ErrNotImplemented = errors.New("not yet implemented")
)

// String returns the model's slug, the identifier used in URLs, CLI
// arguments, and serialized requests.
func (k Kind) String() string {
	if d, ok := Lookup(k); ok {
		return d.Slug
	}
	return "unknown"
}

// ParseKind resolves a slug back to its Kind.
func ParseKind(slug string) (Kind, error) {
	for _, d := range descriptors {
		if d.Slug == slug {
			return d.Kind, nil
		}
	}
	return KindUnknown, fmt.Errorf("%w %q", ErrUnknownModel, slug)
}

// Request is one evaluation of one model. Missing parameters take the
// descriptor defaults; a nil Grid takes the descriptor's default grid.
// Solver selects the Green-Ampt cumulative method ("explicit" or
// "implicit") and is rejected for every other model.
type Request struct {
	Kind   Kind
	Params map[string]float64
	Grid   *GridSpec
	Solver string
}

// Result is the tagged union of model outputs: infiltration models fill
// Series, the curve-number method fills Runoff.
type Result struct {
	Kind   Kind
	Series *infiltration.Series
	Runoff *runoff.Result
}

// Evaluate dispatches the request to the model's evaluator.
func Evaluate(req Request) (*Result, error) {
	d, ok := Lookup(req.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: kind %d", ErrUnknownModel, int(req.Kind))
	}
	if !d.Implemented {
		return nil, fmt.Errorf("model %s: %w", d.Slug, ErrNotImplemented)
	}
	params, err := resolveParams(d, req.Params)
	if err != nil {
		return nil, err
	}
	if req.Solver != "" && req.Kind != KindGreenAmpt {
		return nil, &hydro.InvalidInputError{Param: "solver", Reason: "only the green-ampt model selects a solver"}
	}

	if d.Result == ShapeScalars {
		if req.Grid != nil {
			return nil, &hydro.InvalidInputError{Param: "grid", Reason: d.Slug + " produces scalars, not a time series"}
		}
		r, err := runoff.SCS{
			Rainfall:    params["p"],
			CurveNumber: params["cn"],
			IaRatio:     params["ia_ratio"],
		}.Evaluate()
		if err != nil {
			return nil, err
		}
		return &Result{Kind: req.Kind, Runoff: r}, nil
	}

	gs := d.Grid
	if req.Grid != nil {
		gs = req.Grid
	}
	grid, err := infiltration.UniformGrid(gs.Start, gs.End, gs.Points)
	if err != nil {
		return nil, err
	}

	var series *infiltration.Series
	switch req.Kind {
	case KindGreenAmpt:
		solver := infiltration.SolverExplicit
		switch req.Solver {
		case "", "explicit":
		case "implicit":
			solver = infiltration.SolverImplicit
		default:
			return nil, &hydro.InvalidInputError{Param: "solver", Reason: fmt.Sprintf("unknown solver %q", req.Solver)}
		}
		series, err = infiltration.GreenAmpt{
			Ks:     params["ks"],
			Psi:    params["psi"],
			ThetaI: params["theta_i"],
			ThetaS: params["theta_s"],
			Solver: solver,
		}.Evaluate(grid)
	case KindPhilip:
		series, err = infiltration.Philip{
			Sorptivity: params["s"],
			K:          params["k"],
		}.Evaluate(grid)
	case KindHorton:
		series, err = infiltration.Horton{
			F0:    params["f0"],
			Fc:    params["fc"],
			Decay: params["k"],
		}.Evaluate(grid)
	}
	if err != nil {
		return nil, err
	}
	return &Result{Kind: req.Kind, Series: series}, nil
}

// resolveParams merges supplied values over the descriptor defaults.
// Keys the model does not define are rejected rather than ignored, so a
// typo fails loudly instead of silently evaluating defaults. Values
// outside the documented slider range are allowed; the bounds are UI
// guidance, not a mathematical domain.
func resolveParams(d Descriptor, supplied map[string]float64) (map[string]float64, error) {
	out := make(map[string]float64, len(d.Params))
	for _, p := range d.Params {
		out[p.Key] = p.Default
	}
	for key, v := range supplied {
		if _, ok := out[key]; !ok {
			return nil, &hydro.InvalidInputError{Param: key, Reason: "not a parameter of " + d.Slug}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &hydro.InvalidInputError{Param: key, Reason: "value must be finite"}
		}
		out[key] = v
	}
	return out, nil
}
