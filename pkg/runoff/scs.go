// Package runoff implements the SCS Curve Number method for estimating
// direct runoff from a storm rainfall depth. Like the infiltration
// models, evaluation is a pure function of the inputs.
package runoff

import (
	"math"

	"github.com/hydromet/explorer/pkg/hydro"
)

// SCS holds the Curve Number method inputs. Depths are in centimeters;
// the 2540/CN − 25.4 retention formula is the metric form of the
// familiar 1000/CN − 10 (inches).
type SCS struct {
	Rainfall    float64 // storm rainfall depth P (cm)
	CurveNumber float64 // CN, dimensionless (physical range 0–100)
	IaRatio     float64 // initial abstraction ratio λ, conventionally 0.2
}

// Result holds every quantity the method produces, all in centimeters.
type Result struct {
	Retention          float64 `json:"retention"`           // S, potential maximum retention
	InitialAbstraction float64 `json:"initial_abstraction"` // Ia = λ·S
	ActualRetention    float64 `json:"actual_retention"`    // Fa, retention after runoff begins
	Runoff             float64 `json:"runoff"`              // Q, direct runoff
	Infiltration       float64 `json:"infiltration"`        // P − Q
}

// Evaluate computes retention, abstraction, runoff, and infiltration.
//
// The runoff branch is hard: Q is exactly zero until rainfall exceeds
// the initial abstraction, with no smoothing across the threshold.
// CN must be positive (S divides by it); CN > 100 and P ≤ 0 are
// physically implausible but mathematically fine, so they compute as
// given and any warning is left to the caller.
func (m SCS) Evaluate() (*Result, error) {
	if !(m.CurveNumber > 0) {
		return nil, &hydro.InvalidInputError{Param: "cn", Reason: "curve number must be positive"}
	}
	if math.IsInf(m.CurveNumber, 0) {
		return nil, &hydro.InvalidInputError{Param: "cn", Reason: "curve number must be finite"}
	}
	if math.IsNaN(m.Rainfall) || math.IsInf(m.Rainfall, 0) {
		return nil, &hydro.InvalidInputError{Param: "p", Reason: "rainfall depth must be finite"}
	}
	if math.IsNaN(m.IaRatio) || math.IsInf(m.IaRatio, 0) {
		return nil, &hydro.InvalidInputError{Param: "ia_ratio", Reason: "initial abstraction ratio must be finite"}
	}

	r := &Result{}
	r.Retention = 2540/m.CurveNumber - 25.4
	r.InitialAbstraction = m.IaRatio * r.Retention

	excess := m.Rainfall - r.InitialAbstraction
	if excess > 0 {
		r.Runoff = excess * excess / (excess + r.Retention)
		r.ActualRetention = r.Retention * excess / (excess + r.Retention)
	}
	r.Infiltration = m.Rainfall - r.Runoff
	return r, nil
}
