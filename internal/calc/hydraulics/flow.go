// Package hydraulics has the open-channel relations shared by the weir and
// drop-structure calculators. All quantities are SI: m, m3/s, m/s2.
package hydraulics

import (
	"math"

	"Bendung/internal/calc/check"
)

// DefaultGravity is used wherever a caller leaves gravity at zero.
const DefaultGravity = 9.81

// Gravity returns g, substituting DefaultGravity for zero.
// Negative or non-finite values are rejected.
func Gravity(g float64) (float64, error) {
	if g == 0 {
		return DefaultGravity, nil
	}
	if err := check.Positive("gravity", g); err != nil {
		return 0, err
	}
	return g, nil
}

// FlowState is the hydraulic condition at one cross-section.
type FlowState struct {
	FlowRate float64 `json:"flow_rate_m3s"`
	Width    float64 `json:"width_m"`
	Depth    float64 `json:"depth_m"`
}

// NewFlowState validates width and depth. A zero flow rate is allowed
// (still water); a negative one is not.
func NewFlowState(flowRate, width, depth float64) (FlowState, error) {
	err := check.First(
		check.NonNegative("flow_rate", flowRate),
		check.Positive("width", width),
		check.Positive("depth", depth),
	)
	if err != nil {
		return FlowState{}, err
	}
	return FlowState{FlowRate: flowRate, Width: width, Depth: depth}, nil
}

// Velocity is the mean velocity Q / (B y).
func (s FlowState) Velocity() float64 {
	return s.FlowRate / (s.Width * s.Depth)
}

// Froude is V / sqrt(g y).
func (s FlowState) Froude(g float64) float64 {
	return s.Velocity() / math.Sqrt(g*s.Depth)
}

// UnitDischarge is q = Q / B.
func (s FlowState) UnitDischarge() float64 {
	return s.FlowRate / s.Width
}

// CriticalDepth is yc = (q^2 / g)^(1/3) for unit discharge q.
func CriticalDepth(q, g float64) float64 {
	return math.Cbrt(q * q / g)
}

// ConjugateDepth is the sequent depth y2 from the momentum balance across a
// hydraulic jump with upstream depth y1 and Froude number fr.
func ConjugateDepth(y1, fr float64) float64 {
	return 0.5 * y1 * (math.Sqrt(1+8*fr*fr) - 1)
}
