package jump

import (
	"math"

	"Bendung/internal/calc/hydraulics"
)

type Type string

const (
	Undular Type = "Undular"
	USBRI   Type = "USBR-I"
	USBRIV  Type = "USBR-IV"
	USBRIII Type = "USBR-III"
	USBRII  Type = "USBR-II"
	Unknown Type = "Unknown"
)

// HighVelocity separates USBR-III from USBR-II basins (m/s).
const HighVelocity = 18.0

type band struct {
	jumpType Type
	matches  func(fr, v float64) bool
	lengthK  float64
	sillFrac float64
}

// bands is evaluated in order and the first match wins. Bands do not overlap.
var bands = []band{
	{Undular, func(fr, v float64) bool { return fr < 1.7 }, 4.0, 0},
	{USBRI, func(fr, v float64) bool { return fr >= 1.7 && fr < 2.5 }, 5.0, 0},
	{USBRIV, func(fr, v float64) bool { return fr >= 2.5 && fr <= 4.5 }, 6.0, 0.10},
	{USBRIII, func(fr, v float64) bool { return fr > 4.5 && v < HighVelocity }, 2.7, 0.15},
	{USBRII, func(fr, v float64) bool { return fr > 4.5 && v >= HighVelocity }, 4.3, 0.10},
}

type Input struct {
	FlowRate      float64 `json:"flow_rate_m3s"`
	Width         float64 `json:"width_m"`
	ApproachDepth float64 `json:"approach_depth_m"`
	Gravity       float64 `json:"gravity_ms2"`
}

type Result struct {
	Velocity          float64 `json:"velocity_ms"`
	FroudeNumber      float64 `json:"froude_number"`
	ConjugateDepth    float64 `json:"conjugate_depth_m"`
	JumpType          Type    `json:"jump_type"`
	BasinLengthFactor float64 `json:"basin_length_factor"`
	EndSillFraction   float64 `json:"end_sill_fraction"`
	BasinLength       float64 `json:"basin_length_m"`
	EndSillHeight     float64 `json:"end_sill_height_m"`
}

// Select returns the jump type and its empirical coefficients for a Froude
// number and approach velocity. Unknown is returned only for NaN input.
func Select(fr, v float64) (Type, float64, float64) {
	for _, b := range bands {
		if b.matches(fr, v) {
			return b.jumpType, b.lengthK, b.sillFrac
		}
	}
	return Unknown, 0, 0
}

// Classify computes the jump at the toe of a chute or drop with approach
// depth y1 and selects the stilling-basin type for it.
func Classify(in Input) (Result, error) {
	g, err := hydraulics.Gravity(in.Gravity)
	if err != nil {
		return Result{}, err
	}
	state, err := hydraulics.NewFlowState(in.FlowRate, in.Width, in.ApproachDepth)
	if err != nil {
		return Result{}, err
	}

	v := state.Velocity()
	fr := state.Froude(g)
	y2 := hydraulics.ConjugateDepth(state.Depth, fr)
	jt, k, sill := Select(fr, v)

	return Result{
		Velocity:          v,
		FroudeNumber:      fr,
		ConjugateDepth:    y2,
		JumpType:          jt,
		BasinLengthFactor: k,
		EndSillFraction:   sill,
		BasinLength:       k * y2,
		EndSillHeight:     sill * y2,
	}, nil
}

// Subcritical reports whether the approach flow cannot form a jump.
func (r Result) Subcritical() bool {
	return r.FroudeNumber <= 1 || math.IsNaN(r.FroudeNumber)
}
