// Package floor checks a stilling-basin floor slab against uplift and
// foundation bearing.
package floor

import (
	"math"

	"Bendung/internal/calc/check"
	"Bendung/internal/calc/drop"
)

const (
	// MinUpliftSafety is the required weight/uplift ratio.
	MinUpliftSafety = 1.5

	DefaultAllowableBearing   = 150.0 // kPa
	DefaultConcreteUnitWeight = 24.0  // kN/m3
	DefaultWaterUnitWeight    = 9.81  // kN/m3
)

type Input struct {
	BasinWidth         float64 `json:"basin_width_m"`
	BasinLength        float64 `json:"basin_length_m"`
	FloorThickness     float64 `json:"floor_thickness_m"`
	ApproachDepth      float64 `json:"approach_depth_m"`
	ConjugateDepth     float64 `json:"conjugate_depth_m"`
	StageDropHeight    float64 `json:"stage_drop_height_m"`
	AllowableBearing   float64 `json:"allowable_bearing_kpa"`
	ConcreteUnitWeight float64 `json:"concrete_unit_weight_knm3"`
	WaterUnitWeight    float64 `json:"water_unit_weight_knm3"`
}

type Result struct {
	ConcreteWeight     float64            `json:"concrete_weight_kn"`
	WaterWeight        float64            `json:"water_weight_kn"`
	TotalWeight        float64            `json:"total_weight_kn"`
	UpstreamHead       float64            `json:"upstream_uplift_head_m"`
	UpliftForce        float64            `json:"uplift_force_kn"`
	UpliftSafety       check.SafetyFactor `json:"uplift_safety_factor"`
	NetBearingPressure float64            `json:"net_bearing_pressure_kpa"`
	UpliftSafe         bool               `json:"uplift_safe"`
	BearingSafe        bool               `json:"bearing_safe"`
	OK                 bool               `json:"ok"`
}

// DefaultInput carries the material and soil defaults. Geometry is left zero.
func DefaultInput() Input {
	return Input{
		AllowableBearing:   DefaultAllowableBearing,
		ConcreteUnitWeight: DefaultConcreteUnitWeight,
		WaterUnitWeight:    DefaultWaterUnitWeight,
	}
}

// ForDesign fills the geometry of in from the final stage of a drop design.
// The checked length is the basin only; the free-fall span is excluded.
func ForDesign(d drop.Result, basinWidth, floorThickness float64, in Input) Input {
	final := d.Final()
	in.BasinWidth = basinWidth
	in.BasinLength = final.FloorLength - final.DropLength
	in.FloorThickness = floorThickness
	in.ApproachDepth = final.ApproachDepth
	in.ConjugateDepth = final.Jump.ConjugateDepth
	in.StageDropHeight = final.StageHeight
	return in
}

// Check computes slab and water weight against a trapezoidal uplift
// distribution running from y2 + H/2 upstream to y2 downstream.
func Check(in Input) (Result, error) {
	err := check.First(
		check.Positive("basin_width", in.BasinWidth),
		check.Positive("basin_length", in.BasinLength),
		check.Positive("floor_thickness", in.FloorThickness),
		check.Positive("approach_depth", in.ApproachDepth),
		check.Positive("conjugate_depth", in.ConjugateDepth),
		check.Positive("stage_drop_height", in.StageDropHeight),
		check.NonNegative("allowable_bearing", in.AllowableBearing),
		check.NonNegative("concrete_unit_weight", in.ConcreteUnitWeight),
		check.NonNegative("water_unit_weight", in.WaterUnitWeight),
	)
	if err != nil {
		return Result{}, err
	}

	area := in.BasinLength * in.BasinWidth
	concrete := area * in.FloorThickness * in.ConcreteUnitWeight
	water := 0.5 * (in.ApproachDepth + in.ConjugateDepth) * area * in.WaterUnitWeight
	total := concrete + water

	head := in.ConjugateDepth + 0.5*in.StageDropHeight
	uplift := 0.5 * (head + in.ConjugateDepth) * area * in.WaterUnitWeight

	sf := check.Ratio(total, uplift)
	net := math.Max(0, (total-uplift)/area)

	res := Result{
		ConcreteWeight:     concrete,
		WaterWeight:        water,
		TotalWeight:        total,
		UpstreamHead:       head,
		UpliftForce:        uplift,
		UpliftSafety:       sf,
		NetBearingPressure: net,
		UpliftSafe:         sf.AtLeast(MinUpliftSafety),
		BearingSafe:        net <= in.AllowableBearing,
	}
	res.OK = res.UpliftSafe && res.BearingSafe
	return res, nil
}
