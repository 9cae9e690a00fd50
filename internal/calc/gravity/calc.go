// Package gravity checks a gravity weir body against overturning, sliding,
// eccentricity and foundation bearing from a recap of its forces. Forces are
// in tonnes and lengths in metres, as in the load recap tables.
package gravity

import (
	"math"

	"Bendung/internal/calc/check"
)

type Condition string

const (
	NormalWater Condition = "normal"
	FloodWater  Condition = "flood"
)

const DefaultMinSafety = 1.5

type Input struct {
	Condition Condition `json:"condition"`

	BaseWidth       float64 `json:"base_width_m"`
	FoundationDepth float64 `json:"foundation_depth_m"`
	SoilUnitWeight  float64 `json:"soil_unit_weight_tm3"`
	FrictionAngle   float64 `json:"friction_angle_deg"`
	Cohesion        float64 `json:"cohesion_tm2"`
	Nc              float64 `json:"nc"`
	Nq              float64 `json:"nq"`
	NGamma          float64 `json:"ngamma"`

	ResistingVertical float64 `json:"resisting_vertical_t"`
	UpliftVertical    float64 `json:"uplift_vertical_t"`
	HorizontalForce   float64 `json:"horizontal_force_t"`
	ResistingMoment   float64 `json:"resisting_moment_tm"`
	OverturningMoment float64 `json:"overturning_moment_tm"`

	MinSafety float64 `json:"min_safety"`
}

type Result struct {
	EffectiveVertical  float64            `json:"effective_vertical_t"`
	NetMoment          float64            `json:"net_moment_tm"`
	OverturningSafety  check.SafetyFactor `json:"overturning_safety"`
	SlidingResistance  float64            `json:"sliding_resistance_t"`
	SlidingSafety      check.SafetyFactor `json:"sliding_safety"`
	Eccentricity       float64            `json:"eccentricity_m"`
	KernLimit          float64            `json:"kern_limit_m"`
	EffectiveWidth     float64            `json:"effective_width_m"`
	UltimateBearing    float64            `json:"ultimate_bearing_tm2"`
	BearingSafety      float64            `json:"bearing_safety"`
	AllowableBearing   float64            `json:"allowable_bearing_tm2"`
	MaxBearingPressure float64            `json:"max_bearing_pressure_tm2"`
	OverturningOK      bool               `json:"overturning_ok"`
	SlidingOK          bool               `json:"sliding_ok"`
	EccentricityOK     bool               `json:"eccentricity_ok"`
	BearingOK          bool               `json:"bearing_ok"`
	OK                 bool               `json:"ok"`
}

// DefaultInput returns the soil data and force recap of the manual's worked
// example for the given condition.
func DefaultInput(c Condition) Input {
	in := Input{
		Condition:       NormalWater,
		BaseWidth:       1.30,
		FoundationDepth: 3.0,
		SoilUnitWeight:  1.813,
		FrictionAngle:   42.5,
		Cohesion:        0.142,
		Nc:              95,
		Nq:              90,
		NGamma:          160,

		ResistingVertical: 36.37,
		UpliftVertical:    4.19,
		HorizontalForce:   10.28,
		ResistingMoment:   65.76,
		OverturningMoment: 41.77,

		MinSafety: DefaultMinSafety,
	}
	if c == FloodWater {
		in.Condition = FloodWater
		in.ResistingVertical = 40.47
		in.UpliftVertical = 10.38
		in.HorizontalForce = 7.69
		in.ResistingMoment = 99.94
		in.OverturningMoment = 61.68
	}
	return in
}

// BearingSafety is the factor applied to the ultimate bearing capacity.
// Flood loading is short-term and accepts a lower factor.
func (c Condition) BearingSafety() (float64, bool) {
	switch c {
	case NormalWater, "":
		return 3.0, true
	case FloodWater:
		return 2.5, true
	}
	return 0, false
}

func Calculate(in Input) (Result, error) {
	err := check.First(
		check.Positive("base_width", in.BaseWidth),
		check.NonNegative("foundation_depth", in.FoundationDepth),
		check.NonNegative("soil_unit_weight", in.SoilUnitWeight),
		check.NonNegative("cohesion", in.Cohesion),
		check.NonNegative("resisting_vertical", in.ResistingVertical),
		check.NonNegative("uplift_vertical", in.UpliftVertical),
		check.NonNegative("horizontal_force", in.HorizontalForce),
		check.NonNegative("resisting_moment", in.ResistingMoment),
		check.NonNegative("overturning_moment", in.OverturningMoment),
	)
	if err != nil {
		return Result{}, err
	}
	if in.FrictionAngle < 0 || in.FrictionAngle >= 90 {
		return Result{}, &check.DomainError{Field: "friction_angle", Value: in.FrictionAngle, Reason: "must be in [0, 90) degrees"}
	}
	fs, ok := in.Condition.BearingSafety()
	if !ok {
		return Result{}, &check.DomainError{Field: "condition", Reason: "must be \"normal\" or \"flood\", got " + string(in.Condition)}
	}
	if in.MinSafety <= 0 {
		in.MinSafety = DefaultMinSafety
	}

	vEff := in.ResistingVertical - in.UpliftVertical
	if vEff <= 0 {
		return Result{}, &check.DomainError{Field: "effective_vertical", Value: vEff, Reason: "uplift exceeds the resisting weight"}
	}
	b := in.BaseWidth
	mNet := in.ResistingMoment - in.OverturningMoment

	tanPhi := math.Tan(in.FrictionAngle * math.Pi / 180)
	slide := vEff*tanPhi + in.Cohesion*b
	overturning := check.Ratio(in.ResistingMoment, in.OverturningMoment)
	sliding := check.Ratio(slide, in.HorizontalForce)

	e := math.Abs(mNet/vEff - b/2)
	kern := b / 6

	// Meyerhof effective width; the surcharge term uses (Nq - 1) as in the manual.
	bEff := math.Max(0, b-2*e)
	qUlt := in.Cohesion*in.Nc + in.SoilUnitWeight*in.FoundationDepth*(in.Nq-1) + 0.5*in.SoilUnitWeight*bEff*in.NGamma
	allow := qUlt / fs
	sigmaMax := (vEff / b) * (1 + 6*e/b)

	res := Result{
		EffectiveVertical:  vEff,
		NetMoment:          mNet,
		OverturningSafety:  overturning,
		SlidingResistance:  slide,
		SlidingSafety:      sliding,
		Eccentricity:       e,
		KernLimit:          kern,
		EffectiveWidth:     bEff,
		UltimateBearing:    qUlt,
		BearingSafety:      fs,
		AllowableBearing:   allow,
		MaxBearingPressure: sigmaMax,
		OverturningOK:      overturning.AtLeast(in.MinSafety),
		SlidingOK:          sliding.AtLeast(in.MinSafety),
		EccentricityOK:     e <= kern,
		BearingOK:          sigmaMax <= allow,
	}
	res.OK = res.OverturningOK && res.SlidingOK && res.EccentricityOK && res.BearingOK
	return res, nil
}
