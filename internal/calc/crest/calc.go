// Package crest sizes the energy head over an ogee weir crest for the design
// flood: Q = Cd (2/3) sqrt((2/3) g) Beff He^1.5.
package crest

import (
	"math"

	"Bendung/internal/calc/check"
	"Bendung/internal/calc/hydraulics"
)

type Input struct {
	TotalWidth        float64 `json:"total_width_m"`
	PierCount         int     `json:"pier_count"`
	PierThickness     float64 `json:"pier_thickness_m"`
	FlushingWidth     float64 `json:"flushing_width_m"`
	AbutmentCoeff     float64 `json:"ka"`
	PierCoeff         float64 `json:"kp"`
	DischargeCoeff    float64 `json:"cd"`
	DesignFlood       float64 `json:"design_flood_m3s"`
	AssumedEnergyHead float64 `json:"assumed_energy_head_m"`
	Gravity           float64 `json:"gravity_ms2"`
}

type Result struct {
	NetWidth       float64 `json:"net_width_m"`
	WidthReduction float64 `json:"width_reduction_m"`
	EffectiveWidth float64 `json:"effective_width_m"`
	WeirConstant   float64 `json:"weir_constant"`
	EnergyHead     float64 `json:"energy_head_m"`
	CheckDischarge float64 `json:"check_discharge_m3s"`
	HeadConverged  bool    `json:"head_converged"`
	Notes          string  `json:"notes"`
}

// DefaultInput is the worked example of the irrigation design manual.
func DefaultInput() Input {
	return Input{
		TotalWidth:        11.0,
		PierCount:         1,
		PierThickness:     0.5,
		FlushingWidth:     1.0,
		AbutmentCoeff:     0.10,
		PierCoeff:         0.01,
		DischargeCoeff:    1.45,
		DesignFlood:       39.59,
		AssumedEnergyHead: 1.0,
	}
}

func Calculate(in Input) (Result, error) {
	err := check.First(
		check.Positive("total_width", in.TotalWidth),
		check.NonNegative("pier_count", float64(in.PierCount)),
		check.NonNegative("pier_thickness", in.PierThickness),
		check.NonNegative("flushing_width", in.FlushingWidth),
		check.NonNegative("ka", in.AbutmentCoeff),
		check.NonNegative("kp", in.PierCoeff),
		check.Positive("cd", in.DischargeCoeff),
		check.Positive("design_flood", in.DesignFlood),
		check.Positive("assumed_energy_head", in.AssumedEnergyHead),
	)
	if err != nil {
		return Result{}, err
	}
	g, err := hydraulics.Gravity(in.Gravity)
	if err != nil {
		return Result{}, err
	}

	n := float64(in.PierCount)
	net := in.TotalWidth - n*in.PierThickness - in.FlushingWidth
	reduction := 2 * (n*in.PierCoeff + in.AbutmentCoeff) * in.AssumedEnergyHead
	beff := net - reduction
	if beff <= 0 {
		return Result{}, &check.DomainError{Field: "effective_width", Value: beff, Reason: "piers, flushing sluice and contraction leave no effective crest width"}
	}

	c := (2.0 / 3.0) * math.Sqrt((2.0/3.0)*g)
	he := math.Pow(in.DesignFlood/(in.DischargeCoeff*c*beff), 2.0/3.0)

	return Result{
		NetWidth:       net,
		WidthReduction: reduction,
		EffectiveWidth: beff,
		WeirConstant:   c,
		EnergyHead:     he,
		CheckDischarge: in.DischargeCoeff * c * beff * math.Pow(he, 1.5),
		HeadConverged:  math.Abs(he-in.AssumedEnergyHead) <= 0.05*he,
		Notes:          "Effective width uses the assumed head; re-run with the computed head until they agree.",
	}, nil
}
