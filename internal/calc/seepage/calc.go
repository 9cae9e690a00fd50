// Package seepage checks a weir foundation against piping with Lane's
// weighted creep method: Lw = sum(Lv) + sum(Lh)/3 >= C_L * dH.
package seepage

import (
	"fmt"
	"sort"

	"Bendung/internal/calc/check"
)

// laneCoefficients are Lane's minimum weighted creep ratios by foundation soil.
var laneCoefficients = map[string]float64{
	"very_fine_sand_or_silt": 8.5,
	"fine_sand":              7.0,
	"medium_sand":            6.0,
	"coarse_sand":            5.0,
	"fine_gravel":            4.0,
	"medium_gravel":          3.5,
	"coarse_gravel":          3.0,
	"boulders_with_gravel":   2.5,
	"soft_clay":              3.0,
	"medium_clay":            2.0,
	"hard_clay":              1.8,
	"very_hard_clay":         1.6,
}

type Input struct {
	VerticalLengths   []float64 `json:"vertical_lengths_m"`
	HorizontalLengths []float64 `json:"horizontal_lengths_m"`
	HeadDifference    float64   `json:"head_difference_m"`
	Soil              string    `json:"soil"`
	LaneCoefficient   float64   `json:"lane_coefficient"`
}

type Result struct {
	VerticalCreep       float64 `json:"vertical_creep_m"`
	HorizontalCreep     float64 `json:"horizontal_creep_m"`
	WeightedCreepLength float64 `json:"weighted_creep_length_m"`
	CreepRatio          float64 `json:"creep_ratio"`
	RequiredRatio       float64 `json:"required_ratio"`
	RequiredLength      float64 `json:"required_length_m"`
	OK                  bool    `json:"ok"`
	Notes               string  `json:"notes"`
}

// Soils lists the soil classes with a tabulated Lane coefficient.
func Soils() []string {
	names := make([]string, 0, len(laneCoefficients))
	for name := range laneCoefficients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LaneCoefficient looks up C_L for a soil class.
func LaneCoefficient(soil string) (float64, bool) {
	c, ok := laneCoefficients[soil]
	return c, ok
}

func Calculate(in Input) (Result, error) {
	if err := check.Positive("head_difference", in.HeadDifference); err != nil {
		return Result{}, err
	}
	cl := in.LaneCoefficient
	if cl == 0 {
		var ok bool
		if cl, ok = LaneCoefficient(in.Soil); !ok {
			return Result{}, fmt.Errorf("unknown soil %q: %w", in.Soil,
				&check.DomainError{Field: "soil", Reason: "not in Lane's table and no lane_coefficient given"})
		}
	} else if err := check.Positive("lane_coefficient", cl); err != nil {
		return Result{}, err
	}

	var lv, lh float64
	for i, l := range in.VerticalLengths {
		if err := check.NonNegative(fmt.Sprintf("vertical_lengths[%d]", i), l); err != nil {
			return Result{}, err
		}
		lv += l
	}
	for i, l := range in.HorizontalLengths {
		if err := check.NonNegative(fmt.Sprintf("horizontal_lengths[%d]", i), l); err != nil {
			return Result{}, err
		}
		lh += l
	}

	lw := lv + lh/3
	ratio := lw / in.HeadDifference
	return Result{
		VerticalCreep:       lv,
		HorizontalCreep:     lh,
		WeightedCreepLength: lw,
		CreepRatio:          ratio,
		RequiredRatio:       cl,
		RequiredLength:      cl * in.HeadDifference,
		OK:                  ratio >= cl,
		Notes:               "Steep faces (>= 45 deg) count as vertical; flatter faces as horizontal.",
	}, nil
}
