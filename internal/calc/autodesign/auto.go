package autodesign

import (
	"fmt"
	"math"

	"Bendung/internal/calc/dropcheck"
	"Bendung/internal/calc/floor"
)

const (
	MinThickness  = 0.20
	MaxThickness  = 5.00
	ThicknessStep = 0.05
)

type Result struct {
	FloorThickness float64          `json:"floor_thickness_m"`
	Trials         int              `json:"trials"`
	Check          dropcheck.Result `json:"check"`
	Notes          string           `json:"notes"`
}

// FloorThickness finds the thinnest basin slab, in ThicknessStep
// increments, whose final-stage floor passes both uplift and bearing.
// The input's own FloorThickness is ignored.
func FloorThickness(in dropcheck.Input) (Result, error) {
	in.FloorThickness = MinThickness
	base, err := dropcheck.Run(in)
	if err != nil {
		return Result{}, err
	}

	fi := floor.ForDesign(base.Design, in.Drop.Width, MinThickness, floor.Input{
		AllowableBearing:   in.AllowableBearing,
		ConcreteUnitWeight: in.ConcreteUnitWeight,
		WaterUnitWeight:    in.WaterUnitWeight,
	})
	steps := int(math.Round((MaxThickness - MinThickness) / ThicknessStep))
	for i := 0; i <= steps; i++ {
		fi.FloorThickness = math.Round((MinThickness+float64(i)*ThicknessStep)*100) / 100
		s, err := floor.Check(fi)
		if err != nil {
			return Result{}, err
		}
		if s.OK {
			base.Input.FloorThickness = fi.FloorThickness
			base.Stability = s
			base.OK = true
			return Result{
				FloorThickness: fi.FloorThickness,
				Trials:         i + 1,
				Check:          base,
				Notes:          "Thinnest slab passing uplift and bearing on the final basin.",
			}, nil
		}
		if s.UpliftSafe && !s.BearingSafe {
			// Thickening only adds bearing demand.
			return Result{}, fmt.Errorf("bearing pressure %.1f exceeds the allowable %.1f at %.2f m: widen the basin or improve the foundation",
				s.NetBearingPressure, in.AllowableBearing, fi.FloorThickness)
		}
	}
	return Result{}, fmt.Errorf("no floor thickness up to %.2f m satisfies uplift", MaxThickness)
}
