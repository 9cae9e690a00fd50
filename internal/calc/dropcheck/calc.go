// Package dropcheck runs a drop design and then checks the final basin
// floor of that design, passing both as plain values.
package dropcheck

import (
	"Bendung/internal/calc/check"
	"Bendung/internal/calc/drop"
	"Bendung/internal/calc/floor"
)

const DefaultFloorThickness = 0.5 // m

type Input struct {
	Drop               drop.Input `json:"drop"`
	FloorThickness     float64    `json:"floor_thickness_m"`
	AllowableBearing   float64    `json:"allowable_bearing_kpa"`
	ConcreteUnitWeight float64    `json:"concrete_unit_weight_knm3"`
	WaterUnitWeight    float64    `json:"water_unit_weight_knm3"`
}

type Result struct {
	Input     Input        `json:"input"`
	Design    drop.Result  `json:"design"`
	Stability floor.Result `json:"stability"`
	OK        bool         `json:"ok"`
}

func DefaultInput() Input {
	f := floor.DefaultInput()
	return Input{
		FloorThickness:     DefaultFloorThickness,
		AllowableBearing:   f.AllowableBearing,
		ConcreteUnitWeight: f.ConcreteUnitWeight,
		WaterUnitWeight:    f.WaterUnitWeight,
	}
}

// Run designs the drop and checks its final basin. A failing check is
// reported in the result, not as an error.
func Run(in Input) (Result, error) {
	if err := check.Positive("floor_thickness", in.FloorThickness); err != nil {
		return Result{}, err
	}
	d, err := drop.Design(in.Drop)
	if err != nil {
		return Result{}, err
	}
	s, err := floor.Check(in.floorInput(d))
	if err != nil {
		return Result{}, err
	}
	return Result{
		Input:     in,
		Design:    d,
		Stability: s,
		OK:        s.OK,
	}, nil
}

func (in Input) floorInput(d drop.Result) floor.Input {
	return floor.ForDesign(d, in.Drop.Width, in.FloorThickness, floor.Input{
		AllowableBearing:   in.AllowableBearing,
		ConcreteUnitWeight: in.ConcreteUnitWeight,
		WaterUnitWeight:    in.WaterUnitWeight,
	})
}
