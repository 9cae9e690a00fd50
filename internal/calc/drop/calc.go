// Package drop designs a multi-stage drop structure: a terraced chute of
// equal-height free-overfall steps, each followed by a stilling basin sized
// from the hydraulic jump at its toe.
package drop

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"Bendung/internal/calc/check"
	"Bendung/internal/calc/hydraulics"
	"Bendung/internal/calc/jump"
)

type Mode string

const (
	Standard   Mode = "Standard"
	CostSaving Mode = "CostSaving"
)

const (
	// CostSavingMaxStageHeight is the tallest stage (m) for which intermediate
	// basins may be shortened.
	CostSavingMaxStageHeight = 1.2
	// ShortBasinLength is the intermediate basin length (m) in cost-saving mode.
	ShortBasinLength = 0.5
	// MaxStages is the most stages a single design may have.
	MaxStages = 1000

	dropLengthCoefficient = 4.30
	dropLengthExponent    = 0.27
)

type Input struct {
	FlowRate          float64 `json:"flow_rate_m3s"`
	Width             float64 `json:"width_m"`
	TotalHeight       float64 `json:"total_height_m"`
	MaxHeightPerStage float64 `json:"max_height_per_stage_m"`
	CostSaving        bool    `json:"cost_saving"`
	Gravity           float64 `json:"gravity_ms2"`
}

// Stage is one step of the drop. Index 0 is the most upstream stage.
type Stage struct {
	Index            int         `json:"index"`
	Final            bool        `json:"final"`
	StageHeight      float64     `json:"stage_height_m"`
	UnitDischarge    float64     `json:"unit_discharge_m2s"`
	CriticalDepth    float64     `json:"critical_depth_m"`
	ApproachVelocity float64     `json:"approach_velocity_ms"`
	ApproachDepth    float64     `json:"approach_depth_m"`
	Jump             jump.Result `json:"jump"`
	DropNumber       float64     `json:"drop_number"`
	DropLength       float64     `json:"drop_length_m"`
	BasinLength      float64     `json:"basin_length_m"`
	FloorLength      float64     `json:"floor_length_m"`
	TailwaterDepth   float64     `json:"tailwater_depth_m"`
}

type Result struct {
	StageCount       int     `json:"stage_count"`
	StageHeight      float64 `json:"stage_height_m"`
	Mode             Mode    `json:"design_mode"`
	Stages           []Stage `json:"stages"`
	TotalFloorLength float64 `json:"total_floor_length_m"`
	Notes            string  `json:"notes"`
}

// Design partitions the total drop into equal stages and sizes each one.
func Design(in Input) (Result, error) {
	err := check.First(
		check.Positive("flow_rate", in.FlowRate),
		check.Positive("width", in.Width),
		check.Positive("total_height", in.TotalHeight),
		check.Positive("max_height_per_stage", in.MaxHeightPerStage),
	)
	if err != nil {
		return Result{}, err
	}
	g, err := hydraulics.Gravity(in.Gravity)
	if err != nil {
		return Result{}, err
	}

	n, err := StageCount(in.TotalHeight, in.MaxHeightPerStage)
	if err != nil {
		return Result{}, err
	}
	h := in.TotalHeight / float64(n)
	mode := Standard
	if in.CostSaving && h <= CostSavingMaxStageHeight {
		mode = CostSaving
	}

	// Every stage carries the same flow over the same height, so the
	// hydraulics are computed once; only the basin rule depends on position.
	q := in.FlowRate / in.Width
	yc := hydraulics.CriticalDepth(q, g)
	v1 := math.Sqrt(2 * g * h)
	y1 := q / v1
	jr, err := jump.Classify(jump.Input{
		FlowRate:      in.FlowRate,
		Width:         in.Width,
		ApproachDepth: y1,
		Gravity:       g,
	})
	if err != nil {
		return Result{}, err
	}
	dn := q * q / (g * h * h * h)
	ld := dropLengthCoefficient * h * math.Pow(dn, dropLengthExponent)

	stages := make([]Stage, n)
	floorLengths := make([]float64, n)
	for i := range stages {
		final := i == n-1
		basin := jr.BasinLength
		if mode == CostSaving && !final {
			basin = ShortBasinLength
		}
		stages[i] = Stage{
			Index:            i,
			Final:            final,
			StageHeight:      h,
			UnitDischarge:    q,
			CriticalDepth:    yc,
			ApproachVelocity: v1,
			ApproachDepth:    y1,
			Jump:             jr,
			DropNumber:       dn,
			DropLength:       ld,
			BasinLength:      basin,
			FloorLength:      ld + basin,
			TailwaterDepth:   3.0*yc + 0.1*h,
		}
		floorLengths[i] = stages[i].FloorLength
	}

	notes := "Equal-height free-overfall stages; approach depth from frictionless fall."
	if jr.Subcritical() {
		notes += " Approach flow is not supercritical; no hydraulic jump forms."
	}
	return Result{
		StageCount:       n,
		StageHeight:      h,
		Mode:             mode,
		Stages:           stages,
		TotalFloorLength: floats.Sum(floorLengths),
		Notes:            notes,
	}, nil
}

// StageCount is ceil(total / maxPerStage), never less than one. More than
// MaxStages stages is a DomainError on maxPerStage.
func StageCount(total, maxPerStage float64) (int, error) {
	ratio := math.Ceil(total / maxPerStage)
	// Negated so NaN and +Inf fail too.
	if !(ratio <= MaxStages) {
		return 0, &check.DomainError{
			Field:  "max_height_per_stage",
			Value:  maxPerStage,
			Reason: fmt.Sprintf("splits the drop into more than %d stages", MaxStages),
		}
	}
	n := int(ratio)
	if n < 1 {
		n = 1
	}
	return n, nil
}

// Final returns the most downstream stage.
func (r Result) Final() Stage {
	return r.Stages[len(r.Stages)-1]
}
