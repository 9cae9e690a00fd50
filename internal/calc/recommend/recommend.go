package recommend

import (
	"math"

	"Bendung/internal/calc/check"
	"Bendung/internal/calc/drop"
)

type StagesInput struct {
	TotalHeight       float64 `json:"total_height_m"`
	MaxHeightPerStage float64 `json:"max_height_per_stage_m"`
}

type StagesResult struct {
	StageCount        int     `json:"stage_count"`
	StageHeight       float64 `json:"stage_height_m"`
	MaxHeightPerStage float64 `json:"max_height_per_stage_m"`
	ExtraStages       int     `json:"extra_stages"`
	Notes             string  `json:"notes"`
}

// Stages returns the fewest equal stages that stay under the structural
// limit and are short enough for cost-saving intermediate basins.
// MaxHeightPerStage is the combined limit to pass to the designer.
func Stages(in StagesInput) (StagesResult, error) {
	err := check.First(
		check.Positive("total_height", in.TotalHeight),
		check.Positive("max_height_per_stage", in.MaxHeightPerStage),
	)
	if err != nil {
		return StagesResult{}, err
	}

	limit := math.Min(in.MaxHeightPerStage, drop.CostSavingMaxStageHeight)
	structural, err := drop.StageCount(in.TotalHeight, in.MaxHeightPerStage)
	if err != nil {
		return StagesResult{}, err
	}
	n, err := drop.StageCount(in.TotalHeight, limit)
	if err != nil {
		return StagesResult{}, err
	}
	return StagesResult{
		StageCount:        n,
		StageHeight:       in.TotalHeight / float64(n),
		MaxHeightPerStage: limit,
		ExtraStages:       n - structural,
		Notes:             "Extra stages trade drop structures for short intermediate basins.",
	}, nil
}
