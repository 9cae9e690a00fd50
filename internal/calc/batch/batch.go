package batch

import (
	"fmt"

	"Bendung/internal/calc/dropcheck"
)

type Input struct {
	Items []dropcheck.Input `json:"items"`
}

type Result struct {
	Results []dropcheck.Result `json:"results"`
	Passed  int                `json:"passed"`
}

func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]dropcheck.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := dropcheck.Run(item)
		if err != nil {
			return Result{}, fmt.Errorf("item %d: %w", i, err)
		}
		if res.OK {
			out.Passed++
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
