package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"Bendung/internal/calc/dropcheck"
)

// Columns of the first sheet, after a header row:
// flow_rate_m3s, width_m, total_height_m, max_height_per_stage_m,
// cost_saving (optional), floor_thickness_m (optional).
const minColumns = 4

type Result struct {
	Count   int                `json:"count"`
	Skipped []int              `json:"skipped_rows"`
	Results []dropcheck.Result `json:"results"`
}

// Read runs a drop check for every usable row. Rows that cannot be parsed
// or fail validation are skipped and listed by their 1-based sheet row.
func Read(r io.Reader, defaults dropcheck.Input) (Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Result{}, fmt.Errorf("invalid file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Result{}, err
	}
	if len(rows) < 2 {
		return Result{}, fmt.Errorf("empty sheet")
	}

	out := Result{Skipped: []int{}, Results: []dropcheck.Result{}}
	for i := 1; i < len(rows); i++ {
		input, err := parseRow(rows[i], defaults)
		if err != nil {
			out.Skipped = append(out.Skipped, i+1)
			continue
		}
		res, err := dropcheck.Run(input)
		if err != nil {
			out.Skipped = append(out.Skipped, i+1)
			continue
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)
	return out, nil
}

func parseRow(row []string, defaults dropcheck.Input) (dropcheck.Input, error) {
	if len(row) < minColumns {
		return dropcheck.Input{}, fmt.Errorf("bad row")
	}
	in := defaults
	fields := []*float64{&in.Drop.FlowRate, &in.Drop.Width, &in.Drop.TotalHeight, &in.Drop.MaxHeightPerStage}
	for i, dst := range fields {
		v, err := toFloat(row[i])
		if err != nil {
			return dropcheck.Input{}, err
		}
		*dst = v
	}
	if len(row) > 4 && row[4] != "" {
		in.Drop.CostSaving = toBool(row[4])
	}
	if len(row) > 5 && row[5] != "" {
		v, err := toFloat(row[5])
		if err != nil {
			return dropcheck.Input{}, err
		}
		in.FloorThickness = v
	}
	return in, nil
}

// toFloat parses a whole cell. A comma is a decimal separator only when the
// cell has no dot; thousands separators are rejected.
func toFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	return strconv.ParseFloat(s, 64)
}

func toBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "ya":
		return true
	}
	return false
}
