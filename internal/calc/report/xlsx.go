package report

import (
	"io"

	"github.com/xuri/excelize/v2"

	"Bendung/internal/calc/dropcheck"
)

const (
	stagesSheet    = "Stages"
	stabilitySheet = "Stability"
)

// XLSX writes res as a workbook with a stage table and a stability sheet.
func XLSX(w io.Writer, res dropcheck.Result, meta Meta) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", stagesSheet); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	header := []interface{}{
		"stage", "stage_height_m", "unit_discharge_m2s", "critical_depth_m",
		"approach_velocity_ms", "approach_depth_m", "froude_number", "jump_type",
		"conjugate_depth_m", "drop_length_m", "basin_length_m", "floor_length_m",
		"tailwater_depth_m",
	}
	if err := f.SetSheetRow(stagesSheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(stagesSheet, "A1", "M1", bold); err != nil {
		return err
	}
	for i, s := range res.Design.Stages {
		row := []interface{}{
			s.Index + 1, s.StageHeight, s.UnitDischarge, s.CriticalDepth,
			s.ApproachVelocity, s.ApproachDepth, s.Jump.FroudeNumber, string(s.Jump.JumpType),
			s.Jump.ConjugateDepth, s.DropLength, s.BasinLength, s.FloorLength,
			s.TailwaterDepth,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(stagesSheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(stagesSheet, "A", "M", 18); err != nil {
		return err
	}

	if _, err := f.NewSheet(stabilitySheet); err != nil {
		return err
	}
	in := res.Input
	s := res.Stability
	rows := [][]interface{}{
		{"report", meta.title()},
		{"ticket", meta.ID},
		{"flow_rate_m3s", in.Drop.FlowRate},
		{"width_m", in.Drop.Width},
		{"total_height_m", in.Drop.TotalHeight},
		{"max_height_per_stage_m", in.Drop.MaxHeightPerStage},
		{"design_mode", string(res.Design.Mode)},
		{"total_floor_length_m", res.Design.TotalFloorLength},
		{"floor_thickness_m", in.FloorThickness},
		{"total_weight_kn", s.TotalWeight},
		{"uplift_force_kn", s.UpliftForce},
		{"uplift_safety_factor", s.UpliftSafety.Value},
		{"uplift_unbounded", s.UpliftSafety.Unbounded},
		{"net_bearing_pressure_kpa", s.NetBearingPressure},
		{"allowable_bearing_kpa", in.AllowableBearing},
		{"ok", res.OK},
	}
	if !meta.Generated.IsZero() {
		rows = append(rows, []interface{}{"generated", meta.Generated.Format("2006-01-02 15:04")})
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(stabilitySheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(stabilitySheet, "A", "A", 28); err != nil {
		return err
	}

	return f.Write(w)
}
