// Package report renders a completed drop check as a PDF sheet or an XLSX
// workbook.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"Bendung/internal/calc/drop"
	"Bendung/internal/calc/dropcheck"
)

// Meta identifies a rendered report.
type Meta struct {
	ID        string
	Title     string
	Generated time.Time
}

func (m Meta) title() string {
	if m.Title == "" {
		return "Multi-Stage Drop Design"
	}
	return m.Title
}

func (m Meta) filename(ext string) string {
	if m.ID == "" {
		return "drop-report." + ext
	}
	return "drop-report-" + m.ID + "." + ext
}

var stageHeader = []string{"#", "dz (m)", "yc (m)", "y1 (m)", "Fr", "Jump", "Ld (m)", "Lb (m)", "L (m)"}

func stageRow(s drop.Stage) []string {
	return []string{
		fmt.Sprintf("%d", s.Index+1),
		fmt.Sprintf("%.3f", s.StageHeight),
		fmt.Sprintf("%.3f", s.CriticalDepth),
		fmt.Sprintf("%.3f", s.ApproachDepth),
		fmt.Sprintf("%.2f", s.Jump.FroudeNumber),
		string(s.Jump.JumpType),
		fmt.Sprintf("%.2f", s.DropLength),
		fmt.Sprintf("%.2f", s.BasinLength),
		fmt.Sprintf("%.2f", s.FloorLength),
	}
}

// PDF writes a one-page design sheet for res.
func PDF(w io.Writer, res dropcheck.Result, meta Meta) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(meta.title(), false)
	if !meta.Generated.IsZero() {
		pdf.SetCreationDate(meta.Generated)
	}
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, meta.title())
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	if meta.ID != "" {
		pdf.Cell(0, 5, "Ticket: "+meta.ID)
		pdf.Ln(5)
	}
	if !meta.Generated.IsZero() {
		pdf.Cell(0, 5, "Date: "+meta.Generated.Format("2006-01-02"))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	in := res.Input
	section(pdf, "Input")
	for _, kv := range [][2]string{
		{"Flow rate", fmt.Sprintf("%.3f m3/s", in.Drop.FlowRate)},
		{"Width", fmt.Sprintf("%.2f m", in.Drop.Width)},
		{"Total height", fmt.Sprintf("%.2f m", in.Drop.TotalHeight)},
		{"Max height per stage", fmt.Sprintf("%.2f m", in.Drop.MaxHeightPerStage)},
		{"Cost-saving requested", fmt.Sprintf("%t", in.Drop.CostSaving)},
		{"Floor thickness", fmt.Sprintf("%.2f m", in.FloorThickness)},
		{"Allowable bearing", fmt.Sprintf("%.0f kPa", in.AllowableBearing)},
	} {
		pair(pdf, kv[0], kv[1])
	}
	pdf.Ln(4)

	d := res.Design
	section(pdf, fmt.Sprintf("Stages (%d x %.3f m, %s)", d.StageCount, d.StageHeight, d.Mode))
	widths := []float64{10, 20, 20, 20, 18, 34, 20, 20, 20}
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range stageHeader {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for _, s := range d.Stages {
		for i, c := range stageRow(s) {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pair(pdf, "Total floor length", fmt.Sprintf("%.2f m", d.TotalFloorLength))
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, d.Notes, "", "L", false)
	pdf.Ln(4)

	s := res.Stability
	section(pdf, "Final basin floor")
	pair(pdf, "Total weight", fmt.Sprintf("%.2f kN", s.TotalWeight))
	pair(pdf, "Uplift force", fmt.Sprintf("%.2f kN", s.UpliftForce))
	pair(pdf, "Uplift safety factor", s.UpliftSafety.String())
	pair(pdf, "Net bearing pressure", fmt.Sprintf("%.2f kPa", s.NetBearingPressure))
	pair(pdf, "Result", verdict(res.OK))

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, title)
	pdf.Ln(8)
}

func pair(pdf *gofpdf.Fpdf, k, v string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(60, 6, k)
	pdf.Cell(0, 6, v)
	pdf.Ln(6)
}

func verdict(ok bool) string {
	if ok {
		return "SAFE"
	}
	return "NOT SAFE"
}
