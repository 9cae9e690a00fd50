package importer

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"Bendung/internal/calc/drop"
	"Bendung/internal/calc/dropcheck"
)

func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf
}

func sample(t *testing.T) *bytes.Buffer {
	return workbook(t, [][]interface{}{
		{"flow_rate_m3s", "width_m", "total_height_m", "max_height_per_stage_m", "cost_saving", "floor_thickness_m"},
		{1.5, 2.0, 3.5, 1.5, "ya", 0.6},
		{"abc", 2.0, 3.5, 1.5},
		{1.0, 0, 1.0, 1.0},
		{0.5, 1.0, 2.0},
		{"0,8", "1,2", 2.4, 1.2},
	})
}

func TestRead(t *testing.T) {
	res, err := Read(sample(t), dropcheck.DefaultInput())
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 2 || len(res.Results) != 2 {
		t.Fatalf("count = %d", res.Count)
	}
	if !reflect.DeepEqual(res.Skipped, []int{3, 4, 5}) {
		t.Errorf("skipped = %v", res.Skipped)
	}

	first := res.Results[0]
	if !first.Input.Drop.CostSaving || first.Input.FloorThickness != 0.6 {
		t.Errorf("first row input = %+v", first.Input)
	}
	if first.Design.Mode != drop.CostSaving || first.Design.StageCount != 3 {
		t.Errorf("first row design: %d stages, %s", first.Design.StageCount, first.Design.Mode)
	}

	second := res.Results[1]
	if second.Input.Drop.FlowRate != 0.8 || second.Input.Drop.Width != 1.2 {
		t.Errorf("decimal commas not parsed: %+v", second.Input.Drop)
	}
	if second.Input.FloorThickness != dropcheck.DefaultFloorThickness {
		t.Errorf("default thickness not applied: %v", second.Input.FloorThickness)
	}
}

func TestReadRejectsEmptyAndInvalid(t *testing.T) {
	if _, err := Read(workbook(t, [][]interface{}{{"header"}}), dropcheck.DefaultInput()); err == nil {
		t.Error("expected error for header-only sheet")
	}
	if _, err := Read(bytes.NewBufferString("not a workbook"), dropcheck.DefaultInput()); err == nil {
		t.Error("expected error for non-xlsx input")
	}
}

func TestHandler(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "drops.xlsx")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(sample(t).Bytes()); err != nil {
		t.Fatal(err)
	}
	mw.Close()

	h := &Handler{Defaults: dropcheck.DefaultInput()}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/drop/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	h.Drop(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var res Result
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res.Count != 2 {
		t.Errorf("count = %d", res.Count)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/drop/import", nil)
	h.Drop(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status without file = %d", rec.Code)
	}
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1.5", 1.5, true},
		{" 2.25 ", 2.25, true},
		{"0,8", 0.8, true},
		{"1,234.5", 0, false},
		{"1,2,3", 0, false},
		{"2.5m", 0, false},
		{"1.5x", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		v, err := toFloat(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("toFloat(%q) err = %v", tt.in, err)
			continue
		}
		if tt.ok && v != tt.want {
			t.Errorf("toFloat(%q) = %v, want %v", tt.in, v, tt.want)
		}
	}
}

func TestReadSkipsMalformedNumbers(t *testing.T) {
	res, err := Read(workbook(t, [][]interface{}{
		{"flow_rate_m3s", "width_m", "total_height_m", "max_height_per_stage_m"},
		{"1,234.5", 2.0, 3.5, 1.5},
		{1.5, "2.0m", 3.5, 1.5},
		{1.5, 2.0, "3.5x", 1.5},
		{1.5, 2.0, 3.5, 1.5},
	}), dropcheck.DefaultInput())
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 1 || !reflect.DeepEqual(res.Skipped, []int{2, 3, 4}) {
		t.Errorf("count = %d, skipped = %v", res.Count, res.Skipped)
	}
}
