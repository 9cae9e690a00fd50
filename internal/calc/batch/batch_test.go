package batch

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Bendung/internal/calc/check"
	"Bendung/internal/calc/drop"
	"Bendung/internal/calc/dropcheck"
)

func item(total float64) dropcheck.Input {
	in := dropcheck.DefaultInput()
	in.Drop = drop.Input{FlowRate: 1.5, Width: 2, TotalHeight: total, MaxHeightPerStage: 1.5}
	return in
}

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{Items: []dropcheck.Input{item(3.5), item(1.0), item(6.0)}})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Results) != 3 {
		t.Fatalf("got %d results", len(res.Results))
	}
	wantStages := []int{3, 1, 4}
	passed := 0
	for i, r := range res.Results {
		if r.Design.StageCount != wantStages[i] {
			t.Errorf("item %d: %d stages, want %d", i, r.Design.StageCount, wantStages[i])
		}
		if r.OK {
			passed++
		}
	}
	if res.Passed != passed {
		t.Errorf("passed = %d, want %d", res.Passed, passed)
	}
}

func TestCalculateReportsFailingItem(t *testing.T) {
	bad := item(2)
	bad.Drop.Width = 0
	_, err := Calculate(Input{Items: []dropcheck.Input{item(3.5), bad}})
	if err == nil || !strings.HasPrefix(err.Error(), "item 1:") {
		t.Fatalf("err = %v", err)
	}
	if !check.IsDomain(err) {
		t.Error("DomainError lost in wrapping")
	}
	if _, err := Calculate(Input{}); err == nil {
		t.Error("expected error for empty batch")
	}
}

func TestHandlerAppliesDefaults(t *testing.T) {
	h := &Handler{Defaults: dropcheck.DefaultInput()}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/drop/batch", strings.NewReader(`{"items": [
		{"drop": {"flow_rate_m3s": 1.5, "width_m": 2, "total_height_m": 3.5, "max_height_per_stage_m": 1.5}},
		{"drop": {"flow_rate_m3s": 0.5, "width_m": 1, "total_height_m": 2, "max_height_per_stage_m": 1}, "floor_thickness_m": 0.8}
	]}`))
	h.Calc(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var res Result
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res.Results[0].Input.FloorThickness != dropcheck.DefaultFloorThickness {
		t.Errorf("item 0 thickness = %v", res.Results[0].Input.FloorThickness)
	}
	if res.Results[1].Input.FloorThickness != 0.8 {
		t.Errorf("item 1 thickness = %v", res.Results[1].Input.FloorThickness)
	}
}
