package floor

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"Bendung/internal/calc/check"
	"Bendung/internal/calc/drop"
)

func slab() Input {
	in := DefaultInput()
	in.BasinWidth = 2.0
	in.BasinLength = 4.0
	in.FloorThickness = 0.6
	in.ApproachDepth = 0.15
	in.ConjugateDepth = 0.8
	in.StageDropHeight = 1.2
	return in
}

func TestCheckLoads(t *testing.T) {
	in := slab()
	res, err := Check(in)
	if err != nil {
		t.Fatal(err)
	}
	area := 8.0
	wantConcrete := area * 0.6 * 24.0
	wantWater := 0.5 * (0.15 + 0.8) * area * 9.81
	wantUplift := 0.5 * ((0.8 + 0.6) + 0.8) * area * 9.81
	if !scalar.EqualWithinAbs(res.ConcreteWeight, wantConcrete, 1e-9) {
		t.Errorf("concrete = %v, want %v", res.ConcreteWeight, wantConcrete)
	}
	if !scalar.EqualWithinAbs(res.WaterWeight, wantWater, 1e-9) {
		t.Errorf("water = %v, want %v", res.WaterWeight, wantWater)
	}
	if !scalar.EqualWithinAbs(res.UpstreamHead, 1.4, 1e-12) {
		t.Errorf("upstream head = %v", res.UpstreamHead)
	}
	if !scalar.EqualWithinAbs(res.UpliftForce, wantUplift, 1e-9) {
		t.Errorf("uplift = %v, want %v", res.UpliftForce, wantUplift)
	}
	wantSF := (wantConcrete + wantWater) / wantUplift
	if res.UpliftSafety.Unbounded || !scalar.EqualWithinAbs(res.UpliftSafety.Value, wantSF, 1e-9) {
		t.Errorf("uplift SF = %+v, want %v", res.UpliftSafety, wantSF)
	}
	wantNet := (wantConcrete + wantWater - wantUplift) / area
	if !scalar.EqualWithinAbs(res.NetBearingPressure, wantNet, 1e-9) {
		t.Errorf("net bearing = %v, want %v", res.NetBearingPressure, wantNet)
	}
	if res.UpliftSafe != (wantSF >= 1.5) || !res.BearingSafe {
		t.Errorf("flags: uplift %v bearing %v", res.UpliftSafe, res.BearingSafe)
	}
}

func TestBearingClampedAtZero(t *testing.T) {
	in := slab()
	in.FloorThickness = 0.1
	in.ApproachDepth = 0.1
	in.ConjugateDepth = 1.0
	in.StageDropHeight = 2.0
	res, err := Check(in)
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalWeight >= res.UpliftForce {
		t.Fatalf("test setup: weight %v should be below uplift %v", res.TotalWeight, res.UpliftForce)
	}
	if res.NetBearingPressure != 0 {
		t.Errorf("net bearing = %v, want exactly 0", res.NetBearingPressure)
	}
	if res.UpliftSafe || res.OK {
		t.Error("buoyant slab reported safe against uplift")
	}
	if !res.BearingSafe {
		t.Error("zero bearing demand should be bearing safe")
	}
}

func TestNoUpliftRisk(t *testing.T) {
	in := slab()
	in.WaterUnitWeight = 0
	res, err := Check(in)
	if err != nil {
		t.Fatal(err)
	}
	if res.UpliftForce != 0 {
		t.Fatalf("uplift = %v, want 0", res.UpliftForce)
	}
	if !res.UpliftSafety.Unbounded || res.UpliftSafety.Value != 99.0 {
		t.Errorf("uplift SF = %+v, want unbounded 99.0", res.UpliftSafety)
	}
	if !res.UpliftSafe {
		t.Error("no uplift must be uplift safe")
	}
}

func TestBearingLimit(t *testing.T) {
	in := slab()
	in.FloorThickness = 3.0
	in.AllowableBearing = 10
	res, err := Check(in)
	if err != nil {
		t.Fatal(err)
	}
	if res.BearingSafe || res.OK {
		t.Errorf("net bearing %v passed a %v limit", res.NetBearingPressure, in.AllowableBearing)
	}
}

func TestCheckRejects(t *testing.T) {
	mutations := map[string]func(*Input){
		"zero width":           func(in *Input) { in.BasinWidth = 0 },
		"zero length":          func(in *Input) { in.BasinLength = 0 },
		"negative thickness":   func(in *Input) { in.FloorThickness = -0.3 },
		"zero approach depth":  func(in *Input) { in.ApproachDepth = 0 },
		"zero conjugate depth": func(in *Input) { in.ConjugateDepth = 0 },
		"zero drop height":     func(in *Input) { in.StageDropHeight = 0 },
		"negative unit weight": func(in *Input) { in.WaterUnitWeight = -1 },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			in := slab()
			mutate(&in)
			if _, err := Check(in); !check.IsDomain(err) {
				t.Errorf("err = %v, want DomainError", err)
			}
		})
	}
}

func TestForDesign(t *testing.T) {
	d, err := drop.Design(drop.Input{FlowRate: 1.5, Width: 2.0, TotalHeight: 3.5, MaxHeightPerStage: 1.5, CostSaving: true})
	if err != nil {
		t.Fatal(err)
	}
	in := ForDesign(d, 2.0, 0.5, DefaultInput())
	final := d.Final()
	if !scalar.EqualWithinAbs(in.BasinLength, final.BasinLength, 1e-12) {
		t.Errorf("basin length = %v, want final basin %v", in.BasinLength, final.BasinLength)
	}
	if in.ApproachDepth != final.ApproachDepth || in.ConjugateDepth != final.Jump.ConjugateDepth {
		t.Error("depths not taken from the final stage")
	}
	if in.StageDropHeight != d.StageHeight || in.ConcreteUnitWeight != DefaultConcreteUnitWeight {
		t.Errorf("unexpected input %+v", in)
	}
	if _, err := Check(in); err != nil {
		t.Errorf("check of designed floor failed: %v", err)
	}
}

func TestHandlerKeepsDefaults(t *testing.T) {
	h := &Handler{Defaults: DefaultInput()}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/drop/stability", strings.NewReader(
		`{"basin_width_m": 2, "basin_length_m": 4, "floor_thickness_m": 0.6,
		  "approach_depth_m": 0.15, "conjugate_depth_m": 0.8, "stage_drop_height_m": 1.2,
		  "water_unit_weight_knm3": 0}`))
	h.Calc(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"uplift_safety_factor":{"value":99,"unbounded":true}`) {
		t.Errorf("unexpected body %s", body)
	}
	if h.Defaults.WaterUnitWeight != DefaultWaterUnitWeight {
		t.Error("request mutated handler defaults")
	}
}
