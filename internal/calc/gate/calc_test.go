package gate

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"Bendung/internal/calc/check"
)

func TestCalculate(t *testing.T) {
	res, err := Calculate(DefaultInput())
	if err != nil {
		t.Fatal(err)
	}
	want := 0.164 / (0.80 * 0.60 * math.Sqrt(2*9.81*0.20))
	if !scalar.EqualWithinAbs(res.OpeningM, want, 1e-12) {
		t.Errorf("opening = %v, want %v", res.OpeningM, want)
	}
	if !scalar.EqualWithinAbs(res.OpeningCM, 17.25, 0.01) {
		t.Errorf("opening = %v cm", res.OpeningCM)
	}
	if res.Name != "Intake S.TL.1" {
		t.Errorf("name = %q", res.Name)
	}
}

func TestCalculateDefaultsCoefficient(t *testing.T) {
	in := DefaultInput()
	in.Coefficient = 0
	a, err := Calculate(in)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Calculate(DefaultInput())
	if a != b {
		t.Errorf("zero coefficient should default to 0.80")
	}
}

func TestCalculateRejects(t *testing.T) {
	for _, mutate := range []func(*Input){
		func(in *Input) { in.Width = 0 },
		func(in *Input) { in.HeadLoss = 0 },
		func(in *Input) { in.Discharge = -1 },
	} {
		in := DefaultInput()
		mutate(&in)
		if _, err := Calculate(in); !check.IsDomain(err) {
			t.Errorf("Calculate(%+v) err = %v", in, err)
		}
	}
}

func TestHandler(t *testing.T) {
	h := &Handler{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/weir/gate", strings.NewReader(`{"name": "Sadap S.TL.2", "discharge_m3s": 0.1}`))
	h.Calc(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"name":"Sadap S.TL.2"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}
