package crest

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"Bendung/internal/calc/check"
)

func TestCalculateManualExample(t *testing.T) {
	res, err := Calculate(DefaultInput())
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(res.EffectiveWidth, 9.28, 1e-9) {
		t.Errorf("Beff = %v, want 9.28", res.EffectiveWidth)
	}
	if !scalar.EqualWithinAbs(res.WeirConstant, 1.704, 1e-3) {
		t.Errorf("constant = %v, want about 1.704", res.WeirConstant)
	}
	if !scalar.EqualWithinAbs(res.CheckDischarge, 39.59, 1e-9) {
		t.Errorf("back-computed Q = %v, want 39.59", res.CheckDischarge)
	}
	if !scalar.EqualWithinAbs(res.EnergyHead, 1.439, 1e-3) {
		t.Errorf("He = %v", res.EnergyHead)
	}
	if res.HeadConverged {
		t.Error("assumed head 1.0 should not be reported as converged")
	}
}

func TestCalculateIterated(t *testing.T) {
	in := DefaultInput()
	for i := 0; i < 20; i++ {
		res, err := Calculate(in)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(res.EnergyHead-in.AssumedEnergyHead) < 1e-9 {
			if !res.HeadConverged {
				t.Error("fixed point not reported as converged")
			}
			return
		}
		in.AssumedEnergyHead = res.EnergyHead
	}
	t.Fatal("head did not settle")
}

func TestCalculateRejectsNoWidth(t *testing.T) {
	in := DefaultInput()
	in.TotalWidth = 1.4
	if _, err := Calculate(in); !check.IsDomain(err) {
		t.Errorf("err = %v, want DomainError", err)
	}
	in = DefaultInput()
	in.DesignFlood = 0
	if _, err := Calculate(in); !check.IsDomain(err) {
		t.Errorf("err = %v, want DomainError", err)
	}
}
