// Package gate sizes the opening of an underflow intake or offtake gate:
// Q = C B a sqrt(2 g h).
package gate

import (
	"math"

	"Bendung/internal/calc/check"
	"Bendung/internal/calc/hydraulics"
)

type Input struct {
	Name        string  `json:"name"`
	Discharge   float64 `json:"discharge_m3s"`
	Width       float64 `json:"width_m"`
	HeadLoss    float64 `json:"head_loss_m"`
	Coefficient float64 `json:"coefficient"`
	Gravity     float64 `json:"gravity_ms2"`
}

type Result struct {
	Name         string  `json:"name"`
	JetVelocity  float64 `json:"jet_velocity_ms"`
	OpeningM     float64 `json:"opening_m"`
	OpeningCM    float64 `json:"opening_cm"`
	OpeningRatio float64 `json:"opening_to_head_ratio"`
	Notes        string  `json:"notes"`
}

func DefaultInput() Input {
	return Input{
		Name:        "Intake S.TL.1",
		Discharge:   0.164,
		Width:       0.60,
		HeadLoss:    0.20,
		Coefficient: 0.80,
	}
}

func Calculate(in Input) (Result, error) {
	err := check.First(
		check.Positive("discharge", in.Discharge),
		check.Positive("width", in.Width),
		check.Positive("head_loss", in.HeadLoss),
	)
	if err != nil {
		return Result{}, err
	}
	if in.Coefficient <= 0 {
		in.Coefficient = 0.80
	}
	g, err := hydraulics.Gravity(in.Gravity)
	if err != nil {
		return Result{}, err
	}

	v := math.Sqrt(2 * g * in.HeadLoss)
	a := in.Discharge / (in.Coefficient * in.Width * v)
	return Result{
		Name:         in.Name,
		JetVelocity:  v,
		OpeningM:     a,
		OpeningCM:    a * 100,
		OpeningRatio: a / in.HeadLoss,
		Notes:        "Free-flowing underflow gate.",
	}, nil
}
