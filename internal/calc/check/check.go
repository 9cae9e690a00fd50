// Package check holds the input validation and result encoding shared by the
// calculators: DomainError for rejected inputs and SafetyFactor for ratios
// whose denominator may vanish.
package check

import (
	"errors"
	"fmt"
	"math"
	"net/http"
)

// UnboundedValue is reported as the numeric value of an unbounded safety factor.
const UnboundedValue = 99.0

// DomainError reports an input outside the domain of a calculation.
// No partial result accompanies it.
type DomainError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("invalid %s = %g: %s", e.Field, e.Value, e.Reason)
}

// IsDomain reports whether err, or anything it wraps, is a DomainError.
func IsDomain(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// Positive fails unless v is finite and > 0.
func Positive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return &DomainError{Field: field, Value: v, Reason: "must be a finite value > 0"}
	}
	return nil
}

// NonNegative fails unless v is finite and >= 0.
func NonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return &DomainError{Field: field, Value: v, Reason: "must be a finite value >= 0"}
	}
	return nil
}

// First returns the first non-nil error.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// SafetyFactor is a resisting/driving ratio. When the driving term is zero
// there is nothing to resist and the factor is Unbounded; Value then holds
// UnboundedValue for display only.
type SafetyFactor struct {
	Value     float64 `json:"value"`
	Unbounded bool    `json:"unbounded"`
}

// Ratio builds a SafetyFactor from resisting and driving terms.
func Ratio(resisting, driving float64) SafetyFactor {
	if driving == 0 {
		return SafetyFactor{Value: UnboundedValue, Unbounded: true}
	}
	return SafetyFactor{Value: resisting / driving}
}

// AtLeast reports whether the factor satisfies limit. Unbounded factors always do.
func (s SafetyFactor) AtLeast(limit float64) bool {
	return s.Unbounded || s.Value >= limit
}

func (s SafetyFactor) String() string {
	if s.Unbounded {
		return "unbounded"
	}
	return fmt.Sprintf("%.2f", s.Value)
}

// Status maps a calculation error to an HTTP status code.
func Status(err error) int {
	if IsDomain(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
