// Package input is the validation boundary in front of the footprint
// calculator. It decodes product descriptions from files and CLI flags and
// rejects values the calculator is not defined for.
package input

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rshade/sustaintrack/internal/footprint"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Validation errors. FieldError wraps one of these.
var (
	ErrRequired            = constError("value is required")
	ErrNegative            = constError("value must not be negative")
	ErrNotFinite           = constError("value must be finite")
	ErrOutOfRange          = constError("value out of range")
	ErrUnknownValue        = constError("unrecognized value")
	ErrNonPositiveLifespan = constError("lifespan must be greater than zero")
)

// FieldError reports a single invalid field.
type FieldError struct {
	Field string
	Value any
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v (got %v)", e.Field, e.Err, e.Value)
}

func (e *FieldError) Unwrap() error { return e.Err }

// MaxRecyclabilityPercent is the upper bound of RecyclabilityPercent.
const MaxRecyclabilityPercent = 100.0

// Validate checks in against the calculator's preconditions. All failures are
// reported together as a joined error of *FieldError values.
func Validate(in footprint.ProductInput) error {
	var errs []error
	add := func(field string, value any, err error) {
		errs = append(errs, &FieldError{Field: field, Value: value, Err: err})
	}

	if strings.TrimSpace(in.Name) == "" {
		add("name", in.Name, ErrRequired)
	}

	checkAmount := func(field string, v float64) {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			add(field, v, ErrNotFinite)
		case v < 0:
			add(field, v, ErrNegative)
		}
	}

	checkAmount("energy_consumption_kwh", in.EnergyConsumptionKWh)
	checkAmount("transport_distance_km", in.TransportDistanceKm)

	if !in.EnergySource.Valid() {
		add("energy_source", in.EnergySource, ErrUnknownValue)
	}
	if !in.TransportMethod.Valid() {
		add("transport_method", in.TransportMethod, ErrUnknownValue)
	}

	switch {
	case math.IsNaN(in.LifespanYears) || math.IsInf(in.LifespanYears, 0):
		add("lifespan_years", in.LifespanYears, ErrNotFinite)
	case in.LifespanYears <= 0:
		add("lifespan_years", in.LifespanYears, ErrNonPositiveLifespan)
	}

	switch {
	case math.IsNaN(in.RecyclabilityPercent) || math.IsInf(in.RecyclabilityPercent, 0):
		add("recyclability_percent", in.RecyclabilityPercent, ErrNotFinite)
	case in.RecyclabilityPercent < 0 || in.RecyclabilityPercent > MaxRecyclabilityPercent:
		add("recyclability_percent", in.RecyclabilityPercent, ErrOutOfRange)
	}

	if len(in.Materials) == 0 {
		add("materials", 0, ErrRequired)
	}
	for i, m := range in.Materials {
		prefix := fmt.Sprintf("materials[%d]", i)
		if !m.Type.Valid() {
			add(prefix+".type", m.Type, ErrUnknownValue)
		}
		checkAmount(prefix+".weight_kg", m.WeightKg)
		checkAmount(prefix+".sourcing_distance_km", m.SourcingDistanceKm)
	}

	return errors.Join(errs...)
}
