package greenops

import (
	"fmt"
	"math"
)

type equivalencyDef struct {
	kind   EquivalencyType
	factor float64
	label  string
}

//nolint:gochecknoglobals // Read-only lookup table.
var equivalencyDefs = []equivalencyDef{
	{kind: EquivalencyMilesDriven, factor: MilesDrivenFactor, label: "miles driven"},
	{kind: EquivalencySmartphonesCharged, factor: SmartphoneChargeFactor, label: "smartphones charged"},
	{kind: EquivalencyTreeSeedlings, factor: TreeSeedlingFactor, label: "tree seedlings grown for 10 years"},
	{kind: EquivalencyHomeDays, factor: HomeDayFactor, label: "days of home electricity"},
}

// ForFootprint computes every equivalency for a footprint of kg CO2e.
//
// A footprint below MinEquivalencyKg yields an empty Output and no error.
// Negative values return ErrNegativeValue and NaN or infinite values return
// ErrCalculationOverflow.
func ForFootprint(kg float64) (Output, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return Output{IsEmpty: true}, ErrCalculationOverflow
	}
	if kg < 0 {
		return Output{IsEmpty: true}, ErrNegativeValue
	}
	if kg < MinEquivalencyKg {
		return Output{InputKg: kg, IsEmpty: true}, nil
	}

	results := make([]Equivalency, 0, len(equivalencyDefs))
	for _, def := range equivalencyDefs {
		v := kg / def.factor
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return Output{IsEmpty: true}, ErrCalculationOverflow
		}
		results = append(results, Equivalency{
			Type:           def.kind,
			Value:          v,
			FormattedValue: formatEquivalencyValue(v),
			Label:          def.label,
		})
	}

	miles := results[0].FormattedValue
	phones := results[1].FormattedValue

	return Output{
		InputKg:     kg,
		Results:     results,
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones", miles, phones),
		CompactText: fmt.Sprintf("(≈ %s mi, %s phones)", miles, phones),
	}, nil
}

// formatEquivalencyValue picks large-number notation, a whole number or one
// decimal place depending on magnitude.
func formatEquivalencyValue(v float64) string {
	switch {
	case v >= LargeNumberThreshold:
		return FormatLarge(v)
	case v >= WholeNumberThreshold:
		return FormatNumber(int64(math.Round(v)))
	default:
		return FormatFloat(v, 1)
	}
}
