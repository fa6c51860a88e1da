// Package greenops turns a footprint in kg CO2e into everyday comparisons
// such as miles driven or smartphones charged, using EPA conversion factors.
package greenops

import "fmt"

// EquivalencyType is a category of carbon comparison.
type EquivalencyType int

const (
	// EquivalencyMilesDriven is miles driven in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencySmartphonesCharged is full smartphone charges.
	EquivalencySmartphonesCharged

	// EquivalencyTreeSeedlings is tree seedlings grown for 10 years to absorb
	// the same amount.
	EquivalencyTreeSeedlings

	// EquivalencyHomeDays is days of average US home electricity use.
	EquivalencyHomeDays
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	case EquivalencyTreeSeedlings:
		return "TreeSeedlings"
	case EquivalencyHomeDays:
		return "HomeDays"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// Equivalency is one calculated comparison.
type Equivalency struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// Output holds every comparison for one footprint total.
type Output struct {
	// InputKg is the footprint the comparisons were derived from.
	InputKg float64 `json:"input_kg"`

	// Results are ordered miles, smartphones, seedlings, home-days.
	Results []Equivalency `json:"results"`

	// DisplayText is the one-line prose summary, e.g.
	// "Equivalent to driving ~221 miles or charging ~5,165 smartphones".
	DisplayText string `json:"display_text"`

	// CompactText is the abbreviated form for tables, e.g. "(≈ 221 mi, 5,165 phones)".
	CompactText string `json:"compact_text"`

	// IsEmpty is true when the footprint is below MinEquivalencyKg.
	IsEmpty bool `json:"is_empty"`
}

// Find returns the result of type t, if present.
func (o Output) Find(t EquivalencyType) (Equivalency, bool) {
	for _, r := range o.Results {
		if r.Type == t {
			return r, true
		}
	}
	return Equivalency{}, false
}
