// Package footprint estimates the carbon footprint of a manufactured product.
//
// It combines per-category emission factors (materials, manufacturing energy,
// distribution transport) with a lifecycle heuristic into a total expressed in
// kg CO2e and a per-category breakdown. Everything in this package is pure:
// callers validate input (see package input) and persist results (see package
// store).
package footprint

import (
	"fmt"
	"time"
)

// MaterialType identifies a material category in the material factor table.
type MaterialType string

// Recognized material types.
const (
	MaterialAluminum MaterialType = "aluminum"
	MaterialSteel    MaterialType = "steel"
	MaterialPlastic  MaterialType = "plastic"
	MaterialPaper    MaterialType = "paper"
	MaterialGlass    MaterialType = "glass"
	MaterialWood     MaterialType = "wood"
	MaterialCotton   MaterialType = "cotton"
	MaterialOther    MaterialType = "other"
)

// EnergySource identifies the electricity mix used during manufacturing.
type EnergySource string

// Recognized energy sources.
const (
	EnergyGrid      EnergySource = "grid"
	EnergyRenewable EnergySource = "renewable"
	EnergyMixed     EnergySource = "mixed"
)

// TransportMethod identifies a freight mode in the transport factor table.
type TransportMethod string

// Recognized transport methods.
const (
	TransportTruck TransportMethod = "truck"
	TransportRail  TransportMethod = "rail"
	TransportShip  TransportMethod = "ship"
	TransportAir   TransportMethod = "air"
)

// MaterialTypes returns every recognized material type in display order.
func MaterialTypes() []MaterialType {
	return []MaterialType{
		MaterialAluminum, MaterialSteel, MaterialPlastic, MaterialPaper,
		MaterialGlass, MaterialWood, MaterialCotton, MaterialOther,
	}
}

// EnergySources returns every recognized energy source in display order.
func EnergySources() []EnergySource {
	return []EnergySource{EnergyGrid, EnergyRenewable, EnergyMixed}
}

// TransportMethods returns every recognized transport method in display order.
func TransportMethods() []TransportMethod {
	return []TransportMethod{TransportTruck, TransportRail, TransportShip, TransportAir}
}

// Valid reports whether m is a recognized material type.
func (m MaterialType) Valid() bool {
	for _, v := range MaterialTypes() {
		if v == m {
			return true
		}
	}
	return false
}

// Valid reports whether e is a recognized energy source.
func (e EnergySource) Valid() bool {
	for _, v := range EnergySources() {
		if v == e {
			return true
		}
	}
	return false
}

// Valid reports whether t is a recognized transport method.
func (t TransportMethod) Valid() bool {
	for _, v := range TransportMethods() {
		if v == t {
			return true
		}
	}
	return false
}

// MaterialEntry is one material line of a product.
type MaterialEntry struct {
	Type               MaterialType `json:"type"                 yaml:"type"`
	WeightKg           float64      `json:"weight_kg"            yaml:"weight_kg"`
	SourcingDistanceKm float64      `json:"sourcing_distance_km" yaml:"sourcing_distance_km"`
}

// ProductInput is the full description of a product to estimate.
type ProductInput struct {
	Name                 string          `json:"name"                   yaml:"name"`
	EnergyConsumptionKWh float64         `json:"energy_consumption_kwh" yaml:"energy_consumption_kwh"`
	EnergySource         EnergySource    `json:"energy_source"          yaml:"energy_source"`
	TransportMethod      TransportMethod `json:"transport_method"       yaml:"transport_method"`
	TransportDistanceKm  float64         `json:"transport_distance_km"  yaml:"transport_distance_km"`
	LifespanYears        float64         `json:"lifespan_years"         yaml:"lifespan_years"`
	RecyclabilityPercent float64         `json:"recyclability_percent"  yaml:"recyclability_percent"`
	Materials            []MaterialEntry `json:"materials"              yaml:"materials"`
}

// MaterialEmission is a single row of the material breakdown.
// EmissionKg includes the sourcing transport share.
type MaterialEmission struct {
	Type       MaterialType `json:"type"`
	WeightKg   float64      `json:"weight_kg"`
	EmissionKg float64      `json:"emission_kg"`
}

// Breakdown holds the four lifecycle subtotals and their sum, in kg CO2e.
type Breakdown struct {
	Total         float64 `json:"total"`
	Materials     float64 `json:"materials"`
	Manufacturing float64 `json:"manufacturing"`
	Distribution  float64 `json:"distribution"`
	UseEOL        float64 `json:"use_eol"`
}

// Result is the output of Compute.
type Result struct {
	Breakdown

	MaterialBreakdown []MaterialEmission `json:"material_breakdown"`
	TotalWeightKg     float64            `json:"total_weight_kg"`
}

// Category is one of the four lifecycle subtotals.
type Category string

// Lifecycle categories in display order.
const (
	CategoryMaterials     Category = "materials"
	CategoryManufacturing Category = "manufacturing"
	CategoryDistribution  Category = "distribution"
	CategoryUseEOL        Category = "use_eol"
)

// Categories returns the four lifecycle categories in display order.
func Categories() []Category {
	return []Category{CategoryMaterials, CategoryManufacturing, CategoryDistribution, CategoryUseEOL}
}

// Label returns the human-readable category name.
func (c Category) Label() string {
	switch c {
	case CategoryMaterials:
		return "Materials"
	case CategoryManufacturing:
		return "Manufacturing"
	case CategoryDistribution:
		return "Distribution"
	case CategoryUseEOL:
		return "Use & End-of-Life"
	default:
		return fmt.Sprintf("Category(%s)", string(c))
	}
}

// Value returns the subtotal for category c.
func (b Breakdown) Value(c Category) float64 {
	switch c {
	case CategoryMaterials:
		return b.Materials
	case CategoryManufacturing:
		return b.Manufacturing
	case CategoryDistribution:
		return b.Distribution
	case CategoryUseEOL:
		return b.UseEOL
	default:
		return 0
	}
}

// Add returns the element-wise sum of b and o.
func (b Breakdown) Add(o Breakdown) Breakdown {
	return Breakdown{
		Total:         b.Total + o.Total,
		Materials:     b.Materials + o.Materials,
		Manufacturing: b.Manufacturing + o.Manufacturing,
		Distribution:  b.Distribution + o.Distribution,
		UseEOL:        b.UseEOL + o.UseEOL,
	}
}

// ProductDetails echoes the input a product was computed from.
type ProductDetails struct {
	MaterialBreakdown    []MaterialEmission `json:"material_breakdown"`
	Materials            []MaterialEntry    `json:"materials"`
	EnergyConsumptionKWh float64            `json:"energy_consumption_kwh"`
	EnergySource         EnergySource       `json:"energy_source"`
	TransportMethod      TransportMethod    `json:"transport_method"`
	TransportDistanceKm  float64            `json:"transport_distance_km"`
	LifespanYears        float64            `json:"lifespan_years"`
	RecyclabilityPercent float64            `json:"recyclability_percent"`
	TotalWeightKg        float64            `json:"total_weight_kg"`
}

// Product is a computed footprint ready to be persisted.
// Name is the unique key within a store.
type Product struct {
	ID        string         `json:"id,omitempty"`
	Name      string         `json:"name"`
	Timestamp time.Time      `json:"timestamp"`
	Footprint Breakdown      `json:"footprint"`
	Details   ProductDetails `json:"details"`
}
