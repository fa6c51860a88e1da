package footprint

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewProduct builds the persisted record for a computed footprint.
// The timestamp is normalized to UTC and also seeds the ULID. A timestamp
// outside the ULID range (before 1970, or the zero time) gets an ID stamped
// with the current time instead.
func NewProduct(input ProductInput, result Result, now time.Time) Product {
	now = now.UTC()

	materials := make([]MaterialEntry, len(input.Materials))
	copy(materials, input.Materials)
	breakdown := make([]MaterialEmission, len(result.MaterialBreakdown))
	copy(breakdown, result.MaterialBreakdown)

	return Product{
		ID:        newID(now),
		Name:      input.Name,
		Timestamp: now,
		Footprint: result.Breakdown,
		Details: ProductDetails{
			MaterialBreakdown:    breakdown,
			Materials:            materials,
			EnergyConsumptionKWh: input.EnergyConsumptionKWh,
			EnergySource:         input.EnergySource,
			TransportMethod:      input.TransportMethod,
			TransportDistanceKm:  input.TransportDistanceKm,
			LifespanYears:        input.LifespanYears,
			RecyclabilityPercent: input.RecyclabilityPercent,
			TotalWeightKg:        result.TotalWeightKg,
		},
	}
}

// Rating returns the rating band of the product's total.
func (p Product) Rating() Rating {
	return Rate(p.Footprint.Total)
}

// Input reconstructs the ProductInput the product was computed from.
func (p Product) Input() ProductInput {
	materials := make([]MaterialEntry, len(p.Details.Materials))
	copy(materials, p.Details.Materials)
	return ProductInput{
		Name:                 p.Name,
		EnergyConsumptionKWh: p.Details.EnergyConsumptionKWh,
		EnergySource:         p.Details.EnergySource,
		TransportMethod:      p.Details.TransportMethod,
		TransportDistanceKm:  p.Details.TransportDistanceKm,
		LifespanYears:        p.Details.LifespanYears,
		RecyclabilityPercent: p.Details.RecyclabilityPercent,
		Materials:            materials,
	}
}

// newID returns a ULID for now, falling back to the current time when now
// cannot be encoded.
func newID(now time.Time) string {
	if now.Unix() >= 0 {
		if id, err := ulid.New(ulid.Timestamp(now), rand.Reader); err == nil {
			return id.String()
		}
	}
	return ulid.Make().String()
}
