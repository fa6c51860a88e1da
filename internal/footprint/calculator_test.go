package footprint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func aluminumExample() ProductInput {
	return ProductInput{
		Name:                 "Water Bottle",
		EnergyConsumptionKWh: 50,
		EnergySource:         EnergyGrid,
		TransportMethod:      TransportTruck,
		TransportDistanceKm:  200,
		LifespanYears:        5,
		RecyclabilityPercent: 50,
		Materials: []MaterialEntry{
			{Type: MaterialAluminum, WeightKg: 2, SourcingDistanceKm: 100},
		},
	}
}

func TestCompute_ReferenceExample(t *testing.T) {
	got := Compute(aluminumExample(), DefaultFactors())

	assert.InDelta(t, 22.02, got.Materials, tolerance)
	assert.InDelta(t, 20.0, got.Manufacturing, tolerance)
	assert.InDelta(t, 0.04, got.Distribution, tolerance)
	assert.InDelta(t, 0.4, got.UseEOL, tolerance)
	assert.InDelta(t, 42.46, got.Total, tolerance)
	assert.InDelta(t, 2.0, got.TotalWeightKg, tolerance)

	require.Len(t, got.MaterialBreakdown, 1)
	assert.Equal(t, MaterialAluminum, got.MaterialBreakdown[0].Type)
	assert.InDelta(t, 2.0, got.MaterialBreakdown[0].WeightKg, tolerance)
	assert.InDelta(t, 22.02, got.MaterialBreakdown[0].EmissionKg, tolerance)

	assert.Equal(t, "B (Good)", Rate(got.Total).Label)
}

func TestCompute_Invariants(t *testing.T) {
	tests := []struct {
		name  string
		input ProductInput
	}{
		{name: "reference", input: aluminumExample()},
		{
			name: "mixed materials by air",
			input: ProductInput{
				Name:                 "Jacket",
				EnergyConsumptionKWh: 12.5,
				EnergySource:         EnergyMixed,
				TransportMethod:      TransportAir,
				TransportDistanceKm:  8000,
				LifespanYears:        3,
				RecyclabilityPercent: 10,
				Materials: []MaterialEntry{
					{Type: MaterialCotton, WeightKg: 0.8, SourcingDistanceKm: 1200},
					{Type: MaterialPlastic, WeightKg: 0.15, SourcingDistanceKm: 300},
					{Type: MaterialSteel, WeightKg: 0.02, SourcingDistanceKm: 50},
				},
			},
		},
		{
			name: "zero weight and fully recyclable",
			input: ProductInput{
				Name:                 "Empty",
				EnergySource:         EnergyRenewable,
				TransportMethod:      TransportShip,
				LifespanYears:        10,
				RecyclabilityPercent: 100,
				Materials:            []MaterialEntry{{Type: MaterialGlass}},
			},
		},
		{
			name: "long lived furniture",
			input: ProductInput{
				Name:                 "Table",
				EnergyConsumptionKWh: 300,
				EnergySource:         EnergyGrid,
				TransportMethod:      TransportRail,
				TransportDistanceKm:  1500,
				LifespanYears:        25,
				RecyclabilityPercent: 80,
				Materials: []MaterialEntry{
					{Type: MaterialWood, WeightKg: 35, SourcingDistanceKm: 400},
					{Type: MaterialOther, WeightKg: 1.5, SourcingDistanceKm: 2000},
					{Type: MaterialPaper, WeightKg: 2, SourcingDistanceKm: 20},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.input, DefaultFactors())

			sum := got.Materials + got.Manufacturing + got.Distribution + got.UseEOL
			assert.InDelta(t, sum, got.Total, tolerance*math.Max(1, math.Abs(got.Total)))

			var materialSum, weightSum float64
			for _, row := range got.MaterialBreakdown {
				materialSum += row.EmissionKg
				weightSum += row.WeightKg
			}
			assert.InDelta(t, got.Materials, materialSum, tolerance)
			assert.InDelta(t, got.TotalWeightKg, weightSum, tolerance)
			assert.Len(t, got.MaterialBreakdown, len(tt.input.Materials))

			for _, v := range []float64{got.Total, got.Materials, got.Manufacturing, got.Distribution, got.UseEOL} {
				assert.GreaterOrEqual(t, v, 0.0)
			}
		})
	}
}

func TestCompute_SourcingAlwaysUsesTruck(t *testing.T) {
	base := aluminumExample()
	byAir := aluminumExample()
	byAir.TransportMethod = TransportAir

	truck := Compute(base, DefaultFactors())
	air := Compute(byAir, DefaultFactors())

	assert.InDelta(t, truck.Materials, air.Materials, tolerance)
	assert.Greater(t, air.Distribution, truck.Distribution)
}

func TestCompute_UseEOLShape(t *testing.T) {
	in := aluminumExample()

	in.LifespanYears = 10
	longer := Compute(in, DefaultFactors())
	in.LifespanYears = 5
	shorter := Compute(in, DefaultFactors())
	assert.InDelta(t, shorter.UseEOL/2, longer.UseEOL, tolerance)

	in.RecyclabilityPercent = 100
	assert.InDelta(t, 0.0, Compute(in, DefaultFactors()).UseEOL, tolerance)
}

func TestCompute_CustomFactors(t *testing.T) {
	factors := DefaultFactors()
	factors.Energy[EnergyGrid] = 1.0

	got := Compute(aluminumExample(), factors)
	assert.InDelta(t, 50.0, got.Manufacturing, tolerance)

	// Defaults are not shared with the modified copy.
	assert.InDelta(t, 0.4, DefaultFactors().Energy[EnergyGrid], tolerance)
}

func TestCompute_PreservesMaterialOrder(t *testing.T) {
	in := aluminumExample()
	in.Materials = []MaterialEntry{
		{Type: MaterialWood, WeightKg: 1},
		{Type: MaterialAluminum, WeightKg: 1},
		{Type: MaterialWood, WeightKg: 3},
	}

	got := Compute(in, DefaultFactors())
	require.Len(t, got.MaterialBreakdown, 3)
	assert.Equal(t, MaterialWood, got.MaterialBreakdown[0].Type)
	assert.Equal(t, MaterialAluminum, got.MaterialBreakdown[1].Type)
	assert.InDelta(t, 3.0, got.MaterialBreakdown[2].WeightKg, tolerance)
}
