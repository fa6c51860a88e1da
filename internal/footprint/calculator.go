package footprint

// Compute estimates the footprint of input using factors.
//
// Compute performs no validation. Callers must guarantee finite,
// non-negative values and LifespanYears > 0; see input.Validate. Unknown
// enum values read a zero factor from the tables.
func Compute(input ProductInput, factors Factors) Result {
	var result Result
	result.MaterialBreakdown = make([]MaterialEmission, 0, len(input.Materials))

	sourcingFactor := factors.Transport[SourcingTransport]
	for _, m := range input.Materials {
		materialEmission := factors.Material[m.Type] * m.WeightKg
		sourcingEmission := (sourcingFactor * m.SourcingDistanceKm * m.WeightKg) / KgPerTonne
		emission := materialEmission + sourcingEmission

		result.Materials += emission
		result.TotalWeightKg += m.WeightKg
		result.MaterialBreakdown = append(result.MaterialBreakdown, MaterialEmission{
			Type:       m.Type,
			WeightKg:   m.WeightKg,
			EmissionKg: emission,
		})
	}

	result.Manufacturing = input.EnergyConsumptionKWh * factors.Energy[input.EnergySource]

	result.Distribution = (factors.Transport[input.TransportMethod] *
		input.TransportDistanceKm * result.TotalWeightKg) / KgPerTonne

	recyclingFactor := (100 - input.RecyclabilityPercent) / 100
	lifespanFactor := 1 / input.LifespanYears
	result.UseEOL = result.TotalWeightKg * recyclingFactor * lifespanFactor * UseEOLMultiplier

	result.Total = result.Materials + result.Manufacturing + result.Distribution + result.UseEOL
	return result
}
