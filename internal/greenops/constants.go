package greenops

// EPA greenhouse gas equivalency divisors, kg CO2e per unit of activity.
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
//	equivalency = kg_CO2e / factor
const (
	// MilesDrivenFactor is kg CO2e per mile of an average passenger vehicle.
	MilesDrivenFactor = 0.192

	// SmartphoneChargeFactor is kg CO2e per full smartphone charge.
	SmartphoneChargeFactor = 0.00822

	// TreeSeedlingFactor is kg CO2e sequestered by one urban tree seedling
	// grown for 10 years.
	TreeSeedlingFactor = 60.0

	// HomeDayFactor is kg CO2e of one day of average US home electricity use.
	HomeDayFactor = 18.3
)

// Display thresholds.
const (
	// MinEquivalencyKg is the smallest footprint that gets equivalencies.
	// Below it the comparisons round to nothing useful.
	MinEquivalencyKg = 0.1

	// WholeNumberThreshold is the value from which equivalencies drop their
	// decimal place.
	WholeNumberThreshold = 10.0

	// LargeNumberThreshold switches to "~X.X million" notation.
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches to "~X.X billion" notation.
	BillionThreshold = 1_000_000_000
)
