package dashboard

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rshade/sustaintrack/internal/footprint"
)

// reportTimeLayout is the layout of the report footer timestamp.
const reportTimeLayout = "2006-01-02 15:04:05 MST"

// Fixed2 renders v with exactly two decimals, rounding half away from zero.
func Fixed2(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Report renders the plain-text report for p, stamped with now.
func Report(p footprint.Product, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Carbon Footprint Report for %s\n\n", p.Name)
	fmt.Fprintf(&b, "Total Carbon Footprint: %s kg CO2e\n", Fixed2(p.Footprint.Total))
	fmt.Fprintf(&b, "Rating: %s\n\n", p.Rating().Label)

	b.WriteString("Breakdown:\n")
	for _, c := range footprint.Categories() {
		fmt.Fprintf(&b, "- %s: %s kg CO2e\n", c.Label(), Fixed2(p.Footprint.Value(c)))
	}

	d := p.Details
	b.WriteString("\nKey Details:\n")
	fmt.Fprintf(&b, "- Total Weight: %s kg\n", Fixed2(d.TotalWeightKg))
	fmt.Fprintf(&b, "- Energy Consumption: %s kWh\n", plain(d.EnergyConsumptionKWh))
	fmt.Fprintf(&b, "- Energy Source: %s\n", d.EnergySource)
	fmt.Fprintf(&b, "- Transport Method: %s\n", d.TransportMethod)
	fmt.Fprintf(&b, "- Product Lifespan: %s years\n", plain(d.LifespanYears))
	fmt.Fprintf(&b, "- Recyclability: %s%%\n", plain(d.RecyclabilityPercent))

	fmt.Fprintf(&b, "\nReport generated by SustainTrack on %s\n", now.Format(reportTimeLayout))
	return b.String()
}

// plain renders v in its shortest form, without trailing zeros.
func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
