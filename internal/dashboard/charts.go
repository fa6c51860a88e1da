package dashboard

import "github.com/rshade/sustaintrack/internal/footprint"

// ComparisonPoint is one bar of the per-product comparison chart.
type ComparisonPoint struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// CategorySlice is one segment of a category-share chart.
type CategorySlice struct {
	Category footprint.Category `json:"category"`
	Label    string             `json:"label"`
	Value    float64            `json:"value"`
	Percent  float64            `json:"percent"`
	Color    string             `json:"color"`
}

// categoryColors are the chart colours for each lifecycle category.
//
//nolint:gochecknoglobals // Read-only lookup table.
var categoryColors = map[footprint.Category]string{
	footprint.CategoryMaterials:     "#3498db",
	footprint.CategoryManufacturing: "#2ecc71",
	footprint.CategoryDistribution:  "#9b59b6",
	footprint.CategoryUseEOL:        "#f39c12",
}

// CategoryColor returns the chart colour of c.
func CategoryColor(c footprint.Category) string {
	return categoryColors[c]
}

// Comparison returns one point per product in stored order.
func Comparison(products []footprint.Product) []ComparisonPoint {
	points := make([]ComparisonPoint, 0, len(products))
	for _, p := range products {
		points = append(points, ComparisonPoint{Name: p.Name, Total: p.Footprint.Total})
	}
	return points
}

// CategoryShare sums the four lifecycle subtotals across products and
// expresses each as a percentage of the grand total.
func CategoryShare(products []footprint.Product) []CategorySlice {
	return Share(footprint.CategoryTotals(products))
}

// Share splits a single breakdown into its four category slices. Percent is
// zero for every slice when the breakdown sums to zero.
func Share(b footprint.Breakdown) []CategorySlice {
	var sum float64
	for _, c := range footprint.Categories() {
		sum += b.Value(c)
	}

	slices := make([]CategorySlice, 0, len(footprint.Categories()))
	for _, c := range footprint.Categories() {
		v := b.Value(c)
		var pct float64
		if sum != 0 {
			pct = v / sum * 100
		}
		slices = append(slices, CategorySlice{
			Category: c,
			Label:    c.Label(),
			Value:    v,
			Percent:  pct,
			Color:    categoryColors[c],
		})
	}
	return slices
}

// Trend returns the monthly average series, oldest month first.
func Trend(products []footprint.Product) []footprint.MonthlyAverage {
	return footprint.MonthlyAverages(products)
}

// Summary aggregates everything the dashboard view shows.
type Summary struct {
	Count      int                        `json:"count"`
	Totals     footprint.Breakdown        `json:"totals"`
	Comparison []ComparisonPoint          `json:"comparison"`
	Categories []CategorySlice            `json:"categories"`
	Trend      []footprint.MonthlyAverage `json:"trend"`
}

// Summarize builds the dashboard summary for products.
func Summarize(products []footprint.Product) Summary {
	return Summary{
		Count:      len(products),
		Totals:     footprint.CategoryTotals(products),
		Comparison: Comparison(products),
		Categories: CategoryShare(products),
		Trend:      Trend(products),
	}
}
