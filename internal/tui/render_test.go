package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/sustaintrack/internal/dashboard"
	"github.com/rshade/sustaintrack/internal/footprint"
)

func referenceProduct(t *testing.T) footprint.Product {
	t.Helper()
	in := footprint.ProductInput{
		Name:                 "Water Bottle",
		EnergyConsumptionKWh: 50,
		EnergySource:         footprint.EnergyGrid,
		TransportMethod:      footprint.TransportTruck,
		TransportDistanceKm:  200,
		LifespanYears:        5,
		RecyclabilityPercent: 50,
		Materials: []footprint.MaterialEntry{
			{Type: footprint.MaterialAluminum, WeightKg: 2, SourcingDistanceKm: 100},
		},
	}
	ts := time.Date(2025, time.April, 2, 10, 0, 0, 0, time.UTC)
	return footprint.NewProduct(in, footprint.Compute(in, footprint.DefaultFactors()), ts)
}

func named(name string, total float64, ts time.Time) footprint.Product {
	return footprint.Product{
		Name:      name,
		Timestamp: ts,
		Footprint: footprint.Breakdown{Total: total, Materials: total},
	}
}

func TestRenderResult(t *testing.T) {
	out := RenderResult(referenceProduct(t), 0)

	for _, want := range []string{
		"Water Bottle",
		"42.46",
		"B (Good)",
		"Materials",
		"22.02",
		"Use & End-of-Life",
		"aluminum",
		"Total weight",
		"Equivalent to driving ~221 miles",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderResult_ZeroFootprintHasNoEquivalency(t *testing.T) {
	out := RenderResult(named("Nothing", 0, time.Now()), 60)
	assert.Contains(t, out, "A+ (Excellent)")
	assert.NotContains(t, out, "Equivalent to")
}

func TestRenderDashboard(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		out := RenderDashboard(dashboard.Summarize(nil), 80)
		assert.Contains(t, out, "No saved products")
	})

	t.Run("sections", func(t *testing.T) {
		jan := time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC)
		out := RenderDashboard(dashboard.Summarize([]footprint.Product{
			named("Kettle", 80, jan),
			named("Mug", 20, jan),
		}), 80)

		assert.Contains(t, out, "2 products")
		assert.Contains(t, out, "Emissions by Category")
		assert.Contains(t, out, "Product Comparison")
		assert.Contains(t, out, "Monthly Average")
		assert.Contains(t, out, "1/2025 (2)")
		assert.Contains(t, out, "50.00")
		assert.Contains(t, out, barRune)
	})
}

func TestRenderRecommendations(t *testing.T) {
	out := RenderRecommendations(dashboard.Recommendations())
	assert.Contains(t, out, "Transport")
	assert.Equal(t, 16, strings.Count(out, "•"))
}

func TestRenderProductTable(t *testing.T) {
	base := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	products := []footprint.Product{
		named("Low", 5, base),
		named("High", 250, base.Add(time.Hour)),
	}

	out := RenderProductTable(products, dashboard.FilterHighest)
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "E (Poor)")
	assert.Contains(t, out, "2025-05-01")
	assert.Less(t, strings.Index(out, "High"), strings.Index(out, "Low"))

	assert.Contains(t, RenderProductTable(nil, dashboard.FilterRecent), "No saved products")
}

func TestBar(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		max   float64
		width int
		want  int
	}{
		{name: "full", value: 10, max: 10, width: 20, want: 20},
		{name: "half", value: 5, max: 10, width: 20, want: 10},
		{name: "tiny rounds up to one", value: 0.01, max: 10, width: 20, want: 1},
		{name: "zero", value: 0, max: 10, width: 20, want: 0},
		{name: "narrow width clamps", value: 10, max: 10, width: 2, want: minBarWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bar(tt.value, tt.max, tt.width, ColorBar)
			assert.Equal(t, tt.want, strings.Count(got, barRune))
		})
	}
}

func TestClip(t *testing.T) {
	assert.Equal(t, "short", clip("short", 10))
	assert.Equal(t, "abcdefg...", clip("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", clip("abcdef", 2))
}
