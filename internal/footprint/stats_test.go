package footprint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productAt(name string, ts time.Time, b Breakdown) Product {
	return Product{Name: name, Timestamp: ts, Footprint: b}
}

func TestCategoryTotals(t *testing.T) {
	products := []Product{
		productAt("a", time.Now(), Breakdown{Total: 10, Materials: 4, Manufacturing: 3, Distribution: 2, UseEOL: 1}),
		productAt("b", time.Now(), Breakdown{Total: 20, Materials: 8, Manufacturing: 6, Distribution: 4, UseEOL: 2}),
	}

	got := CategoryTotals(products)
	assert.InDelta(t, 30.0, got.Total, tolerance)
	assert.InDelta(t, 12.0, got.Materials, tolerance)
	assert.InDelta(t, 9.0, got.Manufacturing, tolerance)
	assert.InDelta(t, 6.0, got.Distribution, tolerance)
	assert.InDelta(t, 3.0, got.UseEOL, tolerance)

	assert.Equal(t, Breakdown{}, CategoryTotals(nil))
}

func TestMonthlyAverages(t *testing.T) {
	t.Run("same month averages", func(t *testing.T) {
		products := []Product{
			productAt("a", time.Date(2025, time.March, 2, 10, 0, 0, 0, time.UTC), Breakdown{Total: 10}),
			productAt("b", time.Date(2025, time.March, 28, 23, 0, 0, 0, time.UTC), Breakdown{Total: 20}),
		}

		got := MonthlyAverages(products)
		require.Len(t, got, 1)
		assert.Equal(t, 2025, got[0].Year)
		assert.Equal(t, time.March, got[0].Month)
		assert.Equal(t, 2, got[0].Count)
		assert.Equal(t, 15.0, got[0].Average) //nolint:testifylint // exact by construction
		assert.Equal(t, "3/2025", got[0].Label())
	})

	t.Run("chronological order across years", func(t *testing.T) {
		products := []Product{
			productAt("a", time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC), Breakdown{Total: 1}),
			productAt("b", time.Date(2024, time.December, 5, 0, 0, 0, 0, time.UTC), Breakdown{Total: 2}),
			productAt("c", time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC), Breakdown{Total: 3}),
			productAt("d", time.Date(2024, time.November, 5, 0, 0, 0, 0, time.UTC), Breakdown{Total: 4}),
		}

		got := MonthlyAverages(products)
		require.Len(t, got, 4)
		labels := make([]string, len(got))
		for i, m := range got {
			labels[i] = m.Label()
		}
		assert.Equal(t, []string{"2/2024", "11/2024", "12/2024", "1/2025"}, labels)
	})

	t.Run("grouping uses UTC", func(t *testing.T) {
		east := time.FixedZone("UTC+10", 10*60*60)
		// 1 April 05:00 at UTC+10 is still 31 March in UTC.
		products := []Product{
			productAt("a", time.Date(2025, time.April, 1, 5, 0, 0, 0, east), Breakdown{Total: 30}),
			productAt("b", time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), Breakdown{Total: 10}),
		}

		got := MonthlyAverages(products)
		require.Len(t, got, 1)
		assert.Equal(t, time.March, got[0].Month)
		assert.InDelta(t, 20.0, got[0].Average, tolerance)
	})

	t.Run("empty collection", func(t *testing.T) {
		assert.Empty(t, MonthlyAverages(nil))
	})
}
