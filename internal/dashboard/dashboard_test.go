package dashboard

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/sustaintrack/internal/footprint"
)

func product(name string, b footprint.Breakdown, ts time.Time) footprint.Product {
	return footprint.Product{Name: name, Timestamp: ts, Footprint: b}
}

func total(name string, v float64, ts time.Time) footprint.Product {
	return product(name, footprint.Breakdown{Total: v, Materials: v}, ts)
}

func names(products []footprint.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestParseFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Filter
		wantErr bool
	}{
		{in: "", want: FilterRecent},
		{in: "recent", want: FilterRecent},
		{in: "HIGHEST", want: FilterHighest},
		{in: " lowest ", want: FilterLowest},
		{in: "oldest", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseFilter(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownFilter))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortProducts(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	products := []footprint.Product{
		total("mid-old", 30, base),
		total("high", 90, base.Add(48*time.Hour)),
		total("low", 5, base.Add(24*time.Hour)),
		total("mid-new", 30, base.Add(72*time.Hour)),
	}

	tests := []struct {
		filter Filter
		want   []string
	}{
		{filter: FilterRecent, want: []string{"mid-new", "high", "low", "mid-old"}},
		{filter: FilterHighest, want: []string{"high", "mid-old", "mid-new", "low"}},
		{filter: FilterLowest, want: []string{"low", "mid-old", "mid-new", "high"}},
		{filter: Filter("bogus"), want: []string{"mid-old", "high", "low", "mid-new"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, names(SortProducts(products, tt.filter)))
		})
	}

	t.Run("input is not modified", func(t *testing.T) {
		t.Parallel()
		_ = SortProducts(products, FilterHighest)
		assert.Equal(t, "mid-old", products[0].Name)
	})
}

func TestComparison(t *testing.T) {
	t.Parallel()
	ts := time.Now()
	got := Comparison([]footprint.Product{total("b", 2, ts), total("a", 1, ts)})
	assert.Equal(t, []ComparisonPoint{{Name: "b", Total: 2}, {Name: "a", Total: 1}}, got)
	assert.Empty(t, Comparison(nil))
}

func TestCategoryShare(t *testing.T) {
	t.Parallel()
	ts := time.Now()

	t.Run("percentages of grand total", func(t *testing.T) {
		t.Parallel()
		products := []footprint.Product{
			product("x", footprint.Breakdown{Total: 50, Materials: 20, Manufacturing: 20, Distribution: 5, UseEOL: 5}, ts),
			product("y", footprint.Breakdown{Total: 50, Materials: 30, Manufacturing: 10, Distribution: 5, UseEOL: 5}, ts),
		}
		slices := CategoryShare(products)
		require.Len(t, slices, 4)

		assert.Equal(t, footprint.CategoryMaterials, slices[0].Category)
		assert.Equal(t, "Materials", slices[0].Label)
		assert.InDelta(t, 50.0, slices[0].Value, 1e-9)
		assert.InDelta(t, 50.0, slices[0].Percent, 1e-9)
		assert.InDelta(t, 30.0, slices[1].Percent, 1e-9)
		assert.InDelta(t, 10.0, slices[2].Percent, 1e-9)
		assert.Equal(t, "Use & End-of-Life", slices[3].Label)
		assert.Equal(t, "#f39c12", slices[3].Color)

		var sum float64
		for _, s := range slices {
			sum += s.Percent
		}
		assert.InDelta(t, 100.0, sum, 1e-9)
	})

	t.Run("empty collection has zero percentages", func(t *testing.T) {
		t.Parallel()
		for _, s := range CategoryShare(nil) {
			assert.Zero(t, s.Value)
			assert.Zero(t, s.Percent)
		}
	})
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	jan := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)

	s := Summarize([]footprint.Product{
		total("a", 10, feb),
		total("b", 20, feb.Add(time.Hour)),
		total("c", 4, jan),
	})

	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 34.0, s.Totals.Total, 1e-9)
	assert.Len(t, s.Comparison, 3)
	require.Len(t, s.Trend, 2)
	assert.Equal(t, "1/2025", s.Trend[0].Label())
	assert.InDelta(t, 15.0, s.Trend[1].Average, 1e-9)
}

func TestRecommendations(t *testing.T) {
	t.Parallel()
	groups := Recommendations()
	require.Len(t, groups, 4)

	titles := make([]string, 0, len(groups))
	for _, g := range groups {
		titles = append(titles, g.Title)
		assert.Len(t, g.Items, 4, g.Title)
	}
	assert.Equal(t, []string{"Materials", "Energy", "Transport", "Lifecycle"}, titles)
	assert.Equal(t, "Switch to renewable energy sources for manufacturing", groups[1].Items[0])
}
