package footprint

import (
	"fmt"
	"sort"
	"time"
)

// MonthlyAverage is the mean footprint total of products created in one
// calendar month (UTC).
type MonthlyAverage struct {
	Year    int        `json:"year"`
	Month   time.Month `json:"month"`
	Count   int        `json:"count"`
	Average float64    `json:"average"`
}

// Label renders the month as "M/YYYY".
func (m MonthlyAverage) Label() string {
	return fmt.Sprintf("%d/%d", int(m.Month), m.Year)
}

// CategoryTotals sums each product's subtotals across the collection.
func CategoryTotals(products []Product) Breakdown {
	var totals Breakdown
	for _, p := range products {
		totals = totals.Add(p.Footprint)
	}
	return totals
}

type monthKey struct {
	year  int
	month time.Month
}

// MonthlyAverages groups products by the UTC calendar month of their
// timestamp and returns the mean total per month, oldest month first.
func MonthlyAverages(products []Product) []MonthlyAverage {
	type acc struct {
		sum   float64
		count int
	}

	groups := make(map[monthKey]*acc)
	for _, p := range products {
		ts := p.Timestamp.UTC()
		key := monthKey{year: ts.Year(), month: ts.Month()}
		a, ok := groups[key]
		if !ok {
			a = &acc{}
			groups[key] = a
		}
		a.sum += p.Footprint.Total
		a.count++
	}

	out := make([]MonthlyAverage, 0, len(groups))
	for key, a := range groups {
		out = append(out, MonthlyAverage{
			Year:    key.year,
			Month:   key.month,
			Count:   a.count,
			Average: a.sum / float64(a.count),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}
