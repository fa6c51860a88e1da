// Package dashboard builds the presentation models behind the product list,
// the three dashboard charts, the recommendation lists and the text report.
// It holds no state; every builder takes the product collection it works on.
package dashboard

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rshade/sustaintrack/internal/footprint"
)

// Filter selects the ordering of the saved product list.
type Filter string

// Supported filters.
const (
	FilterRecent  Filter = "recent"
	FilterHighest Filter = "highest"
	FilterLowest  Filter = "lowest"
)

// ErrUnknownFilter is returned by ParseFilter for unrecognized values.
var ErrUnknownFilter = errors.New("unknown filter")

// Filters returns the supported filters in menu order.
func Filters() []Filter {
	return []Filter{FilterRecent, FilterHighest, FilterLowest}
}

// ParseFilter converts a user-supplied name into a Filter. Matching is
// case-insensitive; the empty string selects FilterRecent.
func ParseFilter(s string) (Filter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FilterRecent, nil
	}
	for _, f := range Filters() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (valid: recent, highest, lowest)", ErrUnknownFilter, s)
}

// SortProducts returns a sorted copy of products. Equal keys keep their
// stored order. An unrecognized filter returns the copy unsorted.
func SortProducts(products []footprint.Product, f Filter) []footprint.Product {
	sorted := make([]footprint.Product, len(products))
	copy(sorted, products)

	var less func(a, b footprint.Product) bool
	switch f {
	case FilterRecent:
		less = func(a, b footprint.Product) bool { return a.Timestamp.After(b.Timestamp) }
	case FilterHighest:
		less = func(a, b footprint.Product) bool { return a.Footprint.Total > b.Footprint.Total }
	case FilterLowest:
		less = func(a, b footprint.Product) bool { return a.Footprint.Total < b.Footprint.Total }
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}
