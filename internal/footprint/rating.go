package footprint

import "math"

// Rating is the letter-grade classification of a footprint total.
type Rating struct {
	// Grade is the short letter grade, e.g. "A+".
	Grade string `json:"grade"`
	// Label is the display text, e.g. "A+ (Excellent)".
	Label string `json:"label"`
	// Color is a hex colour token for renderers.
	Color string `json:"color"`
}

// RatingBand maps totals strictly below UpperBound to Rating.
type RatingBand struct {
	UpperBound float64
	Rating     Rating
}

// ratingBands is ordered by ascending UpperBound; the last band is unbounded.
//
//nolint:gochecknoglobals // Read-only lookup table.
var ratingBands = []RatingBand{
	{UpperBound: 10, Rating: Rating{Grade: "A+", Label: "A+ (Excellent)", Color: "#27ae60"}},
	{UpperBound: 25, Rating: Rating{Grade: "A", Label: "A (Very Good)", Color: "#2ecc71"}},
	{UpperBound: 50, Rating: Rating{Grade: "B", Label: "B (Good)", Color: "#3498db"}},
	{UpperBound: 100, Rating: Rating{Grade: "C", Label: "C (Average)", Color: "#f39c12"}},
	{UpperBound: 200, Rating: Rating{Grade: "D", Label: "D (Below Average)", Color: "#e67e22"}},
	{UpperBound: math.Inf(1), Rating: Rating{Grade: "E", Label: "E (Poor)", Color: "#e74c3c"}},
}

// RatingBands returns a copy of the rating table in ascending order.
func RatingBands() []RatingBand {
	bands := make([]RatingBand, len(ratingBands))
	copy(bands, ratingBands)
	return bands
}

// Rate classifies a footprint total in kg CO2e.
func Rate(total float64) Rating {
	for _, band := range ratingBands {
		if total < band.UpperBound {
			return band.Rating
		}
	}
	// NaN compares false against every bound.
	return ratingBands[len(ratingBands)-1].Rating
}
