package dashboard

// RecommendationGroup is a titled list of general improvement suggestions.
type RecommendationGroup struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// Recommendations returns the fixed improvement suggestions, grouped by
// lifecycle area. The lists do not depend on any product.
func Recommendations() []RecommendationGroup {
	return []RecommendationGroup{
		{
			Title: "Materials",
			Items: []string{
				"Use recycled materials when possible to reduce virgin material extraction impacts",
				"Lightweight design to reduce material usage without compromising durability",
				"Source materials locally to reduce transportation emissions",
				"Replace high-impact materials with sustainable alternatives",
			},
		},
		{
			Title: "Energy",
			Items: []string{
				"Switch to renewable energy sources for manufacturing",
				"Implement energy efficiency measures in production facilities",
				"Optimize manufacturing processes to reduce energy consumption",
				"Conduct energy audits to identify improvement opportunities",
			},
		},
		{
			Title: "Transport",
			Items: []string{
				"Optimize shipping routes to minimize distance traveled",
				"Use lower-emission transport methods when feasible (rail vs. truck, ship vs. air)",
				"Implement efficient packaging to maximize transport space utilization",
				"Consider local distribution centers to reduce final delivery distances",
			},
		},
		{
			Title: "Lifecycle",
			Items: []string{
				"Design products for longer lifespans with easier maintenance and repair",
				"Improve recyclability through design choices and material selection",
				"Consider take-back programs for end-of-life product management",
				"Reduce energy consumption during product use phase",
			},
		},
	}
}
