package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/sustaintrack/internal/dashboard"
)

// RenderDashboard renders the category totals, the per-product comparison
// and the monthly trend as text bar charts.
func RenderDashboard(s dashboard.Summary, width int) string {
	if s.Count == 0 {
		return MutedStyle.Render("No saved products yet. Run `sustaintrack calculate --save` to add one.") + "\n"
	}
	if width <= 0 {
		width = defaultViewWidth
	}
	barWidth := width - labelColumnWidth - valueColumnWidth - 4

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n",
		TitleStyle.Render("SustainTrack Dashboard"),
		LabelStyle.Render(fmt.Sprintf("(%d products, %s kg CO2e)", s.Count, dashboard.Fixed2(s.Totals.Total))))

	b.WriteString(SectionStyle.Render("Emissions by Category"))
	b.WriteString("\n")
	for _, c := range s.Categories {
		fmt.Fprintf(&b, "%-*s %*s %5.1f%% %s\n",
			labelColumnWidth, c.Label,
			valueColumnWidth, dashboard.Fixed2(c.Value),
			c.Percent,
			bar(c.Percent, 100, barWidth-7, lipgloss.Color(c.Color)))
	}

	b.WriteString("\n")
	b.WriteString(SectionStyle.Render("Product Comparison"))
	b.WriteString("\n")
	var maxTotal float64
	for _, p := range s.Comparison {
		maxTotal = max(maxTotal, p.Total)
	}
	for _, p := range s.Comparison {
		fmt.Fprintf(&b, "%-*s %*s %s\n",
			labelColumnWidth, clip(p.Name, labelColumnWidth),
			valueColumnWidth, dashboard.Fixed2(p.Total),
			bar(p.Total, maxTotal, barWidth, ColorBar))
	}

	b.WriteString("\n")
	b.WriteString(SectionStyle.Render("Monthly Average"))
	b.WriteString("\n")
	var maxAvg float64
	for _, m := range s.Trend {
		maxAvg = max(maxAvg, m.Average)
	}
	for _, m := range s.Trend {
		fmt.Fprintf(&b, "%-*s %*s %s\n",
			labelColumnWidth, fmt.Sprintf("%s (%d)", m.Label(), m.Count),
			valueColumnWidth, dashboard.Fixed2(m.Average),
			bar(m.Average, maxAvg, barWidth, ColorTrend))
	}

	return b.String()
}

// RenderRecommendations renders the improvement suggestion groups.
func RenderRecommendations(groups []dashboard.RecommendationGroup) string {
	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(SectionStyle.Render(g.Title))
		b.WriteString("\n")
		for _, item := range g.Items {
			fmt.Fprintf(&b, "  • %s\n", item)
		}
	}
	return b.String()
}
