package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/sustaintrack/internal/dashboard"
	"github.com/rshade/sustaintrack/internal/footprint"
	"github.com/rshade/sustaintrack/internal/greenops"
)

// RenderResult renders the result view of a computed product: total,
// rating, category breakdown with shares, material breakdown and
// real-world equivalencies.
func RenderResult(p footprint.Product, width int) string {
	if width <= 0 {
		width = defaultViewWidth
	}
	barWidth := width - labelColumnWidth - valueColumnWidth - 10

	var b strings.Builder
	rating := p.Rating()

	b.WriteString(TitleStyle.Render(p.Name))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s %s\n",
		LabelStyle.Render("Total Carbon Footprint:"),
		ValueStyle.Render(dashboard.Fixed2(p.Footprint.Total)),
		LabelStyle.Render("kg CO2e"))
	fmt.Fprintf(&b, "%s %s\n\n",
		LabelStyle.Render("Rating:"),
		RatingStyle(rating.Color).Render(rating.Label))

	b.WriteString(SectionStyle.Render("Breakdown"))
	b.WriteString("\n")
	for _, s := range dashboard.Share(p.Footprint) {
		fmt.Fprintf(&b, "%-*s %*s %5.1f%% %s\n",
			labelColumnWidth, s.Label,
			valueColumnWidth, dashboard.Fixed2(s.Value),
			s.Percent,
			bar(s.Percent, 100, barWidth, lipgloss.Color(s.Color)))
	}

	if len(p.Details.MaterialBreakdown) > 0 {
		b.WriteString("\n")
		b.WriteString(SectionStyle.Render("Materials"))
		b.WriteString("\n")
		for _, m := range p.Details.MaterialBreakdown {
			fmt.Fprintf(&b, "%-*s %8s kg %*s kg CO2e\n",
				labelColumnWidth, string(m.Type),
				dashboard.Fixed2(m.WeightKg),
				valueColumnWidth, dashboard.Fixed2(m.EmissionKg))
		}
		fmt.Fprintf(&b, "%-*s %8s kg\n", labelColumnWidth, "Total weight",
			dashboard.Fixed2(p.Details.TotalWeightKg))
	}

	if eq, err := greenops.ForFootprint(p.Footprint.Total); err == nil && !eq.IsEmpty {
		b.WriteString("\n")
		b.WriteString(MutedStyle.Render(eq.DisplayText))
		b.WriteString("\n")
	}

	return b.String()
}
