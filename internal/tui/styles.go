// Package tui renders footprint results and dashboards for the terminal and
// provides the interactive product browser.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette.
const (
	ColorHeader    = lipgloss.Color("39")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("252")
	ColorMuted     = lipgloss.Color("240")
	ColorHighlight = lipgloss.Color("226")
	ColorBar       = lipgloss.Color("#3498db")
	ColorTrend     = lipgloss.Color("#2ecc71")
)

// Layout.
const (
	defaultViewWidth = 80
	minBarWidth      = 10
	labelColumnWidth = 20
	valueColumnWidth = 12
	nameColumnWidth  = 24
	ratingColWidth   = 18
	dateColumnWidth  = 12
	totalColWidth    = 14
	sectionRuleWidth = 50
	barRune          = "█"
)

// Shared styles.
//
//nolint:gochecknoglobals // Style values are immutable once built.
var (
	TitleStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)

	SectionStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true).Underline(true)

	LabelStyle = lipgloss.NewStyle().Foreground(ColorLabel)

	ValueStyle = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)

	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorHeader).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(ColorMuted)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).
				Bold(true)
)

// RatingStyle colours text with a rating's colour token.
func RatingStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

// bar renders a horizontal bar of value relative to maxValue, at most width
// cells wide. Non-positive values and maxima render empty.
func bar(value, maxValue float64, width int, color lipgloss.Color) string {
	if width < minBarWidth {
		width = minBarWidth
	}
	if value <= 0 || maxValue <= 0 {
		return ""
	}
	n := int(value / maxValue * float64(width))
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat(barRune, n))
}

// clip shortens s to at most maxLen runes, marking the cut with "...".
func clip(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
