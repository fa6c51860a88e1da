package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/sustaintrack/internal/dashboard"
	"github.com/rshade/sustaintrack/internal/footprint"
)

// productDateLayout is the date column layout.
const productDateLayout = "2006-01-02"

// productColumns returns the product table columns.
func productColumns() []table.Column {
	return []table.Column{
		{Title: "Name", Width: nameColumnWidth},
		{Title: "Total (kg CO2e)", Width: totalColWidth},
		{Title: "Rating", Width: ratingColWidth},
		{Title: "Date", Width: dateColumnWidth},
	}
}

// productRows converts products into table rows in the given order.
func productRows(products []footprint.Product) []table.Row {
	rows := make([]table.Row, 0, len(products))
	for _, p := range products {
		rows = append(rows, table.Row{
			clip(p.Name, nameColumnWidth),
			dashboard.Fixed2(p.Footprint.Total),
			p.Rating().Label,
			p.Timestamp.UTC().Format(productDateLayout),
		})
	}
	return rows
}

// newProductTable builds a styled product table of the given height.
func newProductTable(products []footprint.Product, height int, focused bool) table.Model {
	t := table.New(
		table.WithColumns(productColumns()),
		table.WithRows(productRows(products)),
		table.WithFocused(focused),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	if !focused {
		s.Selected = lipgloss.NewStyle()
	}
	t.SetStyles(s)
	return t
}

// RenderProductTable renders products as a static table, sorted by f.
func RenderProductTable(products []footprint.Product, f dashboard.Filter) string {
	if len(products) == 0 {
		return MutedStyle.Render("No saved products.") + "\n"
	}
	sorted := dashboard.SortProducts(products, f)
	// Room for every row plus the two-line header.
	t := newProductTable(sorted, len(sorted)+2, false)
	return t.View() + "\n"
}
