package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/sustaintrack/internal/dashboard"
	"github.com/rshade/sustaintrack/internal/footprint"
)

// BrowserState is the current screen of the Browser.
type BrowserState int

// Browser screens.
const (
	BrowserList BrowserState = iota
	BrowserDetail
	BrowserQuitting
)

// Key bindings handled by the Browser itself; navigation keys go to the table.
const (
	keyQuitRune = "q"
	keyEscape   = "esc"
	keyCtrlC    = "ctrl+c"
	keyEnter    = "enter"
	keySort     = "s"
)

const (
	browserDefaultHeight = 20
	browserChromeHeight  = 4
	browserMinHeight     = 3
)

// Browser is the Bubble Tea model of the interactive product browser.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View.
type Browser struct {
	state    BrowserState
	products []footprint.Product
	filter   dashboard.Filter
	table    table.Model
	selected int
	width    int
	height   int
}

// NewBrowser creates a browser over products, initially sorted by f.
func NewBrowser(products []footprint.Product, f dashboard.Filter) Browser {
	m := Browser{
		state:    BrowserList,
		filter:   f,
		selected: -1,
		width:    defaultViewWidth,
		height:   browserDefaultHeight,
	}
	m.products = dashboard.SortProducts(products, f)
	m.table = newProductTable(m.products, m.tableHeight(), true)
	return m
}

// Init implements tea.Model.
func (m Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.table.SetHeight(m.tableHeight())
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.state {
	case BrowserList:
		return m.handleListKey(keyMsg)
	case BrowserDetail:
		return m.handleDetailKey(keyMsg)
	case BrowserQuitting:
		return m, nil
	}
	return m, nil
}

func (m Browser) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyQuitRune, keyEscape, keyCtrlC:
		m.state = BrowserQuitting
		return m, tea.Quit
	case keyEnter:
		if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(m.products) {
			m.selected = cursor
			m.state = BrowserDetail
		}
		return m, nil
	case keySort:
		m.cycleFilter()
		return m, nil
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
}

func (m Browser) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyQuitRune, keyCtrlC:
		m.state = BrowserQuitting
		return m, tea.Quit
	case keyEscape:
		m.state = BrowserList
		m.table.Focus()
	}
	return m, nil
}

// cycleFilter moves to the next filter and re-sorts. The highlighted
// product stays highlighted at its new row.
func (m *Browser) cycleFilter() {
	highlighted := ""
	if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(m.products) {
		highlighted = m.products[cursor].Name
	}

	filters := dashboard.Filters()
	next := filters[0]
	for i, f := range filters {
		if f == m.filter {
			next = filters[(i+1)%len(filters)]
			break
		}
	}
	m.filter = next
	m.products = dashboard.SortProducts(m.products, next)
	m.table.SetRows(productRows(m.products))
	for i := range m.products {
		if m.products[i].Name == highlighted {
			m.table.SetCursor(i)
			break
		}
	}
}

func (m Browser) tableHeight() int {
	return max(m.height-browserChromeHeight, browserMinHeight)
}

// View implements tea.Model.
func (m Browser) View() string {
	switch m.state {
	case BrowserQuitting:
		return ""
	case BrowserDetail:
		if p, ok := m.Selected(); ok {
			return RenderResult(p, m.width) + "\n" + MutedStyle.Render("esc: back  q: quit")
		}
	case BrowserList:
	}

	if len(m.products) == 0 {
		return MutedStyle.Render("No saved products. Press q to quit.")
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("Saved products (%d)", len(m.products))))
	b.WriteString(" ")
	b.WriteString(LabelStyle.Render("sorted by " + string(m.filter)))
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render("↑/↓ j/k: move  enter: details  s: sort  q/esc: quit"))
	return b.String()
}

// State returns the current screen.
func (m Browser) State() BrowserState {
	return m.state
}

// Filter returns the active sort filter.
func (m Browser) Filter() dashboard.Filter {
	return m.filter
}

// Cursor returns the highlighted row index.
func (m Browser) Cursor() int {
	return m.table.Cursor()
}

// Selected returns the product opened with enter, if any.
func (m Browser) Selected() (footprint.Product, bool) {
	if m.selected < 0 || m.selected >= len(m.products) {
		return footprint.Product{}, false
	}
	return m.products[m.selected], true
}
