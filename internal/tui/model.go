package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"crimedash/internal/engine"
	"crimedash/internal/models"
)

// View states
type viewState int

const (
	stateDashboard viewState = iota
	statePickType
)

const allTypesLabel = "All"

// typeItem implements list.Item for the crime-type picker.
type typeItem struct {
	name string
}

func (t typeItem) Title() string       { return t.name }
func (t typeItem) Description() string { return "" }
func (t typeItem) FilterValue() string { return t.name }

// Model is the interactive dashboard. It owns the filter state;
// every change triggers one synchronous engine.Render and the whole
// view model is swapped. The store itself is never touched.
type Model struct {
	store *engine.Store
	opts  engine.ViewOptions
	meta  models.Meta

	filter models.FilterState
	view   *models.DashboardView

	state    viewState
	typeList list.Model

	width  int
	height int
}

// New builds the dashboard over a loaded store with the full year
// range and no type restriction selected.
func New(store *engine.Store, opts engine.ViewOptions) Model {
	meta := engine.Metadata(store)

	items := make([]list.Item, 0, len(meta.Types)+1)
	items = append(items, typeItem{name: allTypesLabel})
	for _, t := range meta.Types {
		items = append(items, typeItem{name: t})
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(colorAccent).
		BorderForeground(colorAccent)

	l := list.New(items, delegate, 60, 30)
	l.Title = "Crime Type"
	l.SetShowStatusBar(false)

	m := Model{
		store:    store,
		opts:     opts,
		meta:     meta,
		filter:   models.FilterState{YearMin: meta.MinYear, YearMax: meta.MaxYear},
		typeList: l,
		width:    100,
		height:   40,
	}
	m.recompute()
	return m
}

// recompute re-runs the whole pipeline for the current filter state.
func (m *Model) recompute() {
	m.view = engine.Render(m.store, m.filter, m.opts)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.typeList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		if m.state == statePickType {
			return m.updatePicker(msg)
		}
		return m.updateDashboard(msg)
	}
	return m, nil
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "h", "left":
		if m.filter.YearMin > m.meta.MinYear {
			m.filter.YearMin--
			m.recompute()
		}
	case "l", "right":
		if m.filter.YearMin < m.filter.YearMax {
			m.filter.YearMin++
			m.recompute()
		}
	case "H", "shift+left":
		if m.filter.YearMax > m.filter.YearMin {
			m.filter.YearMax--
			m.recompute()
		}
	case "L", "shift+right":
		if m.filter.YearMax < m.meta.MaxYear {
			m.filter.YearMax++
			m.recompute()
		}

	case "t":
		m.state = statePickType
	case "r":
		m.filter = models.FilterState{YearMin: m.meta.MinYear, YearMax: m.meta.MaxYear}
		m.recompute()
	}
	return m, nil
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateDashboard
		return m, nil
	case "enter":
		if item, ok := m.typeList.SelectedItem().(typeItem); ok {
			if item.name == allTypesLabel {
				m.filter.Type = ""
			} else {
				m.filter.Type = item.name
			}
			m.recompute()
		}
		m.state = stateDashboard
		return m, nil
	}

	var cmd tea.Cmd
	m.typeList, cmd = m.typeList.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.state == statePickType {
		return m.typeList.View()
	}

	v := m.view
	var b strings.Builder

	b.WriteString(titleStyle.Render("Chicago Crime Dashboard"))
	b.WriteByte('\n')

	typeLabel := m.filter.Type
	if typeLabel == "" {
		typeLabel = allTypesLabel
	}
	b.WriteString(filterStyle.Render(
		fmt.Sprintf("years %d-%d · type %s", m.filter.YearMin, m.filter.YearMax, typeLabel)))
	b.WriteByte('\n')

	b.WriteString(headerStyle.Render("Dataset Overview"))
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("%s %s   %s %s\n",
		labelStyle.Render("rows"), metricStyle.Render(formatInt(v.Summary.Rows)),
		labelStyle.Render("columns"), metricStyle.Render(formatInt(v.Summary.Cols)),
	))
	b.WriteString(m.sampleTable(v.SampleRows))
	b.WriteByte('\n')

	b.WriteString(headerStyle.Render("Crimes per Year"))
	b.WriteByte('\n')
	b.WriteString(trendChart(v.Yearly, m.width))
	b.WriteByte('\n')

	b.WriteString(headerStyle.Render("Spatial Distribution"))
	b.WriteByte('\n')
	b.WriteString(scatterChart(v.Geo, m.width-2, m.scatterHeight()))
	b.WriteByte('\n')

	if m.filter.All() {
		b.WriteString(headerStyle.Render("Top 5 Crime Types"))
		b.WriteByte('\n')
		b.WriteString(topTypesChart(v.TopTypes, m.width))
		b.WriteByte('\n')
	}

	b.WriteString(helpStyle.Render(
		"h/l year-min · H/L year-max · t type · r reset · q quit"))
	return b.String()
}

func (m Model) scatterHeight() int {
	h := m.height / 3
	if h < 8 {
		h = 8
	}
	if h > 20 {
		h = 20
	}
	return h
}

// sampleTable renders the first filtered rows across the leading
// columns that fit the terminal width.
func (m Model) sampleTable(rows []models.SampleRow) string {
	if len(rows) == 0 {
		return emptyStyle.Render("no rows match the current filters")
	}

	cols := m.store.Columns
	if len(cols) > 6 {
		cols = cols[:6]
	}

	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = len(c)
		for _, row := range rows {
			if l := len(row[c]); l > widths[i] {
				widths[i] = l
			}
		}
		if widths[i] > 18 {
			widths[i] = 18
		}
	}

	var b strings.Builder
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = fmt.Sprintf("%-*s", widths[i], clip(c, widths[i]))
	}
	b.WriteString(labelStyle.Render(strings.Join(header, "  ")))
	b.WriteByte('\n')

	for _, row := range rows {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = fmt.Sprintf("%-*s", widths[i], clip(row[c], widths[i]))
		}
		b.WriteString(lipgloss.NewStyle().Foreground(colorPrimary).Render(strings.Join(cells, "  ")))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
