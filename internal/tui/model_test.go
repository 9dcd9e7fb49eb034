package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"crimedash/internal/engine"
)

func testStore() *engine.Store {
	return &engine.Store{
		Years:    []int32{2018, 2019, 2019, 2020},
		TypeIDs:  []int32{0, 0, 1, 0},
		Lats:     []float64{41.8, 41.81, 41.82, 41.83},
		Lons:     []float64{-87.6, -87.61, -87.62, -87.63},
		HasCoord: []bool{true, true, true, true},
		TypeDict: []string{"THEFT", "BATTERY"},
		Columns:  []string{"ID", "Year", "Primary Type", "Latitude", "Longitude"},
		Extra: [][]string{
			{"1", "2018", "THEFT", "41.8", "-87.6"},
			{"2", "2019", "THEFT", "41.81", "-87.61"},
			{"3", "2019", "BATTERY", "41.82", "-87.62"},
			{"4", "2020", "THEFT", "41.83", "-87.63"},
		},
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewStartsUnrestricted(t *testing.T) {
	m := New(testStore(), engine.ViewOptions{})

	if m.filter.YearMin != 2018 || m.filter.YearMax != 2020 {
		t.Errorf("expected full year range, got %+v", m.filter)
	}
	if !m.filter.All() {
		t.Errorf("expected no type restriction, got %q", m.filter.Type)
	}
	if m.view == nil || m.view.Summary.Rows != 4 {
		t.Fatalf("initial view not rendered: %+v", m.view)
	}
}

func TestYearKeyRecomputes(t *testing.T) {
	m := New(testStore(), engine.ViewOptions{})

	updated, _ := m.Update(keyMsg("l"))
	m2 := updated.(Model)

	if m2.filter.YearMin != 2019 {
		t.Errorf("expected year-min 2019, got %d", m2.filter.YearMin)
	}
	if m2.view.Summary.Rows != 3 {
		t.Errorf("view not recomputed: %d rows", m2.view.Summary.Rows)
	}
}

func TestYearKeysClampToBounds(t *testing.T) {
	m := New(testStore(), engine.ViewOptions{})

	updated, _ := m.Update(keyMsg("h"))
	m2 := updated.(Model)
	if m2.filter.YearMin != 2018 {
		t.Errorf("year-min must not go below the dataset, got %d", m2.filter.YearMin)
	}

	updated, _ = m2.Update(keyMsg("L"))
	m3 := updated.(Model)
	if m3.filter.YearMax != 2020 {
		t.Errorf("year-max must not exceed the dataset, got %d", m3.filter.YearMax)
	}
}

func TestResetKey(t *testing.T) {
	m := New(testStore(), engine.ViewOptions{})
	updated, _ := m.Update(keyMsg("l"))
	updated, _ = updated.(Model).Update(keyMsg("r"))
	m2 := updated.(Model)

	if m2.filter.YearMin != 2018 || m2.filter.YearMax != 2020 || !m2.filter.All() {
		t.Errorf("reset did not restore defaults: %+v", m2.filter)
	}
}

func TestQuitKey(t *testing.T) {
	m := New(testStore(), engine.ViewOptions{})
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestViewRendersSections(t *testing.T) {
	m := New(testStore(), engine.ViewOptions{})
	out := m.View()

	for _, want := range []string{"Dataset Overview", "Crimes per Year", "Spatial Distribution", "Top 5 Crime Types"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing section %q", want)
		}
	}
}

func TestViewHidesTopTypesUnderTypeFilter(t *testing.T) {
	m := New(testStore(), engine.ViewOptions{})
	m.filter.Type = "THEFT"
	m.recompute()

	if strings.Contains(m.View(), "Top 5 Crime Types") {
		t.Error("top types section must hide when a type is selected")
	}
}
