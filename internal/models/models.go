package models

// FilterState is the full set of user-selected constraints.
// Type == "" means no crime-type restriction ("All").
type FilterState struct {
	YearMin int    `json:"year_min"`
	YearMax int    `json:"year_max"`
	Type    string `json:"type,omitempty"`
}

// All reports whether no crime-type restriction is active.
func (f FilterState) All() bool { return f.Type == "" }

type Summary struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// SampleRow is one row of the overview table, all columns as text.
type SampleRow map[string]string

// DashboardView is everything one filter state renders to.
// TopTypes is present only when no crime-type restriction is active.
type DashboardView struct {
	Filter     FilterState `json:"filter"`
	Summary    Summary     `json:"summary"`
	SampleRows []SampleRow `json:"sample_rows"`
	Yearly     []YearCount `json:"yearly"`
	Geo        []GeoPoint  `json:"geo"`
	TopTypes   []TypeCount `json:"top_types,omitempty"`
}

// Meta describes the loaded dataset: filter bounds and the crime-type domain.
type Meta struct {
	Rows    int      `json:"rows"`
	Cols    int      `json:"cols"`
	MinYear int      `json:"min_year"`
	MaxYear int      `json:"max_year"`
	Types   []string `json:"types"`
}
