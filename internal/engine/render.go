package engine

import (
	"crimedash/internal/models"
)

// Defaults for the derived views, matching the dashboard's fixed
// sampling contract.
const (
	DefaultGeoCap  = 50000
	DefaultGeoSeed = 42
	DefaultTopK    = 5
	DefaultSampleN = 5
)

// ViewOptions tunes the derived views. The zero value means the
// defaults above.
type ViewOptions struct {
	GeoCap  int
	GeoSeed int64
	TopK    int
	SampleN int
}

func (o ViewOptions) withDefaults() ViewOptions {
	if o.GeoCap == 0 {
		o.GeoCap = DefaultGeoCap
	}
	if o.GeoSeed == 0 {
		o.GeoSeed = DefaultGeoSeed
	}
	if o.TopK == 0 {
		o.TopK = DefaultTopK
	}
	if o.SampleN == 0 {
		o.SampleN = DefaultSampleN
	}
	return o
}

// Render recomputes every derived view for one filter state. It is
// a pure function of (store, filter, options): the outer loop calls
// it on every filter change and swaps the whole view model.
// TopTypes is computed only when no crime-type restriction is
// active, matching the dashboard's conditional bar chart.
func Render(s *Store, f models.FilterState, opts ViewOptions) *models.DashboardView {
	opts = opts.withDefaults()
	idx := Filter(s, f)

	view := &models.DashboardView{
		Filter:     f,
		Summary:    Summarize(s, idx),
		SampleRows: SampleRows(s, idx, opts.SampleN),
		Yearly:     YearlyCounts(s, idx),
		Geo:        GeoSample(s, idx, opts.GeoCap, opts.GeoSeed),
	}
	if f.All() {
		view.TopTypes = TopTypes(s, idx, opts.TopK)
	}
	return view
}

// Metadata describes the loaded dataset for filter widgets: year
// bounds and the crime-type domain.
func Metadata(s *Store) models.Meta {
	return models.Meta{
		Rows:    s.NumRows(),
		Cols:    s.NumCols(),
		MinYear: s.MinYear(),
		MaxYear: s.MaxYear(),
		Types:   s.TypeDomain(),
	}
}
