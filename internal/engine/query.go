package engine

import (
	"math/rand"
	"sort"

	"crimedash/internal/models"
)

// Filter returns the indices of rows matching the filter state, in
// original row order. Both predicates are checked in a single pass:
// YearMin <= year <= YearMax, and the crime type when one is set.
// A type outside the dataset's domain yields an empty result, not
// an error. The store is never mutated.
func Filter(s *Store, f models.FilterState) []int32 {
	wantType := nullType
	if !f.All() {
		wantType = s.typeID(f.Type)
		if wantType == nullType {
			return []int32{}
		}
	}

	lo, hi := int32(f.YearMin), int32(f.YearMax)
	idx := make([]int32, 0, len(s.Years))
	for i, y := range s.Years {
		if y < lo || y > hi {
			continue
		}
		if wantType != nullType && s.TypeIDs[i] != wantType {
			continue
		}
		idx = append(idx, int32(i))
	}
	return idx
}

// Summarize is the cardinality readout of a filtered view.
func Summarize(s *Store, idx []int32) models.Summary {
	return models.Summary{Rows: len(idx), Cols: s.NumCols()}
}

// YearlyCounts groups the filtered view by year and counts rows per
// group, ascending by year. Empty input yields an empty slice so a
// zero-point chart renders instead of failing.
func YearlyCounts(s *Store, idx []int32) []models.YearCount {
	counts := make(map[int32]int)
	for _, i := range idx {
		counts[s.Years[i]]++
	}

	out := make([]models.YearCount, 0, len(counts))
	for y, c := range counts {
		out = append(out, models.YearCount{Year: int(y), Count: c})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Year < out[b].Year })
	return out
}

// GeoSample returns the coordinates of filtered rows that have both
// latitude and longitude, capped at cap points. Under the cap the
// rows come back in original order; over it, exactly cap rows are
// drawn uniformly without replacement using the fixed seed, then
// restored to original order. Same input, same sample, every run.
func GeoSample(s *Store, idx []int32, cap int, seed int64) []models.GeoPoint {
	eligible := make([]int32, 0, len(idx))
	for _, i := range idx {
		if s.HasCoord[i] {
			eligible = append(eligible, i)
		}
	}

	if cap > 0 && len(eligible) > cap {
		rng := rand.New(rand.NewSource(seed))
		// Partial Fisher-Yates: after k swaps the first k entries
		// are a uniform k-subset.
		for k := 0; k < cap; k++ {
			j := k + rng.Intn(len(eligible)-k)
			eligible[k], eligible[j] = eligible[j], eligible[k]
		}
		eligible = eligible[:cap]
		sort.Slice(eligible, func(a, b int) bool { return eligible[a] < eligible[b] })
	}

	out := make([]models.GeoPoint, len(eligible))
	for k, i := range eligible {
		out[k] = models.GeoPoint{Lat: s.Lats[i], Lon: s.Lons[i]}
	}
	return out
}

// TopTypes returns the k most frequent crime types in the filtered
// view, descending by count. Rows with a blank type are excluded.
// Ties keep first-appearance order from the dataset: the candidate
// list is built in dictionary order and the sort is stable.
func TopTypes(s *Store, idx []int32, k int) []models.TypeCount {
	counts := make([]int, len(s.TypeDict))
	for _, i := range idx {
		if tid := s.TypeIDs[i]; tid != nullType {
			counts[tid]++
		}
	}

	out := make([]models.TypeCount, 0, len(s.TypeDict))
	for tid, c := range counts {
		if c > 0 {
			out = append(out, models.TypeCount{Type: s.TypeDict[tid], Count: c})
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Count > out[b].Count })
	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out
}

// SampleRows returns the first n filtered rows with every column as
// text, for the overview table.
func SampleRows(s *Store, idx []int32, n int) []models.SampleRow {
	if n > len(idx) {
		n = len(idx)
	}
	out := make([]models.SampleRow, 0, n)
	for _, i := range idx[:n] {
		row := make(models.SampleRow, len(s.Columns))
		rec := s.Extra[i]
		for c, name := range s.Columns {
			if c < len(rec) {
				row[name] = rec[c]
			} else {
				row[name] = ""
			}
		}
		out = append(out, row)
	}
	return out
}
