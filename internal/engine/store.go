package engine

import "sort"

// nullType marks a row whose Primary Type column was blank.
const nullType = int32(-1)

// Store holds the incident table in Struct-of-Arrays format.
// It is built once by the loader and never mutated afterwards;
// every query produces derived copies only.
type Store struct {
	// Data Columns (Flat Arrays), one entry per row
	Years    []int32
	TypeIDs  []int32 // index into TypeDict, nullType when blank
	Lats     []float64
	Lons     []float64
	HasCoord []bool

	// Dictionary (ID -> crime type), in first-appearance order
	TypeDict []string

	// Passthrough columns the engine does not interpret.
	// Columns is the full header (all CSV columns, original order);
	// Extra[i] holds row i's values for every column, as text.
	Columns []string
	Extra   [][]string
}

// NumRows returns the row count of the loaded table.
func (s *Store) NumRows() int { return len(s.Years) }

// NumCols returns the column count of the loaded table.
func (s *Store) NumCols() int { return len(s.Columns) }

// MinYear returns the smallest year present, or 0 on an empty store.
func (s *Store) MinYear() int {
	if len(s.Years) == 0 {
		return 0
	}
	min := s.Years[0]
	for _, y := range s.Years[1:] {
		if y < min {
			min = y
		}
	}
	return int(min)
}

// MaxYear returns the largest year present, or 0 on an empty store.
func (s *Store) MaxYear() int {
	if len(s.Years) == 0 {
		return 0
	}
	max := s.Years[0]
	for _, y := range s.Years[1:] {
		if y > max {
			max = y
		}
	}
	return int(max)
}

// TypeDomain returns the distinct non-null crime types, sorted
// alphabetically for display. The dictionary itself stays in
// first-appearance order; callers that care about tie-breaks use it.
func (s *Store) TypeDomain() []string {
	domain := make([]string, len(s.TypeDict))
	copy(domain, s.TypeDict)
	sort.Strings(domain)
	return domain
}

// typeID returns the dictionary ID for a crime type, or nullType
// when the value is not part of the domain.
func (s *Store) typeID(t string) int32 {
	for id, v := range s.TypeDict {
		if v == t {
			return int32(id)
		}
	}
	return nullType
}
