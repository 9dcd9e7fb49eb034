package engine

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// ColumnMap names the CSV columns the engine interprets.
// Every other column is passed through opaquely.
type ColumnMap struct {
	Year string
	Type string
	Lat  string
	Lon  string
}

// DefaultColumns matches the Chicago crime extract header.
func DefaultColumns() ColumnMap {
	return ColumnMap{
		Year: "Year",
		Type: "Primary Type",
		Lat:  "Latitude",
		Lon:  "Longitude",
	}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Load parses the incident CSV at path into a Store using the
// default column names.
func Load(path string) (*Store, error) {
	return LoadWithColumns(path, DefaultColumns())
}

// LoadWithColumns parses the incident CSV at path into a Store.
// The header row is required; rows with an unparsable year are
// skipped (and counted), blank crime types and coordinates are
// kept as nulls rather than rejected.
func LoadWithColumns(path string, cols ColumnMap) (*Store, error) {
	start := time.Now()

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	content = bytes.TrimPrefix(content, utf8BOM)

	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset %s has no header row", path)
	}

	header := records[0]
	idxYear, err := columnIndex(header, cols.Year)
	if err != nil {
		return nil, err
	}
	idxType, err := columnIndex(header, cols.Type)
	if err != nil {
		return nil, err
	}
	idxLat, err := columnIndex(header, cols.Lat)
	if err != nil {
		return nil, err
	}
	idxLon, err := columnIndex(header, cols.Lon)
	if err != nil {
		return nil, err
	}

	rows := records[1:]
	store := &Store{
		Years:    make([]int32, 0, len(rows)),
		TypeIDs:  make([]int32, 0, len(rows)),
		Lats:     make([]float64, 0, len(rows)),
		Lons:     make([]float64, 0, len(rows)),
		HasCoord: make([]bool, 0, len(rows)),
		Columns:  header,
		Extra:    make([][]string, 0, len(rows)),
	}

	typeMap := make(map[string]int32)
	skipped := 0

	for _, rec := range rows {
		year, ok := fieldInt(rec, idxYear)
		if !ok {
			skipped++
			continue
		}

		tid := nullType
		if t := strings.TrimSpace(field(rec, idxType)); t != "" {
			id, seen := typeMap[t]
			if !seen {
				id = int32(len(store.TypeDict))
				store.TypeDict = append(store.TypeDict, t)
				typeMap[t] = id
			}
			tid = id
		}

		lat, okLat := fieldFloat(rec, idxLat)
		lon, okLon := fieldFloat(rec, idxLon)
		hasCoord := okLat && okLon
		if !hasCoord {
			lat, lon = 0, 0
		}

		store.Years = append(store.Years, int32(year))
		store.TypeIDs = append(store.TypeIDs, tid)
		store.Lats = append(store.Lats, lat)
		store.Lons = append(store.Lons, lon)
		store.HasCoord = append(store.HasCoord, hasCoord)
		store.Extra = append(store.Extra, rec)
	}

	if skipped > 0 {
		log.Printf("loader: skipped %d rows with unparsable %q", skipped, cols.Year)
	}
	log.Printf("loader: %d rows, %d columns, %d crime types in %v",
		store.NumRows(), store.NumCols(), len(store.TypeDict), time.Since(start))
	return store, nil
}

func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("dataset is missing required column %q", name)
}

func field(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return rec[i]
}

func fieldInt(rec []string, i int) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(field(rec, i)))
	if err != nil {
		return 0, false
	}
	return v, true
}

func fieldFloat(rec []string, i int) (float64, bool) {
	s := strings.TrimSpace(field(rec, i))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
