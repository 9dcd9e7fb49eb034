package source

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"crimedash/internal/engine"
)

// Manifest describes where a dataset comes from and how its columns
// map onto the fields the engine interprets.
type Manifest struct {
	Name     string  `yaml:"name"`
	URL      string  `yaml:"url"`
	Filename string  `yaml:"filename"`
	Columns  Columns `yaml:"columns"`
}

type Columns struct {
	Year string `yaml:"year"`
	Type string `yaml:"type"`
	Lat  string `yaml:"latitude"`
	Lon  string `yaml:"longitude"`
}

// Default is the Chicago crime extract the dashboard was built for.
func Default() Manifest {
	return Manifest{
		Name:     "chicago-crime",
		URL:      "https://drive.google.com/uc?id=1YV39W4t48fKWGfxO1GoMqjXznb98agvy",
		Filename: "chicago_crime_dashboard.csv",
	}
}

// LoadFile reads a manifest from a YAML file. Unset column names
// fall back to the engine defaults.
func LoadFile(path string) (Manifest, error) {
	var m Manifest
	b, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("read manifest: %w", err)
	}
	if err := yaml.Unmarshal(b, &m); err != nil {
		return m, fmt.Errorf("parse manifest: %w", err)
	}
	if m.URL == "" {
		return m, fmt.Errorf("manifest %s: url is required", path)
	}
	if m.Filename == "" {
		return m, fmt.Errorf("manifest %s: filename is required", path)
	}
	return m, nil
}

// ColumnMap resolves the manifest's column overrides against the
// engine defaults.
func (m Manifest) ColumnMap() engine.ColumnMap {
	cols := engine.DefaultColumns()
	if m.Columns.Year != "" {
		cols.Year = m.Columns.Year
	}
	if m.Columns.Type != "" {
		cols.Type = m.Columns.Type
	}
	if m.Columns.Lat != "" {
		cols.Lat = m.Columns.Lat
	}
	if m.Columns.Lon != "" {
		cols.Lon = m.Columns.Lon
	}
	return cols
}
