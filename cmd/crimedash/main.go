package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"crimedash/internal/config"
	"crimedash/internal/engine"
	"crimedash/internal/source"
)

var (
	cfgFile      string
	manifestFile string

	cfg      *config.Config
	manifest source.Manifest
)

var rootCmd = &cobra.Command{
	Use:   "crimedash",
	Short: "Interactive dashboard for a crime-incident CSV dataset",
	Long: `crimedash loads a crime-incident CSV (downloading it on first run),
filters it by year range and crime type, and serves four derived views:
a dataset summary, crimes per year, a geospatial sample, and the top 5
crime types. Serve them over HTTP or explore them in the terminal.`,
}

func main() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./crimedash.yaml)")
	rootCmd.PersistentFlags().StringVar(&manifestFile, "manifest", "", "dataset manifest file (default built-in Chicago extract)")
}

func loadConfig() {
	c, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg = c

	if manifestFile == "" {
		manifestFile = cfg.ManifestPath
	}
	if manifestFile != "" {
		m, err := source.LoadFile(manifestFile)
		if err != nil {
			log.Fatalf("load manifest: %v", err)
		}
		manifest = m
	} else {
		manifest = source.Default()
	}
}

func viewOptions() engine.ViewOptions {
	return engine.ViewOptions{
		GeoCap:  cfg.GeoCap,
		GeoSeed: cfg.GeoSeed,
		TopK:    cfg.TopK,
		SampleN: cfg.SampleRows,
	}
}

func fetchTimeout() time.Duration {
	return time.Duration(cfg.FetchTimeout) * time.Second
}

// datasetCache wires the manifest's column mapping into a
// process-scoped cache over the local dataset file.
func datasetCache() (*engine.Cache, string) {
	path := cfg.DatasetPath(manifest.Filename)
	cols := manifest.ColumnMap()
	cache := engine.NewCache(path, func(p string) (*engine.Store, error) {
		return engine.LoadWithColumns(p, cols)
	})
	return cache, path
}
