package main

import (
	"log"
	"time"

	"github.com/spf13/cobra"

	"crimedash/internal/api"
	"crimedash/internal/engine"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard views over HTTP",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	h := api.NewHandler(nil, viewOptions())
	e := api.NewServer(h, cfg.RateLimit)

	cache, path := datasetCache()

	// The API goes live immediately and answers 503 until the
	// dataset lands; the heavy lifting happens in the background.
	go func() {
		log.Println("background: preparing dataset...")
		t0 := time.Now()

		if err := engine.Fetch(manifest.URL, path, fetchTimeout()); err != nil {
			log.Fatalf("background: %v", err)
		}
		store, err := cache.GetOrLoad()
		if err != nil {
			log.Fatalf("background: %v", err)
		}

		h.SetStore(store)
		log.Printf("background: dataset ready in %v, API fully live", time.Since(t0))
	}()

	log.Printf("server ready on %s (data loading in background...)", cfg.ListenAddr)
	return e.Start(cfg.ListenAddr)
}
