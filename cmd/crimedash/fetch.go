package main

import (
	"log"

	"github.com/spf13/cobra"

	"crimedash/internal/engine"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the dataset if it is not already present",
	RunE:  runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	path := cfg.DatasetPath(manifest.Filename)
	if err := engine.Fetch(manifest.URL, path, fetchTimeout()); err != nil {
		return err
	}
	log.Printf("dataset available at %s", path)
	return nil
}
