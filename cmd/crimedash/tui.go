package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"crimedash/internal/engine"
	"crimedash/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Explore the dataset in the terminal",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cache, path := datasetCache()

	if err := engine.Fetch(manifest.URL, path, fetchTimeout()); err != nil {
		return err
	}
	log.Println("loading dataset, please wait...")
	store, err := cache.GetOrLoad()
	if err != nil {
		return err
	}

	m := tui.New(store, viewOptions())
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
