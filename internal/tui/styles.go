package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("#58a6ff")
	colorBar     = lipgloss.Color("#3fb950")
	colorTopBar  = lipgloss.Color("#ffa657")
	colorMuted   = lipgloss.Color("#8b949e")
	colorPrimary = lipgloss.Color("#c9d1d9")
	colorWarn    = lipgloss.Color("#f85149")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			MarginTop(1)

	metricStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	barStyle = lipgloss.NewStyle().
			Foreground(colorBar)

	topBarStyle = lipgloss.NewStyle().
			Foreground(colorTopBar)

	scatterStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	emptyStyle = lipgloss.NewStyle().
			Foreground(colorWarn).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	filterStyle = lipgloss.NewStyle().
			Foreground(colorAccent)
)
