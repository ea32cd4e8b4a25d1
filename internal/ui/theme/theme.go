package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: clinic teal with a warm yellow accent
var (
	Primary   = lipgloss.Color("#337D80") // Teal
	Secondary = lipgloss.Color("#FBD44B") // Sunflower
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#10B981") // Emerald
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)
)

// ScoreBadge frames the "N/25" score on the result screen.
var ScoreBadge = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Secondary).
	Padding(0, 3).
	Align(lipgloss.Center)

// Navigation buttons
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Padding(0, 2)
)
