package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Muted     = lipgloss.Color("#475569") // Dark slate, disabled controls
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Hero = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Problem = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	// ProblemRight is the problem line once it has been answered.
	ProblemRight = lipgloss.NewStyle().
			Bold(true).
			Foreground(Success)

	Score = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Warning = lipgloss.NewStyle().
		Foreground(Error)
)

// Answer buttons
var (
	ButtonEnabled = lipgloss.NewStyle().
			Foreground(Text).
			Background(BgCard).
			Width(5).
			Align(lipgloss.Right)

	ButtonFocused = lipgloss.NewStyle().
			Foreground(Text).
			Background(Primary).
			Bold(true).
			Width(5).
			Align(lipgloss.Right)

	ButtonDisabled = lipgloss.NewStyle().
			Foreground(Muted).
			Strikethrough(true).
			Width(5).
			Align(lipgloss.Right)

	ButtonRight = lipgloss.NewStyle().
			Foreground(BgCard).
			Background(Success).
			Bold(true).
			Width(5).
			Align(lipgloss.Right)
)

// Language aside
var LanguageBadge = lipgloss.NewStyle().
	Foreground(BgCard).
	Background(Accent).
	Bold(true).
	Padding(0, 1)
