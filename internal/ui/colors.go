package ui

import "github.com/charmbracelet/lipgloss"

const (
	Primary   = lipgloss.Color("#fff")
	Secondary = lipgloss.Color("#888")
	Faded     = lipgloss.Color("#555")

	Blue   = lipgloss.Color("#4db7ff")
	Green  = lipgloss.Color("#00a352")
	Red    = lipgloss.Color("#c42912")
	Yellow = lipgloss.Color("#c4b810")
	Orange = lipgloss.Color("#c27510")
)

// status colors
const (
	DoneColor      = Green
	OverdueColor   = Red
	DueTodayColor  = Orange
	ScheduledColor = Blue
	WeightColor    = Yellow
)
