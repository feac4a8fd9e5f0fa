package ui

import "github.com/charmbracelet/lipgloss"

// Palette. Status colours match the classic green/red inventory listing.
const (
	colorForeground   = "#F8F8F2"
	colorComment      = "#6272A4"
	colorCyan         = "#8BE9FD"
	colorPink         = "#FF79C6"
	colorYellow       = "#F1FA8C"
	colorRed          = "#FF5555"
	colorConnectedBG  = "#C8E6C9"
	colorConnectedFG  = "#003300"
	colorDisconnBG    = "#FFCDD2"
	colorDisconnFG    = "#550000"
	colorSelectedBG   = "#44475A"
)

// styles holds every lipgloss style used by the UI.
type styles struct {
	app          lipgloss.Style
	title        lipgloss.Style
	header       lipgloss.Style
	row          lipgloss.Style
	rowSelected  lipgloss.Style
	connected    lipgloss.Style
	disconnected lipgloss.Style
	label        lipgloss.Style
	help         lipgloss.Style
	message      lipgloss.Style
	errMessage   lipgloss.Style
	statusBar    lipgloss.Style
}

func newStyles() styles {
	return styles{
		app: lipgloss.NewStyle().
			Padding(1, 2).
			Foreground(lipgloss.Color(colorForeground)),
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorPink)).
			Bold(true),
		header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorCyan)).
			Bold(true),
		row: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorForeground)),
		rowSelected: lipgloss.NewStyle().
			Background(lipgloss.Color(colorSelectedBG)).
			Bold(true),
		connected: lipgloss.NewStyle().
			Background(lipgloss.Color(colorConnectedBG)).
			Foreground(lipgloss.Color(colorConnectedFG)),
		disconnected: lipgloss.NewStyle().
			Background(lipgloss.Color(colorDisconnBG)).
			Foreground(lipgloss.Color(colorDisconnFG)),
		label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorYellow)),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorComment)),
		message: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorCyan)),
		errMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorRed)).
			Bold(true),
		statusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorComment)),
	}
}
