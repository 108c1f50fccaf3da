package ui

import "github.com/charmbracelet/lipgloss"

// Styles shared by all screens.
var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	styleHelp  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	styleLabel        = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	styleLabelFocused = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)

	styleButton        = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleButtonFocused = lipgloss.NewStyle().Bold(true).Padding(0, 1).
				Foreground(lipgloss.Color("232")).Background(lipgloss.Color("220"))

	styleTableHeader  = lipgloss.NewStyle().Bold(true).Underline(true)
	styleSelectedRow  = lipgloss.NewStyle().Reverse(true)
	styleSelectedCell = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Reverse(true)
)
