package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Theme Colors
	cPurple    = lipgloss.Color("99")
	cGray      = lipgloss.Color("240")
	cLightGray = lipgloss.Color("250")
	cWhite     = lipgloss.Color("255")
	cHighlight = lipgloss.Color("57")
	cScrim     = lipgloss.Color("235")

	styleModal = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cPurple).
			Padding(0, 1)

	stylePrompt = lipgloss.NewStyle().Foreground(cPurple).Bold(true)

	styleRow         = lipgloss.NewStyle().Foreground(cWhite)
	styleRowSubtitle = lipgloss.NewStyle().Foreground(cGray)

	styleSelectedRow = lipgloss.NewStyle().
				Background(cHighlight).
				Foreground(cWhite).
				Bold(true)

	styleEmptyHint = lipgloss.NewStyle().Foreground(cGray).Italic(true)

	styleFooter = lipgloss.NewStyle().Foreground(cLightGray)

	styleCountBadge = lipgloss.NewStyle().Foreground(cGray)
)
