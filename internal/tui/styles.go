package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#73F59F")).
			MarginBottom(1)

	labelStyle        = lipgloss.NewStyle().Width(24).Foreground(lipgloss.Color("#A0A0A0"))
	focusedLabelStyle = labelStyle.Foreground(lipgloss.Color("#FFFFFF")).Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#555555"))
	focusedButtonStyle = buttonStyle.Background(lipgloss.Color("#7D56F4")).Bold(true)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5C542")).Italic(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).MarginTop(1)

	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(1, 3)
	alertFailureStyle = alertStyle.BorderForeground(lipgloss.Color("#FF5F5F"))
)
