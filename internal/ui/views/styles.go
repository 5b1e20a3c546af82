package views

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("212")
	ColorMuted   = lipgloss.Color("241")

	UserMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true)

	AssistantMessageStyle = lipgloss.NewStyle()

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	StatusDefaultStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	StatusThinkingStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary)

	StatusExecutingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214"))

	StatusDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)
