package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("34"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	badgeStyle    = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("28"))
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func statusBadge(status string) string {
	color := "243"
	switch status {
	case "pending":
		color = "178"
	case "in-transit":
		color = "33"
	case "delivered":
		color = "34"
	case "cancelled":
		color = "196"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(status)
}
