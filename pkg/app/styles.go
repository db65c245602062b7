package app

import "github.com/charmbracelet/lipgloss"

var (
	// contentStyle frames the active step between header and footer
	contentStyle = lipgloss.NewStyle().
			Padding(1, 2)

	// Text styles
	BoldStyle = lipgloss.NewStyle().Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	AccentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// RenderSummary renders the line printed after the TUI exits.
func RenderSummary(step string, projectName string, link string) string {
	if link == "" {
		return DimStyle.Render("Wizard closed at step: "+step) + "\n"
	}
	return SuccessStyle.Render("✓ Deploy link for ") + BoldStyle.Render(projectName) + "\n" +
		AccentStyle.Render(link) + "\n"
}
