package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jaspreet-dot-casa/payload-deploy/pkg/wizard"
)

const (
	headerHeight = 3
)

var (
	// Header styles
	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	activeStepStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("236")).
			Padding(0, 2)

	completedStepStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("40")).
				Padding(0, 2)

	pendingStepStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244")).
				Padding(0, 2)

	stepSeparator = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Render(" > ")

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Faint(true)
)

// renderHeader renders the application header with title and step bar.
func renderHeader(state *wizard.State, width int) string {
	title := titleStyle.Render("paydeploy - Payload CMS on Vercel")
	stepBar := RenderStepBar(state)

	current := int(state.Step)
	progress := progressStyle.Render(fmt.Sprintf("step %d/%d", current, wizard.TotalSteps()))

	titleWidth := lipgloss.Width(title)
	stepBarWidth := lipgloss.Width(stepBar)
	progressWidth := lipgloss.Width(progress)
	spacing := width - titleWidth - stepBarWidth - progressWidth - 4 // padding

	if spacing < 1 {
		spacing = 1
	}

	headerLine := lipgloss.JoinHorizontal(
		lipgloss.Center,
		title,
		strings.Repeat(" ", 2),
		stepBar,
		strings.Repeat(" ", spacing),
		progress,
	)

	return headerStyle.Width(width).Render(headerLine)
}

// RenderStepBar renders the numbered steps, marking completed and active ones.
func RenderStepBar(state *wizard.State) string {
	steps := wizard.Steps()
	parts := make([]string, 0, len(steps))
	for _, step := range steps {
		label := fmt.Sprintf("%d. %s", int(step), step)
		switch {
		case step == state.Step:
			parts = append(parts, activeStepStyle.Render(label))
		case state.IsCompleted(step):
			parts = append(parts, completedStepStyle.Render("✓ "+label))
		default:
			parts = append(parts, pendingStepStyle.Render(label))
		}
	}
	return strings.Join(parts, stepSeparator)
}
