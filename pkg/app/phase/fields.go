package phase

import (
	"fmt"
	"strings"
)

// RenderTextField renders a text input field with cursor and label styling.
func RenderTextField(ctx *Context, label, inputName string, focused bool) string {
	var b strings.Builder

	cursor := "  "
	if focused {
		cursor = "▸ "
	}

	b.WriteString(cursor)
	if focused {
		b.WriteString(FocusedInputStyle.Render(label + ": "))
	} else {
		b.WriteString(LabelStyle.Render(label + ": "))
	}

	if ti, ok := ctx.Inputs[inputName]; ok {
		b.WriteString(ti.View())
	}
	b.WriteString("\n\n")

	return b.String()
}

// RenderValue renders a read-only labelled value.
func RenderValue(label, value string) string {
	return fmt.Sprintf("  %s %s\n", LabelStyle.Render(label+":"), ValueStyle.Render(value))
}

// RenderChecklist renders numbered guide items.
func RenderChecklist(items []string) string {
	var b strings.Builder
	for i, item := range items {
		b.WriteString(fmt.Sprintf("%d. %s", i+1, item))
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderStatus renders the context's status message, if any.
func RenderStatus(ctx *Context) string {
	if ctx.Message == "" {
		return ""
	}
	if ctx.MessageIsErr {
		return ErrorStyle.Render("✗ " + ctx.Message)
	}
	return SuccessStyle.Render("✓ " + ctx.Message)
}

// Wrap breaks s into lines of at most width characters. Used for long URLs
// that contain no spaces for lipgloss to break on.
func Wrap(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	var lines []string
	for len(s) > width {
		lines = append(lines, s[:width])
		s = s[width:]
	}
	if s != "" {
		lines = append(lines, s)
	}
	return strings.Join(lines, "\n")
}
