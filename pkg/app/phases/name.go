// Package phases provides the concrete step screens for the TUI wizard.
package phases

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jaspreet-dot-casa/payload-deploy/pkg/app/phase"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/wizard"
)

// InputProjectName is the text input holding the project name.
const InputProjectName = "project_name"

// projectNameCharLimit matches the provider's project name limit.
const projectNameCharLimit = 100

// Ensure NamePhase implements phase.Handler
var _ phase.Handler = (*NamePhase)(nil)

// NamePhase handles the template confirmation and naming step.
type NamePhase struct {
	phase.BaseHandler
}

// NewNamePhase creates a new NamePhase.
func NewNamePhase() *NamePhase {
	return &NamePhase{
		BaseHandler: phase.NewBaseHandler(wizard.StepName),
	}
}

// Init creates the name input pre-filled from the wizard state.
func (p *NamePhase) Init(ctx *phase.Context) tea.Cmd {
	name := textinput.New()
	name.Placeholder = "e.g. my-personal-blog"
	name.CharLimit = projectNameCharLimit
	name.SetValue(ctx.State.ProjectName)
	cmd := name.Focus()
	ctx.Inputs[InputProjectName] = name
	return cmd
}

// Update handles keyboard input for the name step.
func (p *NamePhase) Update(ctx *phase.Context, msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, key.NewBinding(key.WithKeys("enter"))) {
		ctx.State.SetProjectName(phase.InputValue(ctx, InputProjectName))
		if err := ctx.State.Advance(); err != nil {
			ctx.SetError("Enter a valid project name (at least 3 characters)")
			return nil
		}
		ctx.ClearMessage()
		return nil
	}

	cmd := phase.HandleTextInput(ctx, InputProjectName, msg)

	// Sanitize as the user types, like the web form does on change
	raw := phase.InputValue(ctx, InputProjectName)
	clean := wizard.SanitizeProjectName(raw)
	if clean != raw {
		phase.SetInputValue(ctx, InputProjectName, clean)
	}
	ctx.State.SetProjectName(clean)
	if ctx.MessageIsErr && ctx.State.CanAdvance() {
		ctx.ClearMessage()
	}

	return cmd
}

// View renders the name step.
func (p *NamePhase) View(ctx *phase.Context) string {
	var b strings.Builder

	b.WriteString(phase.TitleStyle.Render(wizard.StepName.String()))
	b.WriteString("\n")
	b.WriteString(phase.DimStyle.Render(wizard.StepName.Description()))
	b.WriteString("\n\n")

	template := phase.LabelStyle.Render("Template: "+ctx.Template.Name) + "\n" +
		phase.DimStyle.Render(ctx.Template.RepositoryURL)
	b.WriteString(phase.BoxStyle.Render(template))
	b.WriteString("\n\n")

	b.WriteString(phase.RenderTextField(ctx, "Project name", InputProjectName, true))
	b.WriteString(phase.DimStyle.Render("  The name becomes your Vercel subdomain: letters, digits and hyphens only."))
	b.WriteString("\n")

	return b.String()
}

// KeyBindings returns the key bindings for the name step.
func (p *NamePhase) KeyBindings() []string {
	return []string{
		"[Enter] next: database",
	}
}

// HasFocusedInput returns true: the name input always owns the keyboard.
func (p *NamePhase) HasFocusedInput() bool {
	return true
}
