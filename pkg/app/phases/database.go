package phases

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jaspreet-dot-casa/payload-deploy/pkg/app/phase"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/config"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/desktop"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/wizard"
)

// Ensure DatabasePhase implements phase.Handler
var _ phase.Handler = (*DatabasePhase)(nil)

// DatabasePhase walks the user through preparing DATABASE_URL and shows the
// generated PAYLOAD_SECRET. Nothing is verified: the database lives
// entirely on the user's side.
type DatabasePhase struct {
	phase.BaseHandler
}

// NewDatabasePhase creates a new DatabasePhase.
func NewDatabasePhase() *DatabasePhase {
	return &DatabasePhase{
		BaseHandler: phase.NewBaseHandler(wizard.StepDatabase),
	}
}

// Init has no inputs to prepare.
func (p *DatabasePhase) Init(ctx *phase.Context) tea.Cmd {
	return nil
}

// Update handles keyboard input for the database step.
func (p *DatabasePhase) Update(ctx *phase.Context, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("c", "y"))):
		return phase.Copy(ctx.Clipboard, desktop.TargetSecret, ctx.State.Secret)

	case key.Matches(msg, key.NewBinding(key.WithKeys("enter", "n"))):
		if err := ctx.State.Advance(); err != nil {
			ctx.SetError(err.Error())
			return nil
		}
		ctx.ClearMessage()

	case key.Matches(msg, key.NewBinding(key.WithKeys("esc", "b", "backspace"))):
		if err := ctx.State.Retreat(); err != nil {
			ctx.SetError(err.Error())
			return nil
		}
		ctx.ClearMessage()
	}
	return nil
}

// View renders the database step.
func (p *DatabasePhase) View(ctx *phase.Context) string {
	var b strings.Builder

	b.WriteString(phase.TitleStyle.Render(wizard.StepDatabase.String()))
	b.WriteString("\n")
	b.WriteString(phase.DimStyle.Render(wizard.StepDatabase.Description()))
	b.WriteString("\n\n")

	guide := phase.FocusedInputStyle.Render("Database setup guide") + "\n\n" +
		phase.RenderChecklist(ctx.Template.DatabaseGuide)
	if ctx.Template.ConnectionStringExample != "" {
		guide += "\n\n" + phase.DimStyle.Render("It looks like: ") + phase.CodeStyle.Render(ctx.Template.ConnectionStringExample)
	}
	b.WriteString(phase.GuideBoxStyle.Render(guide))
	b.WriteString("\n\n")

	b.WriteString(phase.SuccessStyle.Render("Generated environment variable"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", phase.LabelStyle.Render(config.EnvPayloadSecret), phase.CodeStyle.Render(ctx.State.Secret)))
	b.WriteString("\n")
	b.WriteString(phase.DimStyle.Render("  Copy it now; Vercel will ask for it during deployment."))
	b.WriteString("\n")

	return b.String()
}

// KeyBindings returns the key bindings for the database step.
func (p *DatabasePhase) KeyBindings() []string {
	return []string{
		"[c] copy secret",
		"[Enter] I have my connection string",
		"[Esc] back",
	}
}
