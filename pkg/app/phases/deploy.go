package phases

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jaspreet-dot-casa/payload-deploy/pkg/app/phase"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/deploylink"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/desktop"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/wizard"
)

// Ensure DeployPhase implements phase.Handler
var _ phase.Handler = (*DeployPhase)(nil)

// DeployPhase shows the finished deploy link. It is terminal: only restart
// leaves it.
type DeployPhase struct {
	phase.BaseHandler
}

// NewDeployPhase creates a new DeployPhase.
func NewDeployPhase() *DeployPhase {
	return &DeployPhase{
		BaseHandler: phase.NewBaseHandler(wizard.StepDeploy),
	}
}

// Init has no inputs to prepare.
func (p *DeployPhase) Init(ctx *phase.Context) tea.Cmd {
	return nil
}

// Update handles keyboard input for the deploy step.
func (p *DeployPhase) Update(ctx *phase.Context, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("c", "y"))):
		return phase.Copy(ctx.Clipboard, desktop.TargetLink, p.link(ctx))

	case key.Matches(msg, key.NewBinding(key.WithKeys("o", "enter"))):
		return phase.Open(ctx.Browser, p.link(ctx))

	case key.Matches(msg, key.NewBinding(key.WithKeys("r"))):
		ctx.State.Restart()
		ctx.ClearMessage()
	}
	return nil
}

// link is computed at render time and never cached.
func (p *DeployPhase) link(ctx *phase.Context) string {
	return deploylink.Build(ctx.State, ctx.Template)
}

// View renders the deploy step.
func (p *DeployPhase) View(ctx *phase.Context) string {
	var b strings.Builder

	b.WriteString(phase.TitleStyle.Render("Deployment plan ready!"))
	b.WriteString("\n")
	b.WriteString(phase.DimStyle.Render("Opening the link takes you to the Vercel deployment page."))
	b.WriteString("\n\n")

	b.WriteString(phase.WarningStyle.Render("Note: "))
	b.WriteString("Vercel will ask for " + strings.Join(ctx.Template.EnvVars, " and ") +
		"; use the values you prepared in the previous step.")
	b.WriteString("\n\n")

	b.WriteString(phase.RenderValue("Project", ctx.State.ProjectName))
	b.WriteString(phase.RenderValue("Repository", deploylink.RepositoryName(ctx.State.ProjectName)))
	b.WriteString("\n")

	width := ctx.Width - 6
	if width < 20 {
		width = 80
	}
	b.WriteString(phase.DimStyle.Render("DEPLOY LINK PREVIEW"))
	b.WriteString("\n")
	b.WriteString(phase.BoxStyle.Render(phase.Wrap(p.link(ctx), width)))
	b.WriteString("\n\n")

	if ctx.Template.PostDeployHint != "" {
		b.WriteString(phase.DimStyle.Render(ctx.Template.PostDeployHint))
		b.WriteString("\n")
	}

	return b.String()
}

// KeyBindings returns the key bindings for the deploy step.
func (p *DeployPhase) KeyBindings() []string {
	return []string{
		"[o] open in browser",
		"[c] copy link",
		"[r] adjust configuration",
	}
}
