package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/jaspreet-dot-casa/payload-deploy/pkg/config"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/deploylink"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/desktop"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/wizard"
)

// Asker collects one answer per wizard step.
type Asker interface {
	Name(ctx context.Context, tpl config.Template, current string) (string, error)
	Database(ctx context.Context, tpl config.Template, secret string) (DatabaseChoice, error)
	Deploy(ctx context.Context) (DeployChoice, error)
}

// FormAsker asks through interactive huh forms.
type FormAsker struct{}

// Name runs the name form, prefilled with current.
func (FormAsker) Name(ctx context.Context, tpl config.Template, current string) (string, error) {
	name := current
	if err := buildNameForm(tpl, &name).RunWithContext(ctx); err != nil {
		return "", fmt.Errorf("form cancelled: %w", err)
	}
	return name, nil
}

// Database runs the database form.
func (FormAsker) Database(ctx context.Context, tpl config.Template, secret string) (DatabaseChoice, error) {
	choice := DatabaseNext
	if err := buildDatabaseForm(tpl, secret, &choice).RunWithContext(ctx); err != nil {
		return "", fmt.Errorf("form cancelled: %w", err)
	}
	return choice, nil
}

// Deploy runs the deploy form.
func (FormAsker) Deploy(ctx context.Context) (DeployChoice, error) {
	choice := DeployCopyLink
	if err := buildDeployForm(&choice).RunWithContext(ctx); err != nil {
		return "", fmt.Errorf("form cancelled: %w", err)
	}
	return choice, nil
}

// Run drives the wizard with interactive forms until the user is done.
func Run(ctx context.Context, opts Options) (*Result, error) {
	return RunWith(ctx, FormAsker{}, opts)
}

// RunWith drives the wizard with the given asker.
func RunWith(ctx context.Context, asker Asker, opts Options) (*Result, error) {
	if opts.State == nil {
		opts.State = wizard.NewState(opts.Template.DefaultProjectName)
	}
	if opts.Clipboard == nil {
		opts.Clipboard = desktop.SystemClipboard{}
	}
	if opts.Browser == nil {
		opts.Browser = desktop.SystemBrowser{}
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	s := &session{asker: asker, opts: opts, state: opts.State}
	for {
		done, err := s.step(ctx)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Fprintln(opts.Out, WarningStyle.Render("Wizard cancelled."))
			}
			return nil, err
		}
		if done {
			return &Result{State: s.state, Link: deploylink.Build(s.state, opts.Template)}, nil
		}
	}
}

// session holds one prompt run.
type session struct {
	asker Asker
	opts  Options
	state *wizard.State

	// linkShown is set once the deploy link was printed for the current visit
	linkShown bool
}

// step asks for the current step and applies the answer.
// It returns true when the user finished the wizard.
func (s *session) step(ctx context.Context) (bool, error) {
	out := s.opts.Out

	switch s.state.Step {
	case wizard.StepName:
		name, err := s.asker.Name(ctx, s.opts.Template, s.state.ProjectName)
		if err != nil {
			return false, err
		}
		s.state.SetProjectName(name)
		if err := s.state.Advance(); err != nil {
			fmt.Fprintf(out, "%s %v\n", ErrorStyle.Render("✗"), err)
		}
		return false, nil

	case wizard.StepDatabase:
		choice, err := s.asker.Database(ctx, s.opts.Template, s.state.Secret)
		if err != nil {
			return false, err
		}
		return false, s.applyDatabase(choice)

	case wizard.StepDeploy:
		if !s.linkShown {
			s.printPlan()
			s.linkShown = true
		}
		choice, err := s.asker.Deploy(ctx)
		if err != nil {
			return false, err
		}
		return s.applyDeploy(choice)
	}

	return false, fmt.Errorf("unknown step %d", int(s.state.Step))
}

// applyDatabase applies the database step answer.
func (s *session) applyDatabase(choice DatabaseChoice) error {
	switch choice {
	case DatabaseCopySecret:
		s.copy(desktop.TargetSecret, s.state.Secret)
		return nil
	case DatabaseBack:
		return s.state.Retreat()
	default:
		return s.state.Advance()
	}
}

// applyDeploy applies the deploy step answer.
func (s *session) applyDeploy(choice DeployChoice) (bool, error) {
	link := deploylink.Build(s.state, s.opts.Template)

	switch choice {
	case DeployCopyLink:
		s.copy(desktop.TargetLink, link)
	case DeployOpen:
		if err := s.opts.Browser.OpenURL(link); err != nil {
			fmt.Fprintf(s.opts.Out, "%s\n", SubtitleStyle.Render("Could not open browser: "+err.Error()))
		} else {
			fmt.Fprintf(s.opts.Out, "%s Opened the deployment page in your browser\n", SuccessStyle.Render("✓"))
		}
	case DeployRestart:
		s.state.Restart()
		s.linkShown = false
	case DeployDone:
		return true, nil
	}
	return false, nil
}

// copy writes text to the clipboard and prints the acknowledgement.
func (s *session) copy(target desktop.Target, text string) {
	err := s.opts.Clipboard.WriteAll(text)
	msg := desktop.CopiedMessage(target, err)
	if err != nil {
		fmt.Fprintln(s.opts.Out, SubtitleStyle.Render(msg))
		return
	}
	fmt.Fprintf(s.opts.Out, "%s %s\n", SuccessStyle.Render("✓"), msg)
}

// printPlan prints the deploy summary and link.
func (s *session) printPlan() {
	PrintPlan(s.opts.Out, s.state, s.opts.Template)
}

// PrintPlan writes the deployment summary for state to w.
func PrintPlan(w io.Writer, state *wizard.State, tpl config.Template) {
	spec := deploylink.NewSpec(state, tpl)

	fmt.Fprintln(w)
	fmt.Fprintln(w, TitleStyle.Render("Deployment plan ready!"))
	fmt.Fprintf(w, "  Project:    %s\n", spec.ProjectName)
	fmt.Fprintf(w, "  Repository: %s\n", spec.RepositoryName)
	fmt.Fprintf(w, "  Env vars:   %s\n", strings.Join(spec.EnvVarNames, ", "))
	fmt.Fprintln(w)
	fmt.Fprintln(w, InfoStyle.Render(spec.URL()))
	if tpl.PostDeployHint != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, SubtitleStyle.Render(tpl.PostDeployHint))
	}
	fmt.Fprintln(w)
}
