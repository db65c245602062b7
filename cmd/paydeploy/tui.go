package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaspreet-dot-casa/payload-deploy/pkg/app"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/deploylink"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/tui"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/wizard"
)

// runTUI launches the full-screen Bubble Tea wizard.
func runTUI(cmd *cobra.Command, opts *globalOptions) error {
	tpl, err := opts.loadTemplate()
	if err != nil {
		return err
	}

	restore, err := opts.setupTUILogging()
	if err != nil {
		return err
	}
	state, err := app.Run(app.Options{Template: tpl})
	restore()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	// Print the outcome outside of alt-screen so it stays in the scrollback
	link := ""
	if state.Step == wizard.StepDeploy {
		link = deploylink.Build(state, tpl)
	}
	fmt.Fprint(cmd.OutOrStdout(), app.RenderSummary(state.Step.String(), state.ProjectName, link))
	return nil
}

// runPrompt runs the wizard as huh forms.
func runPrompt(cmd *cobra.Command, opts *globalOptions) error {
	tpl, err := opts.loadTemplate()
	if err != nil {
		return err
	}

	result, err := tui.Run(cmdContext(cmd), tui.Options{
		Template: tpl,
		Out:      cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), tui.SuccessStyle.Render("✓ Deploy link:"))
	fmt.Fprintln(cmd.OutOrStdout(), result.Link)
	return nil
}
