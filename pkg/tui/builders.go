package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/jaspreet-dot-casa/payload-deploy/pkg/config"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/wizard"
)

// buildNameForm creates the form for the template & name step.
func buildNameForm(tpl config.Template, name *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(tpl.Name).
				Description(tpl.DemoDescription),
			huh.NewInput().
				Title("Project Name").
				Description(fmt.Sprintf("At least %d characters. Anything but letters, digits and hyphens becomes \"-\".", wizard.MinProjectNameLength)).
				Placeholder(tpl.DefaultProjectName).
				CharLimit(100).
				Value(name).
				Validate(validateProjectName),
		).Title(stepTitle(wizard.StepName)),
	).WithTheme(Theme())
}

// buildDatabaseForm creates the form for the database step.
func buildDatabaseForm(tpl config.Template, secret string, choice *DatabaseChoice) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Prepare your database").
				Description(databaseNote(tpl, secret)),
			huh.NewSelect[DatabaseChoice]().
				Title("What next?").
				Options(
					huh.NewOption("Copy the secret to the clipboard", DatabaseCopySecret),
					huh.NewOption("Continue to deploy", DatabaseNext),
					huh.NewOption("Back: change the project name", DatabaseBack),
				).
				Value(choice),
		).Title(stepTitle(wizard.StepDatabase)),
	).WithTheme(Theme())
}

// buildDeployForm creates the form for the deploy step.
func buildDeployForm(choice *DeployChoice) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[DeployChoice]().
				Title("Deployment plan ready!").
				Description("Open the link to finish on the provider.").
				Options(
					huh.NewOption("Copy the link to the clipboard", DeployCopyLink),
					huh.NewOption("Open the link in the browser", DeployOpen),
					huh.NewOption("Start over", DeployRestart),
					huh.NewOption("Done", DeployDone),
				).
				Value(choice),
		).Title(stepTitle(wizard.StepDeploy)),
	).WithTheme(Theme())
}

// stepTitle renders "Step n/3: Name".
func stepTitle(step wizard.Step) string {
	return fmt.Sprintf("Step %d/%d: %s", int(step), wizard.TotalSteps(), step)
}

// databaseNote renders the database guide and the generated secret.
func databaseNote(tpl config.Template, secret string) string {
	var b strings.Builder
	for i, item := range tpl.DatabaseGuide {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	if tpl.ConnectionStringExample != "" {
		fmt.Fprintf(&b, "\n%s:\n  %s\n", config.EnvDatabaseURL, tpl.ConnectionStringExample)
	}
	fmt.Fprintf(&b, "\n%s:\n  %s", config.EnvPayloadSecret, secret)
	return b.String()
}
