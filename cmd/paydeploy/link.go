package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaspreet-dot-casa/payload-deploy/pkg/deploylink"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/desktop"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/tui"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/wizard"
)

// linkOptions holds the link subcommand flags.
type linkOptions struct {
	name     string
	copyLink bool
	openLink bool
	verbose  bool

	// clipboard and browser are swapped out in tests
	clipboard desktop.Clipboard
	browser   desktop.Browser
}

// newLinkCmd creates the link subcommand
func newLinkCmd(opts *globalOptions) *cobra.Command {
	lo := &linkOptions{
		clipboard: desktop.SystemClipboard{},
		browser:   desktop.SystemBrowser{},
	}

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Print the Vercel deploy link without the wizard",
		Long: `Build the one-click deploy link for a project name and print it.

Examples:
  paydeploy link --name my-blog
  paydeploy link --name "My Blog" --copy
  paydeploy link --name my-blog --open`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLink(cmd, opts, lo)
		},
	}

	cmd.Flags().StringVarP(&lo.name, "name", "n", "", "Project name (defaults to the template's default name)")
	cmd.Flags().BoolVarP(&lo.copyLink, "copy", "c", false, "Copy the link to the clipboard")
	cmd.Flags().BoolVarP(&lo.openLink, "open", "o", false, "Open the link in the browser")
	cmd.Flags().BoolVarP(&lo.verbose, "verbose", "v", false, "Also print the plan and a generated PAYLOAD_SECRET")

	return cmd
}

func runLink(cmd *cobra.Command, opts *globalOptions, lo *linkOptions) error {
	tpl, err := opts.loadTemplate()
	if err != nil {
		return err
	}

	name := lo.name
	if name == "" {
		name = tpl.DefaultProjectName
	}

	state := wizard.NewState(name)
	if err := state.ValidateProjectName(); err != nil {
		return fmt.Errorf("invalid --name %q: %w", name, err)
	}

	link := deploylink.Build(state, tpl)
	out := cmd.OutOrStdout()

	if lo.verbose {
		tui.PrintPlan(out, state, tpl)
		fmt.Fprintf(out, "PAYLOAD_SECRET suggestion: %s\n\n", state.Secret)
	} else {
		fmt.Fprintln(out, link)
	}

	if lo.copyLink {
		err := lo.clipboard.WriteAll(link)
		fmt.Fprintln(cmd.ErrOrStderr(), desktop.CopiedMessage(desktop.TargetLink, err))
	}
	if lo.openLink {
		if err := lo.browser.OpenURL(link); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Could not open browser: %v\n", err)
		}
	}

	return nil
}
