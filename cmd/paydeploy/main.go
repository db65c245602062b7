// Package main provides the paydeploy CLI: a setup wizard that prepares a
// one-click Vercel deployment of the Payload CMS blog template.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jaspreet-dot-casa/payload-deploy/pkg/config"
)

// version is set via -ldflags during build
var version = "dev"

// debugLogFile receives log output while a full-screen UI owns the terminal.
const debugLogFile = "paydeploy-debug.log"

func main() {
	rootCmd := newRootCmd()

	// Cobra handles error printing
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// globalOptions holds the persistent flags.
type globalOptions struct {
	templatePath string
	debug        bool
}

// loadTemplate returns the template profile selected by --template, the
// per-user profile, or the built-in one, in that order.
func (o *globalOptions) loadTemplate() (config.Template, error) {
	tpl, path, err := config.LoadResolved(o.templatePath)
	if err != nil {
		return config.Template{}, fmt.Errorf("failed to load template: %w", err)
	}
	if path != "" {
		log.Printf("using template profile %s", path)
	}
	return tpl, nil
}

// setupTUILogging sends log output to a file under --debug and discards it
// otherwise, since stdout belongs to the UI.
func (o *globalOptions) setupTUILogging() (func(), error) {
	if !o.debug {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}

	f, err := tea.LogToFile(debugLogFile, "paydeploy")
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return func() {
		f.Close()
		log.SetOutput(os.Stderr)
	}, nil
}

// newRootCmd creates the root command for paydeploy
func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "paydeploy",
		Short: "Payload CMS deploy wizard",
		Long: `paydeploy walks you through deploying the Payload CMS blog template to Vercel.

It supports:
  - Naming the project and preparing a MongoDB Atlas database
  - Generating a PAYLOAD_SECRET value
  - Building the Vercel one-click deploy link
  - A full-screen TUI, line prompts, or a local web page

Running paydeploy without a subcommand starts the TUI.`,
		Version: version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.templatePath, "template", "t", "", "Template profile YAML (defaults to ~/.config/paydeploy/template.yaml, then the built-in Payload blog)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Write debug logs to "+debugLogFile)

	rootCmd.AddCommand(
		newTUICmd(opts),
		newPromptCmd(opts),
		newLinkCmd(opts),
		newServeCmd(opts),
		newTemplateCmd(opts),
	)

	return rootCmd
}
