package main

import "github.com/spf13/cobra"

// newTUICmd creates the tui subcommand
func newTUICmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the full-screen wizard",
		Long:  `Launch the full-screen TUI: name the project, prepare the database, then copy or open the deploy link.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}
}

// newPromptCmd creates the prompt subcommand
func newPromptCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Run the wizard as line prompts",
		Long:  `Run the same three steps as interactive form prompts, without taking over the whole terminal.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPrompt(cmd, opts)
		},
	}
}
