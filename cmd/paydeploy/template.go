package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaspreet-dot-casa/payload-deploy/pkg/config"
)

// defaultTemplateFile is where template init writes without a path.
const defaultTemplateFile = "paydeploy.yaml"

// newTemplateCmd creates the template subcommand
func newTemplateCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage template profiles",
		Long: `A template profile describes what gets deployed: the repository, the provider
clone URL, the env var names and the database guide. The built-in profile is
the Payload CMS blog on Vercel with MongoDB Atlas.`,
	}

	cmd.AddCommand(newTemplateInitCmd(), newTemplateShowCmd(opts))
	return cmd
}

func newTemplateInitCmd() *cobra.Command {
	var force, user bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the built-in template profile to a YAML file",
		Long: `Write the built-in template profile to a YAML file you can edit and pass with --template.

Examples:
  paydeploy template init                 # writes ./paydeploy.yaml
  paydeploy template init my-template.yaml
  paydeploy template init --user          # writes ~/.config/paydeploy/template.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultTemplateFile
			switch {
			case len(args) == 1:
				path = args[0]
			case user:
				userPath, err := config.UserTemplatePath()
				if err != nil {
					return fmt.Errorf("failed to locate config directory: %w", err)
				}
				path = userPath
			}

			if err := config.Write(path, config.Default(), force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Template written to: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	cmd.Flags().BoolVar(&user, "user", false, "Write the per-user profile picked up when --template is not given")
	return cmd
}

func newTemplateShowCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the active template profile",
		Long:  `Print the template profile in effect (built-in, or the file given with --template) as YAML.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tpl, err := opts.loadTemplate()
			if err != nil {
				return err
			}

			data, err := config.Marshal(tpl)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
