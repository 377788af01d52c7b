package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-natvisgen/internal/buildinfo"
)

const appName = "natvisgen"

// NewRootCommand creates the root command. Running it without a subcommand
// behaves like "natvisgen generate".
func NewRootCommand() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "natvisgen - Render the fkYAML natvis debugger visualization file",
		Long: `natvisgen reads the library version from params.json, derives the versioned
namespace (fkyaml::vX_Y_Z) and renders the natvis template into fkYAML.natvis.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolP("quiet", "q", false, "Disable logging and status output")
	bindGenerateFlags(cmd, opts)

	cmd.AddCommand(NewGenerateCommand())
	cmd.AddCommand(NewInitCommand())
	cmd.AddCommand(NewNamespaceCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// NewVersionCommand prints build metadata.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), PrintVersion())
			return err
		},
	}
}

// PrintVersion returns the build metadata line.
func PrintVersion() string {
	return buildinfo.String(appName)
}
