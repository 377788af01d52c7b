package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-natvisgen/pkg/namespace"
)

// NewNamespaceCommand creates the 'namespace' command, which validates a
// version and prints the derived namespace without rendering anything.
func NewNamespaceCommand() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:     "namespace <version>",
		Short:   "Print the namespace derived from a version",
		Example: "  natvisgen namespace 1.2.3   # fkyaml::v1_2_3",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := namespace.Derive(prefix, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ns.String())
			return err
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", namespace.DefaultPrefix, "Project namespace prefix")
	return cmd
}
