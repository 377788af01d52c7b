package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-natvisgen/pkg/namespace"
	"github.com/goliatone/go-natvisgen/pkg/params"
	"github.com/goliatone/go-natvisgen/pkg/semver"
)

var initSurveyIO = DefaultSurveyIO

// NewInitCommand creates the 'init' command, which writes a params file.
func NewInitCommand() *cobra.Command {
	var (
		paramsPath string
		version    string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a params file",
		Long: `Create the params file read by 'generate'. The version is taken from
--version or asked for interactively. The format follows the file extension
(.json, .yaml, .yml, .toml).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if _, err := os.Stat(paramsPath); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", paramsPath)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}

			if version == "" {
				prompt := &survey.Input{
					Message: "Which fkYAML version should the natvis file target?",
					Help:    "A MAJOR.MINOR.PATCH version such as 0.4.2.",
				}
				if err := survey.AskOne(prompt, &version, survey.WithValidator(validateVersionAnswer), initSurveyIO.WithStdio()); err != nil {
					return fmt.Errorf("failed to read version: %w", err)
				}
			}

			ns, err := namespace.Derive(namespace.DefaultPrefix, version)
			if err != nil {
				return err
			}
			if err := params.Write(paramsPath, params.Params{Version: ns.Version}); err != nil {
				return err
			}

			v, err := newConfig(cmd)
			if err != nil {
				return fmt.Errorf("failed to read configuration: %w", err)
			}
			if !v.GetBool("quiet") {
				newStatus(cmd.ErrOrStderr()).Fprintf(cmd.ErrOrStderr(), "✓ Wrote %s (version %s, namespace %s)\n", paramsPath, ns.Version, ns)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&paramsPath, "params", "p", params.DefaultPath, "Params file to create")
	cmd.Flags().StringVar(&version, "version", "", "Library version (prompted for when empty)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing params file")
	return cmd
}

func validateVersionAnswer(answer interface{}) error {
	value, ok := answer.(string)
	if !ok {
		return fmt.Errorf("unexpected answer type %T", answer)
	}
	_, err := semver.Check(value)
	return err
}
