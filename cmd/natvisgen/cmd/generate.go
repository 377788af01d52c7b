package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-natvisgen/pkg/generator"
	"github.com/goliatone/go-natvisgen/pkg/namespace"
	"github.com/goliatone/go-natvisgen/pkg/natvis"
	"github.com/goliatone/go-natvisgen/pkg/params"
)

type generateOptions struct {
	dryRun bool
}

// NewGenerateCommand creates the 'generate' command.
func NewGenerateCommand() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render fkYAML.natvis from params.json",
		Long: `Render the natvis template for the version found in the params file.
The output file is overwritten on success and left untouched on any error.

Flags can also be set through the environment (NATVISGEN_PARAMS,
NATVISGEN_OUTPUT, NATVISGEN_TEMPLATE_DIR, NATVISGEN_PREFIX).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	bindGenerateFlags(cmd, opts)
	return cmd
}

func bindGenerateFlags(cmd *cobra.Command, opts *generateOptions) {
	cmd.Flags().StringP("params", "p", params.DefaultPath, "Params file holding the version (JSON, YAML or TOML)")
	cmd.Flags().StringP("output", "o", natvis.DefaultOutputPath, "Output file, overwritten on success")
	cmd.Flags().String("template-dir", "", "Directory holding "+natvis.TemplateName+".j2 (embedded template when empty)")
	cmd.Flags().String("prefix", namespace.DefaultPrefix, "Project namespace prefix")
	cmd.Flags().StringToString("set", nil, "Extra template value as key=value (repeatable)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the rendered output to stdout instead of writing it")
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	v, err := newConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to read configuration: %w", err)
	}
	logger, err := newLogger(v)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	extra, err := cmd.Flags().GetStringToString("set")
	if err != nil {
		return err
	}
	templateData := make(map[string]any, len(extra))
	for key, value := range extra {
		templateData[key] = value
	}

	gen := generator.New(
		generator.WithParamsPath(v.GetString("params")),
		generator.WithOutputPath(v.GetString("output")),
		generator.WithTemplateDir(v.GetString("template-dir")),
		generator.WithPrefix(v.GetString("prefix")),
		generator.WithTemplateData(templateData),
		generator.WithLogger(logger),
	)

	ctx := cmd.Context()
	if opts.dryRun {
		result, err := gen.Preview(ctx)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(result.Output)
		return err
	}

	result, err := gen.Generate(ctx)
	if err != nil {
		logger.Debug("generation failed", zap.Error(err))
		return err
	}

	if !v.GetBool("quiet") {
		newStatus(cmd.ErrOrStderr()).Fprintf(cmd.ErrOrStderr(), "✓ Wrote %s (%s)\n", result.OutputPath, result.Namespace)
	}
	return nil
}
