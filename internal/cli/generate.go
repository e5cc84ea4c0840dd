package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pomgen/pomgen/internal/config"
	"github.com/pomgen/pomgen/internal/descriptor"
	"github.com/pomgen/pomgen/internal/logging"
	"github.com/pomgen/pomgen/internal/ordering"
	"github.com/pomgen/pomgen/internal/output"
	"github.com/pomgen/pomgen/internal/pom"
)

type generateOptions struct {
	outputPath string
	dryRun     bool
}

func newGenerateCommand() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <descriptor>",
		Short: "Generate a pom.xml from a project descriptor",
		Long: `Generate reads a declarative project descriptor (pom.yaml), assembles
the build model, and serializes it as a Maven pom.xml.

The output is deterministic: the same descriptor always produces
byte-identical output. Dependencies are grouped with platform starters
first unless --order overrides the ordering.`,
		Example: `  # Generate to stdout
  pomgen generate pom.yaml

  # Generate to a file
  pomgen generate pom.yaml -o pom.xml

  # Preview without writing
  pomgen generate pom.yaml -o pom.xml --dry-run

  # Alphabetical dependency order with the XML declaration
  pomgen generate pom.yaml --order artifact-id --xml-declaration`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "output file path (default: stdout)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the pom without writing the output file")

	return cmd
}

func runGenerate(ctx context.Context, cmd *cobra.Command, descriptorPath string, opts *generateOptions) error {
	logger := logging.FromContext(ctx)
	cfg := config.FromContext(ctx)

	logger.Info("generating pom",
		slog.String("descriptor", descriptorPath),
		slog.String("output", opts.outputPath),
	)

	b, err := descriptor.Load(ctx, descriptorPath)
	if err != nil {
		return &ExitError{Code: 3, Err: err}
	}

	doc, err := pom.NewWriter(writerOptions(cfg)...).WriteString(b)
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("generating pom: %w", err)}
	}

	if opts.dryRun {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "# Dry-run mode — output preview:")
		_, _ = fmt.Fprint(cmd.OutOrStdout(), doc)

		return nil
	}

	var writer output.Writer
	if opts.outputPath != "" {
		writer = output.NewFileWriter(opts.outputPath, output.WithLogger(logger))
	} else {
		writer = output.NewStdoutWriter(cmd.OutOrStdout())
	}

	if err := writer.Write([]byte(doc)); err != nil {
		return &ExitError{Code: 6, Err: err}
	}

	logger.Info("pom generated",
		slog.Int("dependencies", len(b.Dependencies().Items())),
		slog.Int("bytes", len(doc)),
	)

	return nil
}

// writerOptions maps the resolved configuration onto pom writer options.
func writerOptions(cfg *config.Config) []pom.Option {
	opts := []pom.Option{
		pom.WithIndent(cfg.IndentString()),
		pom.WithXMLDeclaration(cfg.XMLDeclaration),
	}

	if cfg.Order == config.OrderArtifactID {
		opts = append(opts, pom.WithDependencyComparator(ordering.ByArtifactID))
	}

	return opts
}
