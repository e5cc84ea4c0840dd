package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pomgen/pomgen/internal/config"
	"github.com/pomgen/pomgen/internal/descriptor"
	"github.com/pomgen/pomgen/internal/diff"
	"github.com/pomgen/pomgen/internal/logging"
	"github.com/pomgen/pomgen/internal/pom"
)

type diffOptions struct {
	// Existing pom.xml to diff against.
	pomPath string

	// Disable ANSI color output.
	noColor bool

	// Return exit code 4 when differences are found.
	exitCode bool
}

func newDiffCommand() *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <descriptor>",
		Short: "Compare the generated pom against an existing pom.xml",
		Long: `Diff regenerates the pom from the descriptor and shows a unified diff
against an existing pom.xml. Use it to review what a regeneration would
change before overwriting a checked-in pom.

Exit codes:
  0  No differences (or differences without --exit-code)
  1  Error
  3  Descriptor error
  4  Differences found (with --exit-code)`,
		Example: `  # Compare against ./pom.xml
  pomgen diff pom.yaml

  # Compare against a specific file, fail when they differ
  pomgen diff pom.yaml --pom build/pom.xml --exit-code`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd.Context(), cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.pomPath, "pom", "pom.xml", "existing pom.xml to compare against")
	f.BoolVar(&opts.noColor, "no-color", false, "disable ANSI color output")
	f.BoolVar(&opts.exitCode, "exit-code", false, "exit with code 4 when differences are found")

	return cmd
}

func runDiff(ctx context.Context, cmd *cobra.Command, descriptorPath string, opts *diffOptions) error {
	logger := logging.FromContext(ctx)
	cfg := config.FromContext(ctx)

	logger.Debug("diffing pom",
		slog.String("descriptor", descriptorPath),
		slog.String("pom", opts.pomPath),
	)

	b, err := descriptor.Load(ctx, descriptorPath)
	if err != nil {
		return &ExitError{Code: 3, Err: err}
	}

	generated, err := pom.NewWriter(writerOptions(cfg)...).WriteString(b)
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("generating pom: %w", err)}
	}

	existing, err := os.ReadFile(opts.pomPath) //nolint:gosec // user-supplied pom path
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("reading pom %s: %w", opts.pomPath, err)}
	}

	diffOpts := diff.DefaultOptions()
	diffOpts.OldLabel = opts.pomPath
	diffOpts.NewLabel = "generated"

	result, err := diff.Compute(string(existing), generated, diffOpts)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	diff.Write(cmd.OutOrStdout(), result, !opts.noColor)

	if result.HasDifferences && opts.exitCode {
		return &ExitError{Code: 4, Err: fmt.Errorf("%s differs from generated output", opts.pomPath)}
	}

	return nil
}
