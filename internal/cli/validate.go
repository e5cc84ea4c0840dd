package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pomgen/pomgen/internal/config"
	"github.com/pomgen/pomgen/internal/descriptor"
	"github.com/pomgen/pomgen/internal/logging"
	"github.com/pomgen/pomgen/internal/pom"
)

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <descriptor>",
		Short: "Validate a project descriptor without writing output",
		Long: `Validate parses the descriptor, assembles the build model, and runs a
full serialization pass with the output discarded. Errors a generation
would hit (unknown fields, missing coordinates, invalid scopes) are
reported; version strings that are not semver are only warned about.

Returns exit code 3 on validation failure.`,
		Example: `  pomgen validate pom.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), cmd, args[0])
		},
	}

	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, descriptorPath string) error {
	logger := logging.FromContext(ctx)
	cfg := config.FromContext(ctx)

	logger.Debug("validating descriptor", slog.String("descriptor", descriptorPath))

	b, err := descriptor.Load(ctx, descriptorPath)
	if err != nil {
		return &ExitError{Code: 3, Err: err}
	}

	// A dry serialization catches the errors only the writer detects.
	if err := pom.NewWriter(writerOptions(cfg)...).WriteTo(io.Discard, b); err != nil {
		return &ExitError{Code: 3, Err: fmt.Errorf("validating descriptor: %w", err)}
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is valid (%d dependencies, %d plugins, %d profiles)\n",
		descriptorPath,
		len(b.Dependencies().Items()),
		len(b.Plugins().Items()),
		len(b.Profiles().Items()),
	)

	return nil
}
