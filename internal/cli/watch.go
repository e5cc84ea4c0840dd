package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pomgen/pomgen/internal/config"
	"github.com/pomgen/pomgen/internal/descriptor"
	"github.com/pomgen/pomgen/internal/logging"
	"github.com/pomgen/pomgen/internal/output"
	"github.com/pomgen/pomgen/internal/pom"
	"github.com/pomgen/pomgen/internal/watch"
)

type watchOptions struct {
	outputPath string
	debounce   time.Duration
}

func newWatchCommand() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch <descriptor>",
		Short: "Watch a descriptor and regenerate the pom on change",
		Long: `Watch monitors the project descriptor and regenerates the pom whenever
the file changes. Saves are debounced to avoid rapid re-runs, and editor
temporary files are ignored.

Each regeneration prints a status line with the dependency count and the
size of the generated document. Press Ctrl-C to stop.`,
		Example: `  pomgen watch pom.yaml -o pom.xml

  # Slower debounce for network filesystems
  pomgen watch pom.yaml -o pom.xml --debounce 2s`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context(), cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.outputPath, "output", "o", "", "output file path (required)")
	f.DurationVar(&opts.debounce, "debounce", 500*time.Millisecond, "debounce interval for file changes")

	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, descriptorPath string, opts *watchOptions) error {
	if opts.outputPath == "" {
		return &ExitError{Code: 2, Err: fmt.Errorf("--output (-o) is required for watch mode")}
	}

	logger := logging.FromContext(ctx)
	cfg := config.FromContext(ctx)

	writer := pom.NewWriter(writerOptions(cfg)...)

	runFn := func(fnCtx context.Context) (*watch.RunResult, error) {
		b, err := descriptor.Load(fnCtx, descriptorPath)
		if err != nil {
			return nil, err
		}

		doc, err := writer.WriteString(b)
		if err != nil {
			return nil, fmt.Errorf("generating pom: %w", err)
		}

		fw := output.NewFileWriter(opts.outputPath, output.WithLogger(logger))
		if err := fw.Write([]byte(doc)); err != nil {
			return nil, fmt.Errorf("writing output: %w", err)
		}

		return &watch.RunResult{
			Dependencies: len(b.Dependencies().Items()),
			Bytes:        len(doc),
			OutputPath:   opts.outputPath,
		}, nil
	}

	watchOpts := watch.Options{
		DescriptorPath: descriptorPath,
		Debounce:       opts.debounce,
		Logger:         logger,
		Out:            cmd.ErrOrStderr(),
	}

	if err := watch.Run(ctx, watchOpts, runFn); err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	return nil
}
