// Package pomgen provides a public Go API for generating Maven pom.xml
// documents from declarative project descriptors.
//
// This package exposes the pomgen generation pipeline as a library, allowing
// programmatic use without the CLI.
//
// Basic usage:
//
//	result, err := pomgen.Generate(ctx, "path/to/pom.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(string(result.XML))
//
// With options:
//
//	result, err := pomgen.Generate(ctx, "path/to/pom.yaml",
//	    pomgen.WithXMLDeclaration(),
//	    pomgen.WithArtifactIDOrder(),
//	)
package pomgen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pomgen/pomgen/internal/build"
	"github.com/pomgen/pomgen/internal/descriptor"
	"github.com/pomgen/pomgen/internal/logging"
	"github.com/pomgen/pomgen/internal/ordering"
	"github.com/pomgen/pomgen/internal/pom"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Option configures the pom generation pipeline.
// Use the With* functions to create Options.
type Option func(*options)

// options holds the internal configuration for the generation pipeline.
type options struct {
	indent          string
	xmlDeclaration  bool
	artifactIDOrder bool

	platformGroupID     string
	platformRootStarter string

	logger *slog.Logger
}

// WithIndent sets the per-level indentation string (default: four spaces).
func WithIndent(indent string) Option { return func(o *options) { o.indent = indent } }

// WithXMLDeclaration prepends the `<?xml ...?>` prologue to the output.
func WithXMLDeclaration() Option { return func(o *options) { o.xmlDeclaration = true } }

// WithArtifactIDOrder sorts dependencies alphabetically by artifact id
// instead of the default platform-tiered order.
func WithArtifactIDOrder() Option { return func(o *options) { o.artifactIDOrder = true } }

// WithPlatform changes the platform namespace whose starters are grouped
// first by the default order (default: org.springframework.boot).
func WithPlatform(groupID, rootArtifactID string) Option {
	return func(o *options) {
		o.platformGroupID = groupID
		o.platformRootStarter = rootArtifactID
	}
}

// WithLogger sets a logger for descriptor warnings, such as version strings
// that are not semver. Warnings are discarded by default.
func WithLogger(logger *slog.Logger) Option { return func(o *options) { o.logger = logger } }

// Result holds the output of a successful generation.
type Result struct {
	// XML is the generated pom document.
	XML []byte

	// GroupID and ArtifactID identify the generated project.
	GroupID    string
	ArtifactID string

	// DependencyCount is the number of dependencies in the pom.
	DependencyCount int
}

// Generate reads the descriptor at path and generates the pom document.
func Generate(ctx context.Context, path string, opts ...Option) (*Result, error) {
	if path == "" {
		return nil, errors.New("descriptor path must not be empty")
	}

	data, err := os.ReadFile(path) //nolint:gosec // user-supplied descriptor path
	if err != nil {
		return nil, fmt.Errorf("reading descriptor %s: %w", path, err)
	}

	result, err := GenerateBytes(ctx, data, opts...)
	if err != nil {
		return nil, fmt.Errorf("descriptor %s: %w", path, err)
	}

	return result, nil
}

// GenerateBytes generates the pom document from an in-memory descriptor.
func GenerateBytes(ctx context.Context, data []byte, opts ...Option) (*Result, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.logger == nil {
		o.logger = discardLogger()
	}

	b, err := descriptor.Parse(logging.NewContext(ctx, o.logger), data)
	if err != nil {
		return nil, err
	}

	doc, err := pom.NewWriter(o.writerOptions()...).WriteString(b)
	if err != nil {
		return nil, err
	}

	return newResult(b, doc), nil
}

// GenerateBuild generates the pom document from a programmatically
// assembled build model.
func GenerateBuild(b *build.Build, opts ...Option) (*Result, error) {
	if b == nil {
		return nil, errors.New("build must not be nil")
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	doc, err := pom.NewWriter(o.writerOptions()...).WriteString(b)
	if err != nil {
		return nil, err
	}

	return newResult(b, doc), nil
}

func newResult(b *build.Build, doc string) *Result {
	return &Result{
		XML:             []byte(doc),
		GroupID:         b.Settings().GroupID,
		ArtifactID:      b.Settings().ArtifactID,
		DependencyCount: len(b.Dependencies().Items()),
	}
}

// writerOptions maps the public options onto pom writer options.
func (o *options) writerOptions() []pom.Option {
	var opts []pom.Option

	if o.indent != "" {
		opts = append(opts, pom.WithIndent(o.indent))
	}

	if o.xmlDeclaration {
		opts = append(opts, pom.WithXMLDeclaration(true))
	}

	if o.platformGroupID != "" {
		opts = append(opts, pom.WithPlatform(ordering.Platform{
			GroupID:        o.platformGroupID,
			RootArtifactID: o.platformRootStarter,
		}))
	}

	if o.artifactIDOrder {
		opts = append(opts, pom.WithDependencyComparator(ordering.ByArtifactID))
	}

	return opts
}
