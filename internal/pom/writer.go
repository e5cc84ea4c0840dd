// Package pom serializes a build model into Maven pom.xml text.
//
// The writer walks the model in the fixed section order the pom schema
// mandates, applies the ordering rules per section, and drives the xmlutil
// sink. Sections whose body would be empty are never emitted, not even as
// empty tags. The walk is a pure function over the model: the writer never
// mutates it, so one writer may serialize many models concurrently.
package pom

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/pomgen/pomgen/internal/build"
	"github.com/pomgen/pomgen/internal/ordering"
	"github.com/pomgen/pomgen/internal/xmlutil"
)

// ModelVersion is the pom model version the writer emits. The root element
// attributes are fixed constants of this manifest format version.
const ModelVersion = "4.0.0"

const (
	xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>`

	projectAttrs = `xmlns="http://maven.apache.org/POM/4.0.0"` +
		` xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"` +
		` xsi:schemaLocation="http://maven.apache.org/POM/4.0.0` +
		` https://maven.apache.org/xsd/maven-4.0.0.xsd"`
)

// ErrUnknownScope reports a dependency scope outside the enumerated set.
// It is a configuration error and is never silently defaulted.
var ErrUnknownScope = errors.New("unknown dependency scope")

// Writer serializes build models. Construct with NewWriter; the zero value
// is not usable.
type Writer struct {
	dependencyOrder ordering.Comparator
	platform        ordering.Platform
	declaration     bool
	indent          string
}

// Option configures a Writer.
type Option func(*Writer)

// WithDependencyComparator replaces the default tiered dependency order.
// The comparator applies to the <dependencies> list only; every other
// section keeps its fixed rule.
func WithDependencyComparator(cmp ordering.Comparator) Option {
	return func(w *Writer) {
		w.dependencyOrder = cmp
	}
}

// WithPlatform changes the platform namespace the default tiered order
// groups first. It has no effect when a comparator override is set.
func WithPlatform(p ordering.Platform) Option {
	return func(w *Writer) {
		w.platform = p
	}
}

// WithXMLDeclaration prepends the `<?xml ...?>` prologue to the output.
func WithXMLDeclaration(enabled bool) Option {
	return func(w *Writer) {
		w.declaration = enabled
	}
}

// WithIndent overrides the per-level indentation string.
func WithIndent(indent string) Option {
	return func(w *Writer) {
		w.indent = indent
	}
}

// NewWriter creates a Writer.
func NewWriter(opts ...Option) *Writer {
	w := &Writer{
		platform: ordering.SpringBoot,
		indent:   xmlutil.DefaultIndent,
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.dependencyOrder == nil {
		w.dependencyOrder = ordering.Tiered(w.platform)
	}

	return w
}

// WriteString serializes b and returns the document text.
func (w *Writer) WriteString(b *build.Build) (string, error) {
	var sb strings.Builder

	if err := w.WriteTo(&sb, b); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// WriteTo serializes b to out. Sink write failures are propagated
// unmodified; on error the caller owns discarding the partial output.
func (w *Writer) WriteTo(out io.Writer, b *build.Build) error {
	sink := xmlutil.NewSink(out, xmlutil.WithIndent(w.indent))

	if w.declaration {
		sink.Line(xmlDeclaration)
	}

	sink.OpenElementAttrs("project", projectAttrs)
	sink.TextElement("modelVersion", ModelVersion)

	s := b.Settings()

	w.writeParent(sink, s.Parent)
	w.writeCoordinates(sink, s)
	w.writeText(sink, "name", s.Name)
	w.writeText(sink, "description", s.Description)
	w.writeLicenses(sink, s.Licenses)
	w.writeDevelopers(sink, s.Developers)
	w.writeScm(sink, s.Scm)
	w.writeProperties(sink, b.Properties())
	w.writeDependencyManagement(sink, b.Boms())

	if err := w.writeDependencies(sink, b.Dependencies()); err != nil {
		return err
	}

	w.writeBuildSection(sink, buildSection{
		sourceDirectory:     s.SourceDirectory,
		testSourceDirectory: s.TestSourceDirectory,
		defaultGoal:         s.DefaultGoal,
		finalName:           s.FinalName,
		resources:           b.Resources(),
		testResources:       b.TestResources(),
		plugins:             b.Plugins(),
	})

	w.writeRepositories(sink, "repositories", "repository", b.Repositories())
	w.writeRepositories(sink, "pluginRepositories", "pluginRepository", b.PluginRepositories())
	w.writeDistributionManagement(sink, b.DistributionManagement())

	if err := w.writeProfiles(sink, b.Profiles()); err != nil {
		return err
	}

	sink.CloseElement("project")

	return sink.Err()
}

// writeText emits `<name>value</name>` when value is set. All model-derived
// text routes through the escaper here; element names never do.
func (w *Writer) writeText(sink *xmlutil.Sink, name, value string) {
	if value == "" {
		return
	}

	sink.TextElement(name, xmlutil.Escape(value))
}

// writeFlag emits `<name>true|false</name>` when the tri-state flag is
// explicitly set.
func (w *Writer) writeFlag(sink *xmlutil.Sink, name string, v *bool) {
	if v == nil {
		return
	}

	sink.TextElement(name, strconv.FormatBool(*v))
}

func (w *Writer) writeParent(sink *xmlutil.Sink, p *build.Parent) {
	if p == nil {
		return
	}

	sink.OpenElement("parent")
	w.writeText(sink, "groupId", p.GroupID)
	w.writeText(sink, "artifactId", p.ArtifactID)
	w.writeText(sink, "version", p.Version)
	sink.CloseElement("parent")
}

func (w *Writer) writeCoordinates(sink *xmlutil.Sink, s *build.Settings) {
	w.writeText(sink, "groupId", s.GroupID)
	w.writeText(sink, "artifactId", s.ArtifactID)

	version := s.Version
	if version == "" {
		version = build.DefaultVersion
	}

	w.writeText(sink, "version", version)
	w.writeText(sink, "packaging", s.Packaging)
}

func (w *Writer) writeLicenses(sink *xmlutil.Sink, licenses []build.License) {
	if len(licenses) == 0 {
		return
	}

	sink.OpenElement("licenses")

	for _, l := range licenses {
		sink.OpenElement("license")
		w.writeText(sink, "name", l.Name)
		w.writeText(sink, "url", l.URL)
		w.writeText(sink, "distribution", string(l.Distribution))
		w.writeText(sink, "comments", l.Comments)
		sink.CloseElement("license")
	}

	sink.CloseElement("licenses")
}

func (w *Writer) writeDevelopers(sink *xmlutil.Sink, developers []build.Developer) {
	if len(developers) == 0 {
		return
	}

	sink.OpenElement("developers")

	for _, d := range developers {
		sink.OpenElement("developer")
		w.writeText(sink, "id", d.ID)
		w.writeText(sink, "name", d.Name)
		w.writeText(sink, "email", d.Email)
		w.writeText(sink, "url", d.URL)
		w.writeText(sink, "organization", d.Organization)
		w.writeText(sink, "organizationUrl", d.OrganizationURL)
		w.writeStrings(sink, "roles", "role", d.Roles)
		w.writeText(sink, "timezone", d.Timezone)

		if len(d.Properties) > 0 {
			sink.OpenElement("properties")

			for _, p := range d.Properties {
				sink.TextElement(p.Name, xmlutil.Escape(p.Value))
			}

			sink.CloseElement("properties")
		}

		sink.CloseElement("developer")
	}

	sink.CloseElement("developers")
}

func (w *Writer) writeScm(sink *xmlutil.Sink, scm build.Scm) {
	if scm.IsZero() {
		return
	}

	sink.OpenElement("scm")
	w.writeText(sink, "connection", scm.Connection)
	w.writeText(sink, "developerConnection", scm.DeveloperConnection)
	w.writeText(sink, "tag", scm.Tag)
	w.writeText(sink, "url", scm.URL)
	sink.CloseElement("scm")
}

func (w *Writer) writeProperties(sink *xmlutil.Sink, props *build.PropertyContainer) {
	if props.IsEmpty() {
		return
	}

	sink.OpenElement("properties")

	for _, p := range props.Items() {
		sink.TextElement(p.Name, xmlutil.Escape(p.Value))
	}

	sink.CloseElement("properties")
}

func (w *Writer) writeDependencyManagement(sink *xmlutil.Sink, boms *build.BomContainer) {
	if boms.IsEmpty() {
		return
	}

	items := boms.Items()
	slices.SortStableFunc(items, func(a, b build.BillOfMaterials) int {
		return a.Order - b.Order
	})

	sink.OpenElement("dependencyManagement")
	sink.OpenElement("dependencies")

	for _, bom := range items {
		sink.OpenElement("dependency")
		w.writeText(sink, "groupId", bom.GroupID)
		w.writeText(sink, "artifactId", bom.ArtifactID)

		if !bom.Version.IsZero() {
			w.writeText(sink, "version", bom.Version.String())
		}

		sink.TextElement("type", "pom")
		sink.TextElement("scope", "import")
		sink.CloseElement("dependency")
	}

	sink.CloseElement("dependencies")
	sink.CloseElement("dependencyManagement")
}

func (w *Writer) writeDependencies(sink *xmlutil.Sink, deps *build.DependencyContainer) error {
	if deps.IsEmpty() {
		return nil
	}

	items := deps.Items()
	slices.SortStableFunc(items, w.dependencyOrder)

	sink.OpenElement("dependencies")

	for _, d := range items {
		if err := w.writeDependency(sink, d); err != nil {
			return err
		}
	}

	sink.CloseElement("dependencies")

	return nil
}

func (w *Writer) writeDependency(sink *xmlutil.Sink, d build.Dependency) error {
	scopeText, scopeOptional, err := scopeOutput(d.Scope)
	if err != nil {
		return fmt.Errorf("dependency %s:%s: %w", d.GroupID, d.ArtifactID, err)
	}

	sink.OpenElement("dependency")
	w.writeText(sink, "groupId", d.GroupID)
	w.writeText(sink, "artifactId", d.ArtifactID)

	if !d.Version.IsZero() {
		w.writeText(sink, "version", d.Version.String())
	}

	w.writeText(sink, "scope", scopeText)
	w.writeText(sink, "classifier", d.Classifier)
	w.writeText(sink, "type", d.Type)

	// The optional flag is only ever emitted as true, either implied by the
	// scope or requested explicitly.
	if scopeOptional || (d.Optional != nil && *d.Optional) {
		sink.TextElement("optional", "true")
	}

	if len(d.Exclusions) > 0 {
		sink.OpenElement("exclusions")

		for _, e := range d.Exclusions {
			sink.OpenElement("exclusion")
			w.writeText(sink, "groupId", e.GroupID)
			w.writeText(sink, "artifactId", e.ArtifactID)
			sink.CloseElement("exclusion")
		}

		sink.CloseElement("exclusions")
	}

	sink.CloseElement("dependency")

	return nil
}

// scopeOutput maps an enumerated scope to its physical pom fields: the
// <scope> text and whether <optional>true</optional> is implied. The mapping
// is exhaustive; anything else is rejected.
func scopeOutput(s build.DependencyScope) (string, bool, error) {
	switch s {
	case "", build.ScopeCompile:
		return "", false, nil
	case build.ScopeRuntime:
		return "runtime", false, nil
	case build.ScopeProvidedRuntime:
		return "provided", false, nil
	case build.ScopeTestCompile, build.ScopeTestRuntime:
		return "test", false, nil
	case build.ScopeAnnotationProcessor, build.ScopeCompileOnly:
		return "", true, nil
	default:
		return "", false, fmt.Errorf("%w: %q", ErrUnknownScope, s)
	}
}

func (w *Writer) writeRepositories(sink *xmlutil.Sink, wrapper, element string, repos *build.RepositoryContainer) {
	if repos.IsEmpty() {
		return
	}

	// Maven central is the implicit default and never declared.
	var declared []build.Repository

	for _, r := range repos.Items() {
		if r.ID == build.MavenCentral.ID {
			continue
		}

		declared = append(declared, r)
	}

	if len(declared) == 0 {
		return
	}

	sink.OpenElement(wrapper)

	for _, r := range declared {
		sink.OpenElement(element)
		w.writeText(sink, "id", r.ID)
		w.writeText(sink, "name", r.Name)
		w.writeText(sink, "url", r.URL)

		if r.SnapshotsEnabled != nil {
			sink.OpenElement("snapshots")
			sink.TextElement("enabled", strconv.FormatBool(*r.SnapshotsEnabled))
			sink.CloseElement("snapshots")
		}

		sink.CloseElement(element)
	}

	sink.CloseElement(wrapper)
}

func (w *Writer) writeDistributionManagement(sink *xmlutil.Sink, dm *build.DistributionManagement) {
	if dm.IsEmpty() {
		return
	}

	sink.OpenElement("distributionManagement")
	w.writeText(sink, "downloadUrl", dm.DownloadURL)
	w.writeDeploymentRepository(sink, "repository", dm.Repository)
	w.writeDeploymentRepository(sink, "snapshotRepository", dm.SnapshotRepository)

	if dm.Site != nil {
		sink.OpenElement("site")
		w.writeText(sink, "id", dm.Site.ID)
		w.writeText(sink, "name", dm.Site.Name)
		w.writeText(sink, "url", dm.Site.URL)
		sink.CloseElement("site")
	}

	if dm.Relocation != nil {
		sink.OpenElement("relocation")
		w.writeText(sink, "groupId", dm.Relocation.GroupID)
		w.writeText(sink, "artifactId", dm.Relocation.ArtifactID)
		w.writeText(sink, "version", dm.Relocation.Version)
		w.writeText(sink, "message", dm.Relocation.Message)
		sink.CloseElement("relocation")
	}

	sink.CloseElement("distributionManagement")
}

func (w *Writer) writeDeploymentRepository(sink *xmlutil.Sink, element string, r *build.DeploymentRepository) {
	if r == nil {
		return
	}

	sink.OpenElement(element)
	w.writeText(sink, "id", r.ID)
	w.writeText(sink, "name", r.Name)
	w.writeText(sink, "url", r.URL)
	w.writeText(sink, "layout", r.Layout)
	w.writeFlag(sink, "uniqueVersion", r.UniqueVersion)
	sink.CloseElement(element)
}

// writeStrings emits a wrapper element containing one child element per
// value, e.g. `<roles><role>..</role></roles>`. Nothing is emitted for an
// empty list.
func (w *Writer) writeStrings(sink *xmlutil.Sink, wrapper, element string, values []string) {
	if len(values) == 0 {
		return
	}

	sink.OpenElement(wrapper)

	for _, v := range values {
		sink.TextElement(element, xmlutil.Escape(v))
	}

	sink.CloseElement(wrapper)
}

func (w *Writer) writeConfiguration(sink *xmlutil.Sink, cfg *build.Configuration) {
	if cfg.IsEmpty() {
		return
	}

	sink.OpenElement("configuration")
	w.writeConfigNodes(sink, cfg)
	sink.CloseElement("configuration")
}

func (w *Writer) writeConfigNodes(sink *xmlutil.Sink, cfg *build.Configuration) {
	for _, n := range cfg.Nodes() {
		if n.Children != nil {
			sink.OpenElement(n.Name)
			w.writeConfigNodes(sink, n.Children)
			sink.CloseElement(n.Name)

			continue
		}

		sink.TextElement(n.Name, xmlutil.Escape(n.Value))
	}
}
