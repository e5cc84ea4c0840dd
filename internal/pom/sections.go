package pom

import (
	"github.com/pomgen/pomgen/internal/build"
	"github.com/pomgen/pomgen/internal/xmlutil"
)

// buildSection is the flattened view of a <build> sub-tree. The top level and
// every profile feed the same emission path through it, so the omission and
// ordering rules cannot drift between the two.
type buildSection struct {
	sourceDirectory     string
	testSourceDirectory string
	directory           string
	defaultGoal         string
	finalName           string
	filters             []string

	resources        *build.ResourceContainer
	testResources    *build.ResourceContainer
	pluginManagement *build.PluginContainer
	plugins          *build.PluginContainer
}

func (s buildSection) isEmpty() bool {
	return s.sourceDirectory == "" && s.testSourceDirectory == "" &&
		s.directory == "" && s.defaultGoal == "" && s.finalName == "" &&
		len(s.filters) == 0 &&
		s.resources.IsEmpty() && s.testResources.IsEmpty() &&
		s.pluginManagement.IsEmpty() && s.plugins.IsEmpty()
}

func (w *Writer) writeBuildSection(sink *xmlutil.Sink, sec buildSection) {
	if sec.isEmpty() {
		return
	}

	sink.OpenElement("build")
	w.writeText(sink, "sourceDirectory", sec.sourceDirectory)
	w.writeText(sink, "testSourceDirectory", sec.testSourceDirectory)
	w.writeText(sink, "directory", sec.directory)
	w.writeText(sink, "defaultGoal", sec.defaultGoal)
	w.writeText(sink, "finalName", sec.finalName)
	w.writeStrings(sink, "filters", "filter", sec.filters)
	w.writeResources(sink, "resources", "resource", sec.resources)
	w.writeResources(sink, "testResources", "testResource", sec.testResources)

	if !sec.pluginManagement.IsEmpty() {
		sink.OpenElement("pluginManagement")
		w.writePlugins(sink, sec.pluginManagement)
		sink.CloseElement("pluginManagement")
	}

	if !sec.plugins.IsEmpty() {
		w.writePlugins(sink, sec.plugins)
	}

	sink.CloseElement("build")
}

func (w *Writer) writeResources(sink *xmlutil.Sink, wrapper, element string, resources *build.ResourceContainer) {
	if resources.IsEmpty() {
		return
	}

	sink.OpenElement(wrapper)

	for _, r := range resources.Items() {
		sink.OpenElement(element)
		w.writeText(sink, "directory", r.Directory)
		w.writeText(sink, "targetPath", r.TargetPath)
		w.writeFlag(sink, "filtering", r.Filtering)
		w.writeStrings(sink, "includes", "include", r.Includes)
		w.writeStrings(sink, "excludes", "exclude", r.Excludes)
		sink.CloseElement(element)
	}

	sink.CloseElement(wrapper)
}

func (w *Writer) writePlugins(sink *xmlutil.Sink, plugins *build.PluginContainer) {
	sink.OpenElement("plugins")

	for _, p := range plugins.Items() {
		w.writePlugin(sink, p)
	}

	sink.CloseElement("plugins")
}

func (w *Writer) writePlugin(sink *xmlutil.Sink, p build.Plugin) {
	sink.OpenElement("plugin")
	w.writeText(sink, "groupId", p.GroupID)
	w.writeText(sink, "artifactId", p.ArtifactID)
	w.writeText(sink, "version", p.Version)
	w.writeFlag(sink, "extensions", p.Extensions)
	w.writeConfiguration(sink, p.Configuration)

	if len(p.Executions) > 0 {
		sink.OpenElement("executions")

		for _, e := range p.Executions {
			sink.OpenElement("execution")
			w.writeText(sink, "id", e.ID)
			w.writeText(sink, "phase", e.Phase)
			w.writeStrings(sink, "goals", "goal", e.Goals)
			w.writeConfiguration(sink, e.Configuration)
			sink.CloseElement("execution")
		}

		sink.CloseElement("executions")
	}

	if len(p.Dependencies) > 0 {
		sink.OpenElement("dependencies")

		for _, d := range p.Dependencies {
			sink.OpenElement("dependency")
			w.writeText(sink, "groupId", d.GroupID)
			w.writeText(sink, "artifactId", d.ArtifactID)
			w.writeText(sink, "version", d.Version)
			sink.CloseElement("dependency")
		}

		sink.CloseElement("dependencies")
	}

	sink.CloseElement("plugin")
}

func (w *Writer) writeProfiles(sink *xmlutil.Sink, profiles *build.ProfileContainer) error {
	if profiles.IsEmpty() {
		return nil
	}

	sink.OpenElement("profiles")

	for _, p := range profiles.Items() {
		if err := w.writeProfile(sink, p); err != nil {
			return err
		}
	}

	sink.CloseElement("profiles")

	return nil
}

func (w *Writer) writeProfile(sink *xmlutil.Sink, p *build.Profile) error {
	sink.OpenElement("profile")
	w.writeText(sink, "id", p.ID())
	w.writeActivation(sink, p.Activation())

	pb := p.Build()
	w.writeBuildSection(sink, buildSection{
		directory:        pb.Directory,
		defaultGoal:      pb.DefaultGoal,
		finalName:        pb.FinalName,
		filters:          pb.Filters,
		resources:        pb.Resources(),
		testResources:    pb.TestResources(),
		pluginManagement: pb.PluginManagement(),
		plugins:          pb.Plugins(),
	})

	w.writeStrings(sink, "modules", "module", p.Modules())
	w.writeRepositories(sink, "repositories", "repository", p.Repositories())
	w.writeRepositories(sink, "pluginRepositories", "pluginRepository", p.PluginRepositories())

	if err := w.writeDependencies(sink, p.Dependencies()); err != nil {
		return err
	}

	w.writeDependencyManagement(sink, p.DependencyManagement())
	w.writeReporting(sink, p.Reporting())
	w.writeDistributionManagement(sink, p.DistributionManagement())
	w.writeProperties(sink, p.Properties())
	sink.CloseElement("profile")

	return nil
}

func (w *Writer) writeActivation(sink *xmlutil.Sink, a *build.Activation) {
	if a.IsZero() {
		return
	}

	sink.OpenElement("activation")
	w.writeFlag(sink, "activeByDefault", a.ActiveByDefault)
	w.writeText(sink, "jdk", a.JDK)

	if a.OS != nil {
		sink.OpenElement("os")
		w.writeText(sink, "name", a.OS.Name)
		w.writeText(sink, "family", a.OS.Family)
		w.writeText(sink, "arch", a.OS.Arch)
		w.writeText(sink, "version", a.OS.Version)
		sink.CloseElement("os")
	}

	if a.Property != nil {
		sink.OpenElement("property")
		w.writeText(sink, "name", a.Property.Name)
		w.writeText(sink, "value", a.Property.Value)
		sink.CloseElement("property")
	}

	if a.File != nil {
		sink.OpenElement("file")
		w.writeText(sink, "exists", a.File.Exists)
		w.writeText(sink, "missing", a.File.Missing)
		sink.CloseElement("file")
	}

	sink.CloseElement("activation")
}

func (w *Writer) writeReporting(sink *xmlutil.Sink, r *build.Reporting) {
	if r.IsEmpty() {
		return
	}

	sink.OpenElement("reporting")
	w.writeFlag(sink, "excludeDefaults", r.ExcludeDefaults)
	w.writeText(sink, "outputDirectory", r.OutputDirectory)

	if len(r.Plugins) > 0 {
		sink.OpenElement("plugins")

		for _, p := range r.Plugins {
			w.writeReportPlugin(sink, p)
		}

		sink.CloseElement("plugins")
	}

	sink.CloseElement("reporting")
}

func (w *Writer) writeReportPlugin(sink *xmlutil.Sink, p build.ReportPlugin) {
	sink.OpenElement("plugin")
	w.writeText(sink, "groupId", p.GroupID)
	w.writeText(sink, "artifactId", p.ArtifactID)
	w.writeText(sink, "version", p.Version)
	w.writeText(sink, "inherited", p.Inherited)
	w.writeConfiguration(sink, p.Configuration)

	if len(p.ReportSets) > 0 {
		sink.OpenElement("reportSets")

		for _, rs := range p.ReportSets {
			sink.OpenElement("reportSet")
			w.writeText(sink, "id", rs.ID)
			w.writeText(sink, "inherited", rs.Inherited)
			w.writeConfiguration(sink, rs.Configuration)
			w.writeStrings(sink, "reports", "report", rs.Reports)
			sink.CloseElement("reportSet")
		}

		sink.CloseElement("reportSets")
	}

	sink.CloseElement("plugin")
}
