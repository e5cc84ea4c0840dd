package descriptor

import (
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/pomgen/pomgen/internal/build"
)

// Property is a single descriptor property.
type Property struct {
	Name  string
	Value string
}

// Properties decodes a yaml mapping into an ordered property list. Plain map
// decoding would lose the document order, which the generated pom must keep.
type Properties []Property

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Properties) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("properties must be a mapping, got %s", nodeKind(node))
	}

	for i := 0; i < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]

		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("property %q must be a scalar value", key.Value)
		}

		*p = append(*p, Property{Name: key.Value, Value: val.Value})
	}

	return nil
}

// Configuration captures an arbitrary configuration fragment as a raw yaml
// node so its document order can be replayed into the model.
type Configuration struct {
	node yaml.Node
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Configuration) UnmarshalYAML(node *yaml.Node) error {
	c.node = *node
	return nil
}

func (c *Configuration) toModel() (*build.Configuration, error) {
	if c == nil || c.node.Kind == 0 {
		return nil, nil
	}

	cfg := &build.Configuration{}
	if err := applyConfigNode(cfg, &c.node); err != nil {
		return nil, err
	}

	if cfg.IsEmpty() {
		return nil, nil
	}

	return cfg, nil
}

// applyConfigNode replays a yaml mapping into a configuration fragment in
// document order. A scalar becomes a leaf, a mapping a nested fragment, and a
// sequence of scalars repeated sibling leaves under the sequence's key.
func applyConfigNode(cfg *build.Configuration, node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("configuration must be a mapping, got %s", nodeKind(node))
	}

	for i := 0; i < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]

		switch val.Kind {
		case yaml.ScalarNode:
			cfg.Add(key, val.Value)
		case yaml.MappingNode:
			var err error

			cfg.Configure(key, func(child *build.Configuration) {
				err = applyConfigNode(child, val)
			})

			if err != nil {
				return err
			}
		case yaml.SequenceNode:
			for _, item := range val.Content {
				if item.Kind != yaml.ScalarNode {
					return fmt.Errorf("configuration list %q must contain scalars", key)
				}

				cfg.Add(key, item.Value)
			}
		default:
			return fmt.Errorf("configuration value %q has unsupported structure", key)
		}
	}

	return nil
}

func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	default:
		return "unknown"
	}
}

// Exclusion mirrors build.Exclusion.
type Exclusion struct {
	GroupID    string `yaml:"groupId"`
	ArtifactID string `yaml:"artifactId"`
}

// Dependency is one entry of the dependencies section. Version and
// versionProperty are mutually exclusive.
type Dependency struct {
	ID              string      `yaml:"id"`
	GroupID         string      `yaml:"groupId"`
	ArtifactID      string      `yaml:"artifactId"`
	Version         string      `yaml:"version"`
	VersionProperty string      `yaml:"versionProperty"`
	Scope           string      `yaml:"scope"`
	Classifier      string      `yaml:"classifier"`
	Type            string      `yaml:"type"`
	Optional        *bool       `yaml:"optional"`
	Exclusions      []Exclusion `yaml:"exclusions"`
}

// id returns the container key: the explicit id, or the coordinates.
func (d Dependency) id() string {
	if d.ID != "" {
		return d.ID
	}

	return d.GroupID + ":" + d.ArtifactID
}

func (d Dependency) toModel() (build.Dependency, error) {
	if d.GroupID == "" || d.ArtifactID == "" {
		return build.Dependency{}, fmt.Errorf("dependency %q: groupId and artifactId are required", d.id())
	}

	scope, err := parseScope(d.Scope)
	if err != nil {
		return build.Dependency{}, fmt.Errorf("dependency %s:%s: %w", d.GroupID, d.ArtifactID, err)
	}

	version, err := versionRef(d.Version, d.VersionProperty)
	if err != nil {
		return build.Dependency{}, fmt.Errorf("dependency %s:%s: %w", d.GroupID, d.ArtifactID, err)
	}

	dep := build.NewDependency(d.GroupID, d.ArtifactID)
	dep.Version = version
	dep.Scope = scope
	dep.Classifier = d.Classifier
	dep.Type = d.Type
	dep.Optional = d.Optional

	for _, e := range d.Exclusions {
		dep.Exclusions = append(dep.Exclusions, build.Exclusion{
			GroupID:    e.GroupID,
			ArtifactID: e.ArtifactID,
		})
	}

	return dep, nil
}

func parseScope(s string) (build.DependencyScope, error) {
	switch scope := build.DependencyScope(s); scope {
	case "", build.ScopeCompile, build.ScopeRuntime, build.ScopeProvidedRuntime,
		build.ScopeTestCompile, build.ScopeTestRuntime,
		build.ScopeAnnotationProcessor, build.ScopeCompileOnly:
		return scope, nil
	default:
		return "", fmt.Errorf("unknown scope %q: must be one of compile, runtime, "+
			"provided-runtime, test-compile, test-runtime, annotation-processor, compile-only", s)
	}
}

func versionRef(version, property string) (build.VersionReference, error) {
	if version != "" && property != "" {
		return build.VersionReference{}, fmt.Errorf("version and versionProperty are mutually exclusive")
	}

	if property != "" {
		return build.VersionFromProperty(property), nil
	}

	return build.Version(version), nil
}

// Bom is one entry of the boms section.
type Bom struct {
	ID              string `yaml:"id"`
	GroupID         string `yaml:"groupId"`
	ArtifactID      string `yaml:"artifactId"`
	Version         string `yaml:"version"`
	VersionProperty string `yaml:"versionProperty"`
	Order           *int   `yaml:"order"`
}

func (b Bom) id() string {
	if b.ID != "" {
		return b.ID
	}

	return b.GroupID + ":" + b.ArtifactID
}

func (b Bom) toModel(logger *slog.Logger) (build.BillOfMaterials, error) {
	if b.GroupID == "" || b.ArtifactID == "" {
		return build.BillOfMaterials{}, fmt.Errorf("bom %q: groupId and artifactId are required", b.id())
	}

	version, err := versionRef(b.Version, b.VersionProperty)
	if err != nil {
		return build.BillOfMaterials{}, fmt.Errorf("bom %s:%s: %w", b.GroupID, b.ArtifactID, err)
	}

	warnVersion(logger, "bom "+b.GroupID+":"+b.ArtifactID, b.Version)

	bom := build.NewBom(b.GroupID, b.ArtifactID)
	bom.Version = version

	if b.Order != nil {
		bom.Order = *b.Order
	}

	return bom, nil
}

// Resource is one entry of the resources or testResources sections.
type Resource struct {
	Directory  string   `yaml:"directory"`
	TargetPath string   `yaml:"targetPath"`
	Filtering  *bool    `yaml:"filtering"`
	Includes   []string `yaml:"includes"`
	Excludes   []string `yaml:"excludes"`
}

func (r Resource) toModel() build.Resource {
	return build.Resource{
		Directory:  r.Directory,
		TargetPath: r.TargetPath,
		Filtering:  r.Filtering,
		Includes:   r.Includes,
		Excludes:   r.Excludes,
	}
}

// Execution is one execution of a plugin.
type Execution struct {
	ID            string         `yaml:"id"`
	Phase         string         `yaml:"phase"`
	Goals         []string       `yaml:"goals"`
	Configuration *Configuration `yaml:"configuration"`
}

// PluginDependency is a dependency of a plugin.
type PluginDependency struct {
	GroupID    string `yaml:"groupId"`
	ArtifactID string `yaml:"artifactId"`
	Version    string `yaml:"version"`
}

// Plugin is one entry of the plugins or pluginManagement sections.
type Plugin struct {
	GroupID       string             `yaml:"groupId"`
	ArtifactID    string             `yaml:"artifactId"`
	Version       string             `yaml:"version"`
	Extensions    *bool              `yaml:"extensions"`
	Configuration *Configuration     `yaml:"configuration"`
	Executions    []Execution        `yaml:"executions"`
	Dependencies  []PluginDependency `yaml:"dependencies"`
}

func (p Plugin) toModel() (build.Plugin, error) {
	if p.GroupID == "" || p.ArtifactID == "" {
		return build.Plugin{}, fmt.Errorf("plugin %s:%s: groupId and artifactId are required", p.GroupID, p.ArtifactID)
	}

	cfg, err := p.Configuration.toModel()
	if err != nil {
		return build.Plugin{}, fmt.Errorf("plugin %s:%s: %w", p.GroupID, p.ArtifactID, err)
	}

	plugin := build.NewPlugin(p.GroupID, p.ArtifactID)
	plugin.Version = p.Version
	plugin.Extensions = p.Extensions
	plugin.Configuration = cfg

	for _, e := range p.Executions {
		execCfg, err := e.Configuration.toModel()
		if err != nil {
			return build.Plugin{}, fmt.Errorf("plugin %s:%s execution %q: %w", p.GroupID, p.ArtifactID, e.ID, err)
		}

		plugin.Executions = append(plugin.Executions, build.Execution{
			ID:            e.ID,
			Phase:         e.Phase,
			Goals:         e.Goals,
			Configuration: execCfg,
		})
	}

	for _, d := range p.Dependencies {
		plugin.Dependencies = append(plugin.Dependencies, build.PluginDependency{
			GroupID:    d.GroupID,
			ArtifactID: d.ArtifactID,
			Version:    d.Version,
		})
	}

	return plugin, nil
}

// Repository is one entry of the repositories or pluginRepositories sections.
type Repository struct {
	ID               string `yaml:"id"`
	Name             string `yaml:"name"`
	URL              string `yaml:"url"`
	SnapshotsEnabled *bool  `yaml:"snapshotsEnabled"`
}

func (r Repository) toModel() build.Repository {
	return build.Repository{
		ID:               r.ID,
		Name:             r.Name,
		URL:              r.URL,
		SnapshotsEnabled: r.SnapshotsEnabled,
	}
}

// DeploymentRepository mirrors build.DeploymentRepository.
type DeploymentRepository struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	URL           string `yaml:"url"`
	Layout        string `yaml:"layout"`
	UniqueVersion *bool  `yaml:"uniqueVersion"`
}

func (r *DeploymentRepository) toModel() *build.DeploymentRepository {
	if r == nil {
		return nil
	}

	return &build.DeploymentRepository{
		ID:            r.ID,
		Name:          r.Name,
		URL:           r.URL,
		Layout:        r.Layout,
		UniqueVersion: r.UniqueVersion,
	}
}

// Site mirrors build.Site.
type Site struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Relocation mirrors build.Relocation.
type Relocation struct {
	GroupID    string `yaml:"groupId"`
	ArtifactID string `yaml:"artifactId"`
	Version    string `yaml:"version"`
	Message    string `yaml:"message"`
}

// DistributionManagement mirrors build.DistributionManagement.
type DistributionManagement struct {
	DownloadURL        string                `yaml:"downloadUrl"`
	Repository         *DeploymentRepository `yaml:"repository"`
	SnapshotRepository *DeploymentRepository `yaml:"snapshotRepository"`
	Site               *Site                 `yaml:"site"`
	Relocation         *Relocation           `yaml:"relocation"`
}

func (d *DistributionManagement) apply(dm *build.DistributionManagement) {
	dm.DownloadURL = d.DownloadURL
	dm.Repository = d.Repository.toModel()
	dm.SnapshotRepository = d.SnapshotRepository.toModel()

	if d.Site != nil {
		dm.Site = &build.Site{ID: d.Site.ID, Name: d.Site.Name, URL: d.Site.URL}
	}

	if d.Relocation != nil {
		dm.Relocation = &build.Relocation{
			GroupID:    d.Relocation.GroupID,
			ArtifactID: d.Relocation.ArtifactID,
			Version:    d.Relocation.Version,
			Message:    d.Relocation.Message,
		}
	}
}

// Activation mirrors build.Activation.
type Activation struct {
	ActiveByDefault *bool               `yaml:"activeByDefault"`
	JDK             string              `yaml:"jdk"`
	OS              *ActivationOS       `yaml:"os"`
	Property        *ActivationProperty `yaml:"property"`
	File            *ActivationFile     `yaml:"file"`
}

// ActivationOS mirrors build.ActivationOS.
type ActivationOS struct {
	Name    string `yaml:"name"`
	Family  string `yaml:"family"`
	Arch    string `yaml:"arch"`
	Version string `yaml:"version"`
}

// ActivationProperty mirrors build.ActivationProperty.
type ActivationProperty struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// ActivationFile mirrors build.ActivationFile.
type ActivationFile struct {
	Exists  string `yaml:"exists"`
	Missing string `yaml:"missing"`
}

// ProfileBuild mirrors build.ProfileBuild.
type ProfileBuild struct {
	DefaultGoal      string     `yaml:"defaultGoal"`
	Directory        string     `yaml:"directory"`
	FinalName        string     `yaml:"finalName"`
	Filters          []string   `yaml:"filters"`
	Resources        []Resource `yaml:"resources"`
	TestResources    []Resource `yaml:"testResources"`
	PluginManagement []Plugin   `yaml:"pluginManagement"`
	Plugins          []Plugin   `yaml:"plugins"`
}

// ReportSet mirrors build.ReportSet.
type ReportSet struct {
	ID            string         `yaml:"id"`
	Inherited     string         `yaml:"inherited"`
	Reports       []string       `yaml:"reports"`
	Configuration *Configuration `yaml:"configuration"`
}

// ReportPlugin mirrors build.ReportPlugin.
type ReportPlugin struct {
	GroupID       string         `yaml:"groupId"`
	ArtifactID    string         `yaml:"artifactId"`
	Version       string         `yaml:"version"`
	Inherited     string         `yaml:"inherited"`
	Configuration *Configuration `yaml:"configuration"`
	ReportSets    []ReportSet    `yaml:"reportSets"`
}

// Reporting mirrors build.Reporting.
type Reporting struct {
	ExcludeDefaults *bool          `yaml:"excludeDefaults"`
	OutputDirectory string         `yaml:"outputDirectory"`
	Plugins         []ReportPlugin `yaml:"plugins"`
}

// Profile is one entry of the profiles section.
type Profile struct {
	ID                     string                  `yaml:"id"`
	Activation             *Activation             `yaml:"activation"`
	Build                  *ProfileBuild           `yaml:"build"`
	Modules                []string                `yaml:"modules"`
	Repositories           []Repository            `yaml:"repositories"`
	PluginRepositories     []Repository            `yaml:"pluginRepositories"`
	Dependencies           []Dependency            `yaml:"dependencies"`
	Boms                   []Bom                   `yaml:"boms"`
	Reporting              *Reporting              `yaml:"reporting"`
	DistributionManagement *DistributionManagement `yaml:"distributionManagement"`
	Properties             Properties              `yaml:"properties"`
}

func (p Profile) apply(profiles *build.ProfileContainer, logger *slog.Logger) error {
	if p.ID == "" {
		return fmt.Errorf("profile id is required")
	}

	profile := profiles.Add(p.ID)

	if p.Activation != nil {
		a := profile.Activation()
		a.ActiveByDefault = p.Activation.ActiveByDefault
		a.JDK = p.Activation.JDK

		if p.Activation.OS != nil {
			a.OS = &build.ActivationOS{
				Name:    p.Activation.OS.Name,
				Family:  p.Activation.OS.Family,
				Arch:    p.Activation.OS.Arch,
				Version: p.Activation.OS.Version,
			}
		}

		if p.Activation.Property != nil {
			a.Property = &build.ActivationProperty{
				Name:  p.Activation.Property.Name,
				Value: p.Activation.Property.Value,
			}
		}

		if p.Activation.File != nil {
			a.File = &build.ActivationFile{
				Exists:  p.Activation.File.Exists,
				Missing: p.Activation.File.Missing,
			}
		}
	}

	if p.Build != nil {
		if err := p.Build.apply(profile.Build()); err != nil {
			return fmt.Errorf("profile %q: %w", p.ID, err)
		}
	}

	for _, m := range p.Modules {
		profile.Module(m)
	}

	for _, r := range p.Repositories {
		profile.Repositories().Add(r.toModel())
	}

	for _, r := range p.PluginRepositories {
		profile.PluginRepositories().Add(r.toModel())
	}

	for _, d := range p.Dependencies {
		dep, err := d.toModel()
		if err != nil {
			return fmt.Errorf("profile %q: %w", p.ID, err)
		}

		profile.Dependencies().Add(d.id(), dep)
	}

	for _, bom := range p.Boms {
		model, err := bom.toModel(logger)
		if err != nil {
			return fmt.Errorf("profile %q: %w", p.ID, err)
		}

		profile.DependencyManagement().Add(bom.id(), model)
	}

	if p.Reporting != nil {
		if err := p.Reporting.apply(profile.Reporting()); err != nil {
			return fmt.Errorf("profile %q: %w", p.ID, err)
		}
	}

	if p.DistributionManagement != nil {
		p.DistributionManagement.apply(profile.DistributionManagement())
	}

	for _, prop := range p.Properties {
		profile.Properties().Property(prop.Name, prop.Value)
	}

	return nil
}

func (pb *ProfileBuild) apply(model *build.ProfileBuild) error {
	model.DefaultGoal = pb.DefaultGoal
	model.Directory = pb.Directory
	model.FinalName = pb.FinalName
	model.Filters = pb.Filters

	for _, r := range pb.Resources {
		model.Resources().Add(r.toModel())
	}

	for _, r := range pb.TestResources {
		model.TestResources().Add(r.toModel())
	}

	for _, p := range pb.PluginManagement {
		plugin, err := p.toModel()
		if err != nil {
			return err
		}

		model.PluginManagement().Add(plugin)
	}

	for _, p := range pb.Plugins {
		plugin, err := p.toModel()
		if err != nil {
			return err
		}

		model.Plugins().Add(plugin)
	}

	return nil
}

func (r *Reporting) apply(model *build.Reporting) error {
	model.ExcludeDefaults = r.ExcludeDefaults
	model.OutputDirectory = r.OutputDirectory

	for _, p := range r.Plugins {
		if p.GroupID == "" || p.ArtifactID == "" {
			return fmt.Errorf("report plugin %s:%s: groupId and artifactId are required", p.GroupID, p.ArtifactID)
		}

		cfg, err := p.Configuration.toModel()
		if err != nil {
			return fmt.Errorf("report plugin %s:%s: %w", p.GroupID, p.ArtifactID, err)
		}

		plugin := build.NewReportPlugin(p.GroupID, p.ArtifactID)
		plugin.Version = p.Version
		plugin.Inherited = p.Inherited
		plugin.Configuration = cfg

		for _, rs := range p.ReportSets {
			rsCfg, err := rs.Configuration.toModel()
			if err != nil {
				return fmt.Errorf("report plugin %s:%s report set %q: %w", p.GroupID, p.ArtifactID, rs.ID, err)
			}

			plugin.ReportSets = append(plugin.ReportSets, build.ReportSet{
				ID:            rs.ID,
				Inherited:     rs.Inherited,
				Reports:       rs.Reports,
				Configuration: rsCfg,
			})
		}

		model.Plugins = append(model.Plugins, plugin)
	}

	return nil
}
