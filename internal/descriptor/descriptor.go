// Package descriptor loads a declarative project descriptor (pom.yaml) and
// turns it into a build model.
//
// The descriptor mirrors the model one to one. Two sections are
// order-sensitive and decoded through the yaml node API so the document
// order survives into the output: properties and plugin configuration
// fragments. Everything else decodes into plain structs; yaml sequences keep
// their order by construction.
//
// Version strings are sanity-checked against semver. Maven versions are a
// superset of semver (2.1.0.RELEASE is legal), so a failed check logs a
// warning and never rejects the descriptor.
package descriptor

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/pomgen/pomgen/internal/build"
	"github.com/pomgen/pomgen/internal/logging"
)

// Document is the root of the descriptor.
type Document struct {
	Project                Project                 `yaml:"project"`
	Properties             Properties              `yaml:"properties"`
	Dependencies           []Dependency            `yaml:"dependencies"`
	Boms                   []Bom                   `yaml:"boms"`
	Resources              []Resource              `yaml:"resources"`
	TestResources          []Resource              `yaml:"testResources"`
	Plugins                []Plugin                `yaml:"plugins"`
	Repositories           []Repository            `yaml:"repositories"`
	PluginRepositories     []Repository            `yaml:"pluginRepositories"`
	DistributionManagement *DistributionManagement `yaml:"distributionManagement"`
	Profiles               []Profile               `yaml:"profiles"`
}

// Project carries the project identity section.
type Project struct {
	GroupID     string `yaml:"groupId"`
	ArtifactID  string `yaml:"artifactId"`
	Version     string `yaml:"version"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Packaging   string `yaml:"packaging"`

	Parent     *Parent     `yaml:"parent"`
	Scm        *Scm        `yaml:"scm"`
	Licenses   []License   `yaml:"licenses"`
	Developers []Developer `yaml:"developers"`

	DefaultGoal         string `yaml:"defaultGoal"`
	FinalName           string `yaml:"finalName"`
	SourceDirectory     string `yaml:"sourceDirectory"`
	TestSourceDirectory string `yaml:"testSourceDirectory"`
}

// Parent mirrors build.Parent.
type Parent struct {
	GroupID    string `yaml:"groupId"`
	ArtifactID string `yaml:"artifactId"`
	Version    string `yaml:"version"`
}

// Scm mirrors build.Scm.
type Scm struct {
	Connection          string `yaml:"connection"`
	DeveloperConnection string `yaml:"developerConnection"`
	Tag                 string `yaml:"tag"`
	URL                 string `yaml:"url"`
}

// License mirrors build.License.
type License struct {
	Name         string `yaml:"name"`
	URL          string `yaml:"url"`
	Distribution string `yaml:"distribution"`
	Comments     string `yaml:"comments"`
}

// Developer mirrors build.Developer.
type Developer struct {
	ID              string     `yaml:"id"`
	Name            string     `yaml:"name"`
	Email           string     `yaml:"email"`
	URL             string     `yaml:"url"`
	Organization    string     `yaml:"organization"`
	OrganizationURL string     `yaml:"organizationUrl"`
	Timezone        string     `yaml:"timezone"`
	Roles           []string   `yaml:"roles"`
	Properties      Properties `yaml:"properties"`
}

// Load reads and parses the descriptor at path.
func Load(ctx context.Context, path string) (*build.Build, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-supplied descriptor path
	if err != nil {
		return nil, fmt.Errorf("reading descriptor %s: %w", path, err)
	}

	b, err := Parse(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("descriptor %s: %w", path, err)
	}

	return b, nil
}

// Parse decodes a descriptor document and assembles the build model.
func Parse(ctx context.Context, data []byte) (*build.Build, error) {
	var doc Document

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing descriptor: %w", err)
	}

	return doc.Build(logging.FromContext(ctx))
}

// Build assembles the build model from the document.
func (doc *Document) Build(logger *slog.Logger) (*build.Build, error) {
	if doc.Project.GroupID == "" || doc.Project.ArtifactID == "" {
		return nil, fmt.Errorf("project.groupId and project.artifactId are required")
	}

	b := build.New()

	doc.applyProject(b, logger)

	for _, p := range doc.Properties {
		b.Properties().Property(p.Name, p.Value)
	}

	for _, d := range doc.Dependencies {
		dep, err := d.toModel()
		if err != nil {
			return nil, err
		}

		b.Dependencies().Add(d.id(), dep)
	}

	for _, bom := range doc.Boms {
		model, err := bom.toModel(logger)
		if err != nil {
			return nil, err
		}

		b.Boms().Add(bom.id(), model)
	}

	for _, r := range doc.Resources {
		b.Resources().Add(r.toModel())
	}

	for _, r := range doc.TestResources {
		b.TestResources().Add(r.toModel())
	}

	for _, p := range doc.Plugins {
		model, err := p.toModel()
		if err != nil {
			return nil, err
		}

		b.Plugins().Add(model)
	}

	for _, r := range doc.Repositories {
		b.Repositories().Add(r.toModel())
	}

	for _, r := range doc.PluginRepositories {
		b.PluginRepositories().Add(r.toModel())
	}

	if doc.DistributionManagement != nil {
		doc.DistributionManagement.apply(b.DistributionManagement())
	}

	for _, p := range doc.Profiles {
		if err := p.apply(b.Profiles(), logger); err != nil {
			return nil, err
		}
	}

	return b, nil
}

func (doc *Document) applyProject(b *build.Build, logger *slog.Logger) {
	p := doc.Project
	s := b.Settings().Coordinates(p.GroupID, p.ArtifactID)

	s.Version = p.Version
	s.Name = p.Name
	s.Description = p.Description
	s.Packaging = p.Packaging
	s.DefaultGoal = p.DefaultGoal
	s.FinalName = p.FinalName
	s.SourceDirectory = p.SourceDirectory
	s.TestSourceDirectory = p.TestSourceDirectory

	warnVersion(logger, "project version", p.Version)

	if p.Parent != nil {
		s.SetParent(p.Parent.GroupID, p.Parent.ArtifactID, p.Parent.Version)
	}

	if p.Scm != nil {
		s.Scm = build.Scm{
			Connection:          p.Scm.Connection,
			DeveloperConnection: p.Scm.DeveloperConnection,
			Tag:                 p.Scm.Tag,
			URL:                 p.Scm.URL,
		}
	}

	for _, l := range p.Licenses {
		s.Licenses = append(s.Licenses, build.License{
			Name:         l.Name,
			URL:          l.URL,
			Distribution: build.LicenseDistribution(l.Distribution),
			Comments:     l.Comments,
		})
	}

	for _, d := range p.Developers {
		dev := build.Developer{
			ID:              d.ID,
			Name:            d.Name,
			Email:           d.Email,
			URL:             d.URL,
			Organization:    d.Organization,
			OrganizationURL: d.OrganizationURL,
			Timezone:        d.Timezone,
			Roles:           d.Roles,
		}

		for _, prop := range d.Properties {
			dev.Properties = append(dev.Properties, build.Property(prop))
		}

		s.Developers = append(s.Developers, dev)
	}
}

// warnVersion logs when a version value is neither empty, a property
// placeholder, nor valid semver. Maven tolerates such versions, so pomgen
// only flags them.
func warnVersion(logger *slog.Logger, what, value string) {
	if value == "" || strings.HasPrefix(value, "${") {
		return
	}

	if _, err := semver.NewVersion(value); err != nil {
		logger.Warn("version is not semantic versioning",
			slog.String("field", what),
			slog.String("version", value))
	}
}
