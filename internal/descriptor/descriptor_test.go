package descriptor

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pomgen/pomgen/internal/build"
	"github.com/pomgen/pomgen/internal/logging"
)

func parse(t *testing.T, doc string) *build.Build {
	t.Helper()

	b, err := Parse(context.Background(), []byte(doc))
	require.NoError(t, err)

	return b
}

func TestParseMinimal(t *testing.T) {
	b := parse(t, `
project:
  groupId: com.example.demo
  artifactId: demo
`)

	assert.Equal(t, "com.example.demo", b.Settings().GroupID)
	assert.Equal(t, "demo", b.Settings().ArtifactID)
	assert.Empty(t, b.Settings().Version)
}

func TestParseRequiresCoordinates(t *testing.T) {
	_, err := Parse(context.Background(), []byte("project:\n  groupId: com.example\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "artifactId")
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse(context.Background(), []byte(`
project:
  groupId: com.example
  artifactId: demo
  bogusField: value
`))
	require.Error(t, err)
}

func TestParseProject(t *testing.T) {
	b := parse(t, `
project:
  groupId: com.example.demo
  artifactId: demo
  version: 1.2.3
  name: demo project
  description: A demo project
  packaging: war
  parent:
    groupId: org.springframework.boot
    artifactId: spring-boot-starter-parent
    version: 3.2.0
  scm:
    connection: scm:git:git://example.com/demo.git
    url: https://example.com/demo
  licenses:
    - name: Apache License, Version 2.0
      url: https://www.apache.org/licenses/LICENSE-2.0
      distribution: repo
  developers:
    - id: jsmith
      name: Jane Smith
      roles: [developer, tester]
      properties:
        picUrl: https://example.com/jsmith.png
  sourceDirectory: src/main/kotlin
  finalName: demo-app
`)

	s := b.Settings()
	assert.Equal(t, "1.2.3", s.Version)
	assert.Equal(t, "demo project", s.Name)
	assert.Equal(t, "war", s.Packaging)
	require.NotNil(t, s.Parent)
	assert.Equal(t, "spring-boot-starter-parent", s.Parent.ArtifactID)
	assert.Equal(t, "scm:git:git://example.com/demo.git", s.Scm.Connection)
	require.Len(t, s.Licenses, 1)
	assert.Equal(t, build.DistributionRepo, s.Licenses[0].Distribution)
	require.Len(t, s.Developers, 1)
	assert.Equal(t, []string{"developer", "tester"}, s.Developers[0].Roles)
	require.Len(t, s.Developers[0].Properties, 1)
	assert.Equal(t, "picUrl", s.Developers[0].Properties[0].Name)
	assert.Equal(t, "src/main/kotlin", s.SourceDirectory)
	assert.Equal(t, "demo-app", s.FinalName)
}

func TestParsePropertiesKeepDocumentOrder(t *testing.T) {
	b := parse(t, `
project:
  groupId: com.example.demo
  artifactId: demo
properties:
  zeta: last-first
  java.version: "17"
  alpha: first-last
`)

	assert.Equal(t, []build.Property{
		{Name: "zeta", Value: "last-first"},
		{Name: "java.version", Value: "17"},
		{Name: "alpha", Value: "first-last"},
	}, b.Properties().Items())
}

func TestParseDependencies(t *testing.T) {
	b := parse(t, `
project:
  groupId: com.example.demo
  artifactId: demo
dependencies:
  - groupId: org.springframework.boot
    artifactId: spring-boot-starter-web
  - id: acme
    groupId: com.example
    artifactId: acme
    versionProperty: acme.version
    scope: runtime
    classifier: linux-x86_64
    optional: true
    exclusions:
      - groupId: com.example.legacy
        artifactId: legacy
`)

	deps := b.Dependencies()
	assert.True(t, deps.Has("org.springframework.boot:spring-boot-starter-web"))

	acme, ok := deps.Get("acme")
	require.True(t, ok)
	assert.Equal(t, "${acme.version}", acme.Version.String())
	assert.Equal(t, build.ScopeRuntime, acme.Scope)
	assert.Equal(t, "linux-x86_64", acme.Classifier)
	require.NotNil(t, acme.Optional)
	assert.True(t, *acme.Optional)
	require.Len(t, acme.Exclusions, 1)
	assert.Equal(t, "legacy", acme.Exclusions[0].ArtifactID)
}

func TestParseDependencyUnknownScope(t *testing.T) {
	_, err := Parse(context.Background(), []byte(`
project:
  groupId: com.example.demo
  artifactId: demo
dependencies:
  - groupId: com.example
    artifactId: acme
    scope: bogus
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown scope")
	assert.Contains(t, err.Error(), "com.example:acme")
}

func TestParseDependencyVersionConflict(t *testing.T) {
	_, err := Parse(context.Background(), []byte(`
project:
  groupId: com.example.demo
  artifactId: demo
dependencies:
  - groupId: com.example
    artifactId: acme
    version: 1.0.0
    versionProperty: acme.version
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestParseBoms(t *testing.T) {
	b := parse(t, `
project:
  groupId: com.example.demo
  artifactId: demo
boms:
  - groupId: org.springframework.boot
    artifactId: spring-boot-dependencies
    versionProperty: spring-boot.version
    order: 2
  - groupId: com.example
    artifactId: acme-dependencies
    version: 1.0.0
`)

	items := b.Boms().Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Order)
	assert.Equal(t, build.DefaultBomOrder, items[1].Order)
}

func TestParsePluginConfigurationKeepsOrder(t *testing.T) {
	b := parse(t, `
project:
  groupId: com.example.demo
  artifactId: demo
plugins:
  - groupId: org.jetbrains.kotlin
    artifactId: kotlin-maven-plugin
    version: ${kotlin.version}
    extensions: true
    configuration:
      args:
        arg:
          - -Xjsr305=strict
          - -Xjvm-default=all
      jvmTarget: "17"
    executions:
      - id: compile
        phase: compile
        goals: [compile]
    dependencies:
      - groupId: org.jetbrains.kotlin
        artifactId: kotlin-maven-allopen
        version: ${kotlin.version}
`)

	plugins := b.Plugins().Items()
	require.Len(t, plugins, 1)

	p := plugins[0]
	assert.Equal(t, "${kotlin.version}", p.Version)
	require.NotNil(t, p.Extensions)
	assert.True(t, *p.Extensions)

	require.NotNil(t, p.Configuration)
	nodes := p.Configuration.Nodes()
	require.Len(t, nodes, 2)
	assert.Equal(t, "args", nodes[0].Name)
	require.NotNil(t, nodes[0].Children)

	args := nodes[0].Children.Nodes()
	require.Len(t, args, 2)
	assert.Equal(t, "-Xjsr305=strict", args[0].Value)
	assert.Equal(t, "jvmTarget", nodes[1].Name)
	assert.Equal(t, "17", nodes[1].Value)

	require.Len(t, p.Executions, 1)
	assert.Equal(t, []string{"compile"}, p.Executions[0].Goals)
	require.Len(t, p.Dependencies, 1)
}

func TestParseRepositoriesAndDistribution(t *testing.T) {
	b := parse(t, `
project:
  groupId: com.example.demo
  artifactId: demo
repositories:
  - id: spring-milestones
    name: Spring Milestones
    url: https://repo.spring.io/milestone
    snapshotsEnabled: false
pluginRepositories:
  - id: spring-snapshots
    url: https://repo.spring.io/snapshot
distributionManagement:
  downloadUrl: https://example.com/download
  repository:
    id: releases
    url: https://repo.example.com/releases
    uniqueVersion: false
  site:
    id: site
    url: https://example.com/site
`)

	repos := b.Repositories().Items()
	require.Len(t, repos, 1)
	require.NotNil(t, repos[0].SnapshotsEnabled)
	assert.False(t, *repos[0].SnapshotsEnabled)

	assert.True(t, b.PluginRepositories().Has("spring-snapshots"))

	dm := b.DistributionManagement()
	assert.Equal(t, "https://example.com/download", dm.DownloadURL)
	require.NotNil(t, dm.Repository)
	require.NotNil(t, dm.Repository.UniqueVersion)
	assert.False(t, *dm.Repository.UniqueVersion)
	require.NotNil(t, dm.Site)
	assert.Nil(t, dm.Relocation)
}

func TestParseProfiles(t *testing.T) {
	b := parse(t, `
project:
  groupId: com.example.demo
  artifactId: demo
profiles:
  - id: ci
    activation:
      activeByDefault: true
      property:
        name: env
        value: ci
    build:
      directory: target/ci
      plugins:
        - groupId: org.apache.maven.plugins
          artifactId: maven-surefire-plugin
    modules: [core, web]
    dependencies:
      - groupId: com.example
        artifactId: ci-helper
        scope: test-compile
    boms:
      - groupId: com.example
        artifactId: ci-dependencies
        version: 1.0.0
    properties:
      skip.tests: "false"
    reporting:
      outputDirectory: target/site
      plugins:
        - groupId: org.apache.maven.plugins
          artifactId: maven-javadoc-plugin
          reportSets:
            - id: aggregate
              reports: [aggregate]
`)

	profiles := b.Profiles().Items()
	require.Len(t, profiles, 1)

	p := profiles[0]
	assert.Equal(t, "ci", p.ID())
	require.NotNil(t, p.Activation().ActiveByDefault)
	assert.True(t, *p.Activation().ActiveByDefault)
	require.NotNil(t, p.Activation().Property)
	assert.Equal(t, "env", p.Activation().Property.Name)
	assert.Equal(t, "target/ci", p.Build().Directory)
	assert.False(t, p.Build().Plugins().IsEmpty())
	assert.Equal(t, []string{"core", "web"}, p.Modules())
	assert.True(t, p.Dependencies().Has("com.example:ci-helper"))
	assert.True(t, p.DependencyManagement().Has("com.example:ci-dependencies"))

	v, ok := p.Properties().Get("skip.tests")
	require.True(t, ok)
	assert.Equal(t, "false", v)

	require.Len(t, p.Reporting().Plugins, 1)
	require.Len(t, p.Reporting().Plugins[0].ReportSets, 1)
}

func TestParseProfileRequiresID(t *testing.T) {
	_, err := Parse(context.Background(), []byte(`
project:
  groupId: com.example.demo
  artifactId: demo
profiles:
  - modules: [core]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile id is required")
}

func TestParseWarnsOnNonSemverVersion(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := logging.NewContext(context.Background(), logger)

	_, err := Parse(ctx, []byte(`
project:
  groupId: com.example.demo
  artifactId: demo
  version: 2.1.0.RELEASE
`))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "version is not semantic versioning")
}

func TestParseNoWarningForPropertyPlaceholder(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := logging.NewContext(context.Background(), logger)

	_, err := Parse(ctx, []byte(`
project:
  groupId: com.example.demo
  artifactId: demo
  version: ${revision}
`))
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "version is not semantic versioning")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
project:
  groupId: com.example.demo
  artifactId: demo
`), 0o600))

	b, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "demo", b.Settings().ArtifactID)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), "/nonexistent/pom.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading descriptor")
}
