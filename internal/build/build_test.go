package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsCoordinates(t *testing.T) {
	b := New()
	b.Settings().Coordinates("com.example.demo", "demo")

	assert.Equal(t, "com.example.demo", b.Settings().GroupID)
	assert.Equal(t, "demo", b.Settings().ArtifactID)

	assert.Panics(t, func() { b.Settings().Coordinates("", "demo") })
	assert.Panics(t, func() { b.Settings().Coordinates("com.example.demo", "") })
}

func TestSettingsParent(t *testing.T) {
	b := New()
	b.Settings().SetParent("org.springframework.boot", "spring-boot-starter-parent", "3.2.0")

	require.NotNil(t, b.Settings().Parent)
	assert.Equal(t, "spring-boot-starter-parent", b.Settings().Parent.ArtifactID)

	assert.Panics(t, func() { b.Settings().SetParent("", "x", "1") })
}

func TestVersionReference(t *testing.T) {
	assert.True(t, VersionReference{}.IsZero())

	literal := Version("1.2.3")
	assert.False(t, literal.IsZero())
	assert.False(t, literal.IsProperty())
	assert.Equal(t, "1.2.3", literal.String())

	ref := VersionFromProperty("demo.version")
	assert.False(t, ref.IsZero())
	assert.True(t, ref.IsProperty())
	assert.Equal(t, "${demo.version}", ref.String())
}

func TestPropertyContainerReplacesInPlace(t *testing.T) {
	var c PropertyContainer

	assert.True(t, c.IsEmpty())

	c.Property("java.version", "17").
		Property("kotlin.version", "1.9.0").
		Property("java.version", "21")

	assert.Equal(t, []Property{
		{Name: "java.version", Value: "21"},
		{Name: "kotlin.version", Value: "1.9.0"},
	}, c.Items())

	v, ok := c.Get("kotlin.version")
	require.True(t, ok)
	assert.Equal(t, "1.9.0", v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestDependencyContainerKeepsInsertionOrder(t *testing.T) {
	var c DependencyContainer

	c.Add("web", NewDependency("org.springframework.boot", "spring-boot-starter-web"))
	c.Add("acme", NewDependency("com.example", "acme"))

	replacement := NewDependency("org.springframework.boot", "spring-boot-starter-webflux")
	c.Add("web", replacement)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "spring-boot-starter-webflux", items[0].ArtifactID)
	assert.Equal(t, "acme", items[1].ArtifactID)

	got, ok := c.Get("web")
	require.True(t, ok)
	assert.Equal(t, replacement, got)
	assert.True(t, c.Has("acme"))
	assert.False(t, c.Has("missing"))
}

func TestNewDependencyRequiresCoordinates(t *testing.T) {
	assert.Panics(t, func() { NewDependency("", "acme") })
	assert.Panics(t, func() { NewDependency("com.example", "") })
}

func TestNewBomDefaults(t *testing.T) {
	bom := NewBom("org.springframework.boot", "spring-boot-dependencies")

	assert.Equal(t, DefaultBomOrder, bom.Order)
	assert.True(t, bom.Version.IsZero())
}

func TestPluginContainerReplacesByCoordinates(t *testing.T) {
	var c PluginContainer

	assert.True(t, c.IsEmpty())

	c.Add(NewPlugin("com.example", "one"))
	c.Add(NewPlugin("com.example", "two"))

	replacement := NewPlugin("com.example", "one")
	replacement.Version = "2.0.0"
	c.Add(replacement)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "one", items[0].ArtifactID)
	assert.Equal(t, "2.0.0", items[0].Version)
	assert.True(t, c.Has("com.example", "two"))
}

func TestPluginContainerNilSafe(t *testing.T) {
	var c *PluginContainer

	assert.True(t, c.IsEmpty())
	assert.Nil(t, c.Items())
}

func TestRepositoryContainerReplacesByID(t *testing.T) {
	var c RepositoryContainer

	c.Add(MavenCentral)
	c.Add(NewRepository("spring-milestones", "https://repo.spring.io/milestone"))

	renamed := NewRepository("spring-milestones", "https://repo.spring.io/milestone")
	renamed.Name = "Spring Milestones"
	c.Add(renamed)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "maven-central", items[0].ID)
	assert.Equal(t, "Spring Milestones", items[1].Name)
}

func TestConfigurationSiblingsAndNesting(t *testing.T) {
	var c Configuration

	assert.True(t, c.IsEmpty())

	c.Add("jvmTarget", "17")
	c.Configure("args", func(args *Configuration) {
		args.Add("arg", "-Xjsr305=strict")
	})
	c.Configure("args", func(args *Configuration) {
		args.Add("arg", "-Xjvm-default=all")
	})

	nodes := c.Nodes()
	require.Len(t, nodes, 2)
	assert.Equal(t, "jvmTarget", nodes[0].Name)

	require.NotNil(t, nodes[1].Children)
	args := nodes[1].Children.Nodes()
	require.Len(t, args, 2)
	assert.Equal(t, "-Xjsr305=strict", args[0].Value)
	assert.Equal(t, "-Xjvm-default=all", args[1].Value)
}

func TestProfileContainerReturnsExisting(t *testing.T) {
	var c ProfileContainer

	first := c.Add("ci")
	first.Properties().Property("skip.tests", "false")

	again := c.Add("ci")
	assert.Same(t, first, again)

	c.Add("local")

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "ci", items[0].ID())
	assert.Equal(t, "local", items[1].ID())

	assert.Panics(t, func() { c.Add("") })
}

func TestProfileBuildIsEmpty(t *testing.T) {
	var pb ProfileBuild

	assert.True(t, pb.IsEmpty())

	pb.Directory = "target/ci"
	assert.False(t, pb.IsEmpty())
}

func TestActivationIsZero(t *testing.T) {
	var a Activation

	assert.True(t, a.IsZero())

	a.JDK = "17"
	assert.False(t, a.IsZero())
}

func TestScmIsZero(t *testing.T) {
	assert.True(t, Scm{}.IsZero())
	assert.False(t, Scm{Tag: "v1.0"}.IsZero())
}

func TestDistributionManagementIsEmpty(t *testing.T) {
	var dm DistributionManagement

	assert.True(t, dm.IsEmpty())

	dm.DownloadURL = "https://example.com"
	assert.False(t, dm.IsEmpty())
}

func TestBool(t *testing.T) {
	v := Bool(true)

	require.NotNil(t, v)
	assert.True(t, *v)
}
