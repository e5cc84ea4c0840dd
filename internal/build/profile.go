package build

// ActivationOS matches an operating system.
type ActivationOS struct {
	Name    string
	Family  string
	Arch    string
	Version string
}

// ActivationProperty matches a system property value.
type ActivationProperty struct {
	Name  string
	Value string
}

// ActivationFile activates on the presence or absence of a file.
type ActivationFile struct {
	Exists  string
	Missing string
}

// Activation describes when a profile becomes active. Each trigger is
// independently optional within the block.
type Activation struct {
	ActiveByDefault *bool
	JDK             string
	OS              *ActivationOS
	Property        *ActivationProperty
	File            *ActivationFile
}

// IsZero reports whether no trigger is set.
func (a *Activation) IsZero() bool {
	return a == nil ||
		(a.ActiveByDefault == nil && a.JDK == "" && a.OS == nil && a.Property == nil && a.File == nil)
}

// ProfileBuild is the build sub-tree a profile may override. It mirrors the
// top-level build section plus the profile-only directory override.
type ProfileBuild struct {
	DefaultGoal string
	Directory   string
	FinalName   string
	Filters     []string

	resources        ResourceContainer
	testResources    ResourceContainer
	pluginManagement PluginContainer
	plugins          PluginContainer
}

// Resources returns the container of main resources.
func (b *ProfileBuild) Resources() *ResourceContainer { return &b.resources }

// TestResources returns the container of test resources.
func (b *ProfileBuild) TestResources() *ResourceContainer { return &b.testResources }

// PluginManagement returns the container of managed plugins.
func (b *ProfileBuild) PluginManagement() *PluginContainer { return &b.pluginManagement }

// Plugins returns the container of build plugins.
func (b *ProfileBuild) Plugins() *PluginContainer { return &b.plugins }

// IsEmpty reports whether nothing in the sub-tree is set.
func (b *ProfileBuild) IsEmpty() bool {
	return b == nil ||
		(b.DefaultGoal == "" && b.Directory == "" && b.FinalName == "" && len(b.Filters) == 0 &&
			b.resources.IsEmpty() && b.testResources.IsEmpty() &&
			b.pluginManagement.IsEmpty() && b.plugins.IsEmpty())
}

// Profile is a conditionally-activatable overlay of the build. Its sub-trees
// are structurally identical to the top-level equivalents and fully
// independent per profile; the serializer applies the same omission and
// ordering rules inside each profile that it applies at the top level.
type Profile struct {
	id string

	activation             Activation
	build                  ProfileBuild
	modules                []string
	repositories           RepositoryContainer
	pluginRepositories     RepositoryContainer
	dependencies           DependencyContainer
	dependencyManagement   BomContainer
	reporting              Reporting
	distributionManagement DistributionManagement
	properties             PropertyContainer
}

// ID returns the profile id.
func (p *Profile) ID() string { return p.id }

// Activation returns the activation block for mutation.
func (p *Profile) Activation() *Activation { return &p.activation }

// Build returns the profile build sub-tree for mutation.
func (p *Profile) Build() *ProfileBuild { return &p.build }

// Module appends a module name.
func (p *Profile) Module(name string) *Profile {
	p.modules = append(p.modules, name)
	return p
}

// Modules returns the module names in insertion order.
func (p *Profile) Modules() []string { return p.modules }

// Repositories returns the container of artifact repositories.
func (p *Profile) Repositories() *RepositoryContainer { return &p.repositories }

// PluginRepositories returns the container of plugin repositories.
func (p *Profile) PluginRepositories() *RepositoryContainer { return &p.pluginRepositories }

// Dependencies returns the container of dependencies.
func (p *Profile) Dependencies() *DependencyContainer { return &p.dependencies }

// DependencyManagement returns the container of bills of materials.
func (p *Profile) DependencyManagement() *BomContainer { return &p.dependencyManagement }

// Reporting returns the reporting block for mutation.
func (p *Profile) Reporting() *Reporting { return &p.reporting }

// DistributionManagement returns the distribution block for mutation.
func (p *Profile) DistributionManagement() *DistributionManagement { return &p.distributionManagement }

// Properties returns the property container for mutation.
func (p *Profile) Properties() *PropertyContainer { return &p.properties }

// ProfileContainer holds profiles keyed by id in insertion order.
type ProfileContainer struct {
	ids   []string
	items map[string]*Profile
}

// Add returns the profile registered under id, creating it on first use so
// callers can populate it in place.
func (c *ProfileContainer) Add(id string) *Profile {
	if id == "" {
		panic("build: profile id must not be empty")
	}

	if c.items == nil {
		c.items = make(map[string]*Profile)
	}

	if p, ok := c.items[id]; ok {
		return p
	}

	p := &Profile{id: id}
	c.ids = append(c.ids, id)
	c.items[id] = p

	return p
}

// IsEmpty reports whether the container holds no profiles.
func (c *ProfileContainer) IsEmpty() bool {
	return len(c.ids) == 0
}

// Items returns the profiles in insertion order.
func (c *ProfileContainer) Items() []*Profile {
	items := make([]*Profile, 0, len(c.ids))
	for _, id := range c.ids {
		items = append(items, c.items[id])
	}

	return items
}
