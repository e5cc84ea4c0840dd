// Package build holds the in-memory model of one Maven project manifest.
//
// The model is assembled once per generation request through the accessors
// below, then handed whole to the pom serializer, which treats it as
// read-only. Containers preserve insertion order; that order is a semantic
// guarantee the serializer relies on.
package build

// Build is the root of the model: project settings plus every repeated
// section of the manifest.
type Build struct {
	settings               Settings
	properties             PropertyContainer
	dependencies           DependencyContainer
	boms                   BomContainer
	resources              ResourceContainer
	testResources          ResourceContainer
	plugins                PluginContainer
	repositories           RepositoryContainer
	pluginRepositories     RepositoryContainer
	distributionManagement DistributionManagement
	profiles               ProfileContainer
}

// New creates an empty build model.
func New() *Build {
	return &Build{}
}

// Settings returns the project settings for mutation.
func (b *Build) Settings() *Settings { return &b.settings }

// Properties returns the property container for mutation.
func (b *Build) Properties() *PropertyContainer { return &b.properties }

// Dependencies returns the container of project dependencies.
func (b *Build) Dependencies() *DependencyContainer { return &b.dependencies }

// Boms returns the container of imported bills of materials.
func (b *Build) Boms() *BomContainer { return &b.boms }

// Resources returns the container of main resources.
func (b *Build) Resources() *ResourceContainer { return &b.resources }

// TestResources returns the container of test resources.
func (b *Build) TestResources() *ResourceContainer { return &b.testResources }

// Plugins returns the container of build plugins.
func (b *Build) Plugins() *PluginContainer { return &b.plugins }

// Repositories returns the container of artifact repositories.
func (b *Build) Repositories() *RepositoryContainer { return &b.repositories }

// PluginRepositories returns the container of plugin repositories.
func (b *Build) PluginRepositories() *RepositoryContainer { return &b.pluginRepositories }

// DistributionManagement returns the distribution block for mutation.
func (b *Build) DistributionManagement() *DistributionManagement { return &b.distributionManagement }

// Profiles returns the container of profiles.
func (b *Build) Profiles() *ProfileContainer { return &b.profiles }
