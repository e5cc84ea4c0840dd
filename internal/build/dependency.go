package build

// DependencyScope classifies when a dependency is available and whether it is
// packaged. The zero value is treated as ScopeCompile.
type DependencyScope string

// The enumerated dependency scopes. The serializer maps each to zero, one, or
// two physical pom fields; any other value is a fatal configuration error.
const (
	ScopeCompile             DependencyScope = "compile"
	ScopeRuntime             DependencyScope = "runtime"
	ScopeProvidedRuntime     DependencyScope = "provided-runtime"
	ScopeTestCompile         DependencyScope = "test-compile"
	ScopeTestRuntime         DependencyScope = "test-runtime"
	ScopeAnnotationProcessor DependencyScope = "annotation-processor"
	ScopeCompileOnly         DependencyScope = "compile-only"
)

// Exclusion names a transitive dependency to exclude.
type Exclusion struct {
	GroupID    string
	ArtifactID string
}

// Dependency describes a single project dependency. Group and artifact ids
// are mandatory; construct through NewDependency so the invariant holds.
type Dependency struct {
	GroupID    string
	ArtifactID string
	Version    VersionReference
	Scope      DependencyScope
	Classifier string
	Type       string
	Optional   *bool
	Exclusions []Exclusion
}

// NewDependency creates a dependency with the mandatory coordinates set.
// It panics when either coordinate is empty; missing coordinates are a
// programming error, not a recoverable condition.
func NewDependency(groupID, artifactID string) Dependency {
	mustCoordinates("dependency", groupID, artifactID)

	return Dependency{GroupID: groupID, ArtifactID: artifactID}
}

// DependencyContainer holds dependencies keyed by a caller-supplied logical
// id. Insertion order is preserved; re-adding an id replaces the dependency
// in place. The id itself is never serialized.
type DependencyContainer struct {
	ids   []string
	items map[string]Dependency
}

// Add registers d under id.
func (c *DependencyContainer) Add(id string, d Dependency) {
	mustCoordinates("dependency", d.GroupID, d.ArtifactID)

	if c.items == nil {
		c.items = make(map[string]Dependency)
	}

	if _, ok := c.items[id]; !ok {
		c.ids = append(c.ids, id)
	}

	c.items[id] = d
}

// Get returns the dependency registered under id.
func (c *DependencyContainer) Get(id string) (Dependency, bool) {
	d, ok := c.items[id]
	return d, ok
}

// Has reports whether id is registered.
func (c *DependencyContainer) Has(id string) bool {
	_, ok := c.items[id]
	return ok
}

// IsEmpty reports whether the container holds no dependencies.
func (c *DependencyContainer) IsEmpty() bool {
	return len(c.ids) == 0
}

// Items returns the dependencies in insertion order.
func (c *DependencyContainer) Items() []Dependency {
	items := make([]Dependency, 0, len(c.ids))
	for _, id := range c.ids {
		items = append(items, c.items[id])
	}

	return items
}

func mustCoordinates(kind, groupID, artifactID string) {
	if groupID == "" {
		panic("build: " + kind + " group id must not be empty")
	}

	if artifactID == "" {
		panic("build: " + kind + " artifact id must not be empty")
	}
}
