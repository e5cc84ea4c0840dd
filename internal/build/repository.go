package build

// MavenCentral is the implicit default repository. It may be added to a
// container like any other repository, but the serializer never emits it:
// every Maven build resolves against central without declaring it.
var MavenCentral = Repository{
	ID:   "maven-central",
	Name: "Maven Central",
	URL:  "https://repo.maven.apache.org/maven2",
}

// Repository describes an artifact or plugin repository. SnapshotsEnabled is
// tri-state: only an explicit value produces the nested
// <snapshots><enabled> block.
type Repository struct {
	ID               string
	Name             string
	URL              string
	SnapshotsEnabled *bool
}

// NewRepository creates a repository with the mandatory id and url set. It
// panics when either is empty.
func NewRepository(id, url string) Repository {
	if id == "" {
		panic("build: repository id must not be empty")
	}

	if url == "" {
		panic("build: repository url must not be empty")
	}

	return Repository{ID: id, URL: url}
}

// RepositoryContainer holds repositories keyed by id in insertion order.
type RepositoryContainer struct {
	ids   []string
	items map[string]Repository
}

// Add registers r, replacing in place when its id already exists.
func (c *RepositoryContainer) Add(r Repository) {
	if r.ID == "" {
		panic("build: repository id must not be empty")
	}

	if c.items == nil {
		c.items = make(map[string]Repository)
	}

	if _, ok := c.items[r.ID]; !ok {
		c.ids = append(c.ids, r.ID)
	}

	c.items[r.ID] = r
}

// Has reports whether id is registered.
func (c *RepositoryContainer) Has(id string) bool {
	_, ok := c.items[id]
	return ok
}

// IsEmpty reports whether the container holds no repositories.
func (c *RepositoryContainer) IsEmpty() bool {
	return len(c.ids) == 0
}

// Items returns the repositories in insertion order.
func (c *RepositoryContainer) Items() []Repository {
	items := make([]Repository, 0, len(c.ids))
	for _, id := range c.ids {
		items = append(items, c.items[id])
	}

	return items
}
