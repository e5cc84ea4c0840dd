package build

// Resource describes a build resource directory and the patterns applied to
// it. It is reused for test resources.
type Resource struct {
	Directory  string
	TargetPath string
	Filtering  *bool
	Includes   []string
	Excludes   []string
}

// NewResource creates a resource rooted at directory. It panics when
// directory is empty.
func NewResource(directory string) Resource {
	if directory == "" {
		panic("build: resource directory must not be empty")
	}

	return Resource{Directory: directory}
}

// ResourceContainer holds resources in insertion order.
type ResourceContainer struct {
	items []Resource
}

// Add appends r.
func (c *ResourceContainer) Add(r Resource) {
	if r.Directory == "" {
		panic("build: resource directory must not be empty")
	}

	c.items = append(c.items, r)
}

// IsEmpty reports whether the container holds no resources.
func (c *ResourceContainer) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns the resources in insertion order.
func (c *ResourceContainer) Items() []Resource {
	return c.items
}
