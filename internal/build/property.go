package build

// Property is a single name/value pair.
type Property struct {
	Name  string
	Value string
}

// PropertyContainer is an insertion-ordered mapping of property names to
// string values. Re-adding a name replaces the value but keeps the original
// position.
type PropertyContainer struct {
	entries []Property
	index   map[string]int
}

// Property sets name to value. It returns the container for chaining.
func (c *PropertyContainer) Property(name, value string) *PropertyContainer {
	if c.index == nil {
		c.index = make(map[string]int)
	}

	if i, ok := c.index[name]; ok {
		c.entries[i].Value = value
		return c
	}

	c.index[name] = len(c.entries)
	c.entries = append(c.entries, Property{Name: name, Value: value})

	return c
}

// Version sets a version property. Both internal and external version
// properties serialize identically to plain properties.
func (c *PropertyContainer) Version(prop VersionProperty, version string) *PropertyContainer {
	return c.Property(prop.Name, version)
}

// IsEmpty reports whether the container holds no properties.
func (c *PropertyContainer) IsEmpty() bool {
	return len(c.entries) == 0
}

// Items returns the properties in insertion order.
func (c *PropertyContainer) Items() []Property {
	return c.entries
}

// Get returns the value for name.
func (c *PropertyContainer) Get(name string) (string, bool) {
	if c.index == nil {
		return "", false
	}

	i, ok := c.index[name]
	if !ok {
		return "", false
	}

	return c.entries[i].Value, true
}

// Bool returns a pointer to v. It keeps assembly of the model's tri-state
// flags (filtering, extensions, snapshots) readable.
func Bool(v bool) *bool {
	return &v
}
