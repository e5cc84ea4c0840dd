package build

// Execution binds plugin goals to a lifecycle phase.
type Execution struct {
	ID            string
	Phase         string
	Goals         []string
	Configuration *Configuration
}

// PluginDependency is a dependency of the plugin itself rather than of the
// project. Its version is a plain string so property placeholders pass
// through verbatim.
type PluginDependency struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// Plugin describes a build plugin.
type Plugin struct {
	GroupID       string
	ArtifactID    string
	Version       string
	Extensions    *bool
	Executions    []Execution
	Dependencies  []PluginDependency
	Configuration *Configuration
}

// NewPlugin creates a plugin with the mandatory coordinates set. It panics
// when either coordinate is empty.
func NewPlugin(groupID, artifactID string) Plugin {
	mustCoordinates("plugin", groupID, artifactID)

	return Plugin{GroupID: groupID, ArtifactID: artifactID}
}

// PluginContainer holds plugins keyed by group:artifact coordinates in
// insertion order. Re-adding a coordinate pair replaces the plugin in place.
type PluginContainer struct {
	keys  []string
	items map[string]Plugin
}

// Add registers p.
func (c *PluginContainer) Add(p Plugin) {
	mustCoordinates("plugin", p.GroupID, p.ArtifactID)

	key := p.GroupID + ":" + p.ArtifactID

	if c.items == nil {
		c.items = make(map[string]Plugin)
	}

	if _, ok := c.items[key]; !ok {
		c.keys = append(c.keys, key)
	}

	c.items[key] = p
}

// Has reports whether a plugin with the given coordinates is registered.
func (c *PluginContainer) Has(groupID, artifactID string) bool {
	_, ok := c.items[groupID+":"+artifactID]
	return ok
}

// IsEmpty reports whether the container holds no plugins.
func (c *PluginContainer) IsEmpty() bool {
	return c == nil || len(c.keys) == 0
}

// Items returns the plugins in insertion order.
func (c *PluginContainer) Items() []Plugin {
	if c == nil {
		return nil
	}

	items := make([]Plugin, 0, len(c.keys))
	for _, key := range c.keys {
		items = append(items, c.items[key])
	}

	return items
}
