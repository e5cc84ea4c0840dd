package build

// Configuration is a small untyped document fragment attached to a plugin or
// report for tool-specific settings: an insertion-ordered sequence of named
// nodes, each either a leaf text value or a nested fragment. Repeated leaves
// under the same name inside a nested fragment become sibling elements, which
// is how list-valued settings (`<args><arg>..</arg><arg>..</arg></args>`) are
// expressed.
type Configuration struct {
	nodes []ConfigNode
}

// ConfigNode is one entry of a Configuration: a leaf when Children is nil, a
// nested fragment otherwise.
type ConfigNode struct {
	Name     string
	Value    string
	Children *Configuration
}

// Add appends a leaf node. Adding the same name twice produces two sibling
// nodes; insertion order is a semantic guarantee.
func (c *Configuration) Add(name, value string) *Configuration {
	c.nodes = append(c.nodes, ConfigNode{Name: name, Value: value})
	return c
}

// Configure descends into the nested fragment called name, creating it when
// absent, and applies fn to it. Calling Configure twice with the same name
// re-enters the existing fragment.
func (c *Configuration) Configure(name string, fn func(*Configuration)) *Configuration {
	for i := range c.nodes {
		if c.nodes[i].Name == name && c.nodes[i].Children != nil {
			fn(c.nodes[i].Children)
			return c
		}
	}

	child := &Configuration{}
	c.nodes = append(c.nodes, ConfigNode{Name: name, Children: child})
	fn(child)

	return c
}

// IsEmpty reports whether the fragment holds no nodes.
func (c *Configuration) IsEmpty() bool {
	return c == nil || len(c.nodes) == 0
}

// Nodes returns the nodes in insertion order.
func (c *Configuration) Nodes() []ConfigNode {
	if c == nil {
		return nil
	}

	return c.nodes
}
