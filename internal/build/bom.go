package build

// DefaultBomOrder is the ordering slot assigned to a bill of materials when
// the caller does not pick one. Explicit lower values serialize earlier,
// higher values later.
const DefaultBomOrder = 100

// BillOfMaterials is an imported dependency-management manifest. It always
// serializes with `type=pom` and `scope=import`.
type BillOfMaterials struct {
	GroupID    string
	ArtifactID string
	Version    VersionReference
	Order      int
}

// NewBom creates a bill of materials with the mandatory coordinates set and
// the default ordering slot. It panics when either coordinate is empty.
func NewBom(groupID, artifactID string) BillOfMaterials {
	mustCoordinates("bom", groupID, artifactID)

	return BillOfMaterials{
		GroupID:    groupID,
		ArtifactID: artifactID,
		Order:      DefaultBomOrder,
	}
}

// BomContainer holds bills of materials keyed by a logical id, preserving
// insertion order. The serializer re-sorts by the numeric Order field.
type BomContainer struct {
	ids   []string
	items map[string]BillOfMaterials
}

// Add registers bom under id, replacing in place when id already exists.
func (c *BomContainer) Add(id string, bom BillOfMaterials) {
	mustCoordinates("bom", bom.GroupID, bom.ArtifactID)

	if c.items == nil {
		c.items = make(map[string]BillOfMaterials)
	}

	if _, ok := c.items[id]; !ok {
		c.ids = append(c.ids, id)
	}

	c.items[id] = bom
}

// Has reports whether id is registered.
func (c *BomContainer) Has(id string) bool {
	_, ok := c.items[id]
	return ok
}

// IsEmpty reports whether the container holds no entries.
func (c *BomContainer) IsEmpty() bool {
	return len(c.ids) == 0
}

// Items returns the bills of materials in insertion order.
func (c *BomContainer) Items() []BillOfMaterials {
	items := make([]BillOfMaterials, 0, len(c.ids))
	for _, id := range c.ids {
		items = append(items, c.items[id])
	}

	return items
}
