// Package ordering provides the pluggable dependency orderings used by the
// pom serializer.
//
// Only the <dependencies> list accepts a comparator; every other repeated
// section of the manifest keeps a fixed rule (insertion order, or the
// numeric order key for bills of materials) that no comparator can change.
package ordering

import "github.com/pomgen/pomgen/internal/build"

// Comparator is a total order over dependencies. Negative means a before b,
// positive means b before a, zero keeps insertion order (sorting is stable).
type Comparator func(a, b build.Dependency) int

// Platform identifies the dependency namespace the generated project is
// built on, so its starters can be grouped ahead of third-party entries.
type Platform struct {
	// GroupID is the platform's group namespace.
	GroupID string
	// RootArtifactID is the platform's root starter artifact.
	RootArtifactID string
}

// SpringBoot is the platform the generator targets by default.
var SpringBoot = Platform{
	GroupID:        "org.springframework.boot",
	RootArtifactID: "spring-boot-starter",
}

// Tiered returns the default comparator: the platform's own root starter
// first, then the rest of the platform namespace, then everything else.
// Entries within a tier keep their insertion order.
func Tiered(p Platform) Comparator {
	return func(a, b build.Dependency) int {
		return tier(p, a) - tier(p, b)
	}
}

func tier(p Platform, d build.Dependency) int {
	switch {
	case d.GroupID == p.GroupID && d.ArtifactID == p.RootArtifactID:
		return 0
	case d.GroupID == p.GroupID:
		return 1
	default:
		return 2
	}
}

// ByArtifactID orders dependencies alphabetically by artifact id. It is the
// usual comparator override for projects that want a flat alphabetical list.
func ByArtifactID(a, b build.Dependency) int {
	switch {
	case a.ArtifactID < b.ArtifactID:
		return -1
	case a.ArtifactID > b.ArtifactID:
		return 1
	default:
		return 0
	}
}

// ByCoordinates orders by group id, then artifact id.
func ByCoordinates(a, b build.Dependency) int {
	switch {
	case a.GroupID < b.GroupID:
		return -1
	case a.GroupID > b.GroupID:
		return 1
	default:
		return ByArtifactID(a, b)
	}
}
