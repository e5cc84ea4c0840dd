package build

// LicenseDistribution is the primary way a licensed artifact may be
// distributed.
type LicenseDistribution string

// Recognized distribution modes. The empty value suppresses the element.
const (
	DistributionRepo   LicenseDistribution = "repo"
	DistributionManual LicenseDistribution = "manual"
)

// License describes a project license. Every field is optional; absent
// fields suppress the corresponding sub-element.
type License struct {
	Name         string
	URL          string
	Distribution LicenseDistribution
	Comments     string
}

// Developer describes a project developer. Roles and Properties are omitted
// entirely from the output when empty.
type Developer struct {
	ID              string
	Name            string
	Email           string
	URL             string
	Organization    string
	OrganizationURL string
	Timezone        string
	Roles           []string
	Properties      []Property
}

// Parent points at the parent pom the project inherits from. Group and
// artifact ids are mandatory.
type Parent struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// Scm describes the project's source-control locations.
type Scm struct {
	Connection          string
	DeveloperConnection string
	Tag                 string
	URL                 string
}

// IsZero reports whether no scm field is set.
func (s Scm) IsZero() bool {
	return s == Scm{}
}

// Settings carries the project-level values of the pom: coordinates,
// identity, parent, scm, licenses, developers, and the build scalars that
// live directly under <build>. Version falls back to DefaultVersion at
// serialization time when left empty.
type Settings struct {
	GroupID     string
	ArtifactID  string
	Version     string
	Name        string
	Description string
	Packaging   string

	Parent     *Parent
	Scm        Scm
	Licenses   []License
	Developers []Developer

	DefaultGoal         string
	FinalName           string
	SourceDirectory     string
	TestSourceDirectory string
}

// Coordinates sets the mandatory group and artifact ids. It panics when
// either is empty.
func (s *Settings) Coordinates(groupID, artifactID string) *Settings {
	mustCoordinates("project", groupID, artifactID)

	s.GroupID = groupID
	s.ArtifactID = artifactID

	return s
}

// SetParent records the parent pom coordinates. It panics when either
// mandatory coordinate is empty.
func (s *Settings) SetParent(groupID, artifactID, version string) *Settings {
	mustCoordinates("parent", groupID, artifactID)

	s.Parent = &Parent{GroupID: groupID, ArtifactID: artifactID, Version: version}

	return s
}
