package build

// DeploymentRepository is a repository artifacts are deployed to. It carries
// the two fields the distribution section supports beyond a plain
// repository: layout and uniqueVersion.
type DeploymentRepository struct {
	ID            string
	Name          string
	URL           string
	Layout        string
	UniqueVersion *bool
}

// Site describes where the project site is deployed.
type Site struct {
	ID   string
	Name string
	URL  string
}

// Relocation redirects consumers to the artifact's new coordinates.
type Relocation struct {
	GroupID    string
	ArtifactID string
	Version    string
	Message    string
}

// DistributionManagement describes where and how the project's artifacts are
// published. Every part is independently optional and independently omitted.
type DistributionManagement struct {
	DownloadURL        string
	Repository         *DeploymentRepository
	SnapshotRepository *DeploymentRepository
	Site               *Site
	Relocation         *Relocation
}

// IsEmpty reports whether nothing in the section is set.
func (d *DistributionManagement) IsEmpty() bool {
	return d == nil ||
		(d.DownloadURL == "" && d.Repository == nil && d.SnapshotRepository == nil &&
			d.Site == nil && d.Relocation == nil)
}
