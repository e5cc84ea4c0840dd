package build

// ReportSet groups reports of a report plugin under one id.
type ReportSet struct {
	ID            string
	Inherited     string
	Reports       []string
	Configuration *Configuration
}

// ReportPlugin describes a site report plugin.
type ReportPlugin struct {
	GroupID       string
	ArtifactID    string
	Version       string
	Inherited     string
	Configuration *Configuration
	ReportSets    []ReportSet
}

// NewReportPlugin creates a report plugin with the mandatory coordinates
// set. It panics when either coordinate is empty.
func NewReportPlugin(groupID, artifactID string) ReportPlugin {
	mustCoordinates("report plugin", groupID, artifactID)

	return ReportPlugin{GroupID: groupID, ArtifactID: artifactID}
}

// Reporting describes site report generation.
type Reporting struct {
	ExcludeDefaults *bool
	OutputDirectory string
	Plugins         []ReportPlugin
}

// IsEmpty reports whether nothing in the section is set.
func (r *Reporting) IsEmpty() bool {
	return r == nil ||
		(r.ExcludeDefaults == nil && r.OutputDirectory == "" && len(r.Plugins) == 0)
}
