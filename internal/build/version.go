package build

// DefaultVersion is used for the project version when the caller never sets
// one.
const DefaultVersion = "0.0.1-SNAPSHOT"

// VersionReference points at a version, either as a literal value or as a
// reference to a build property. Property references render as `${name}` and
// are passed through verbatim; pomgen never resolves placeholders.
type VersionReference struct {
	value    string
	property string
}

// Version returns a reference to a literal version value.
func Version(value string) VersionReference {
	return VersionReference{value: value}
}

// VersionFromProperty returns a reference to the property with the given
// name.
func VersionFromProperty(name string) VersionReference {
	return VersionReference{property: name}
}

// IsZero reports whether the reference points at nothing.
func (v VersionReference) IsZero() bool {
	return v.value == "" && v.property == ""
}

// IsProperty reports whether the reference resolves through a property.
func (v VersionReference) IsProperty() bool {
	return v.property != ""
}

// String renders the reference the way it appears in the pom: the literal
// value, or `${name}` for a property reference.
func (v VersionReference) String() string {
	if v.property != "" {
		return "${" + v.property + "}"
	}

	return v.value
}

// VersionProperty names a property that carries a version. Internal marks
// properties managed by the generator itself rather than supplied by the
// caller; the flag is provenance only and does not change how the property
// serializes.
type VersionProperty struct {
	Name     string
	Internal bool
}
