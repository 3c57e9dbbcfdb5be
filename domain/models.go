package domain

import "context"

// Sentinel values written to the report when a field's true value is unknown.
const (
	// OriginUnknown is the Origin value for dependencies with no repository
	// information in the scanner output or the override table.
	OriginUnknown = "NO REPO"

	// LicenseUnknown is the License value for dependencies whose metadata
	// carries no licenses field.
	LicenseUnknown = "LICENSE NOT FOUND"
)

// DependencyGraph maps scanner dependency keys ("name@version") to their
// metadata, exactly as the scanner reports them.
type DependencyGraph map[string]DependencyMetadata

// DependencyMetadata is the per-dependency object in the scanner's JSON
// output. All fields are optional.
type DependencyMetadata struct {
	Repository  string       `json:"repository,omitempty"`
	Licenses    LicenseValue `json:"licenses,omitempty"`
	LicenseFile string       `json:"licenseFile,omitempty"`
}

// Record is one row of the consolidated report.
type Record struct {
	Component string
	Origin    string
	License   string
	Copyright string
}

// BareName returns the dependency name portion of a "name@version" key:
// the substring before the first "@".
func BareName(key string) string {
	for i := 0; i < len(key); i++ {
		if key[i] == '@' {
			return key[:i]
		}
	}
	return key
}

// GraphFetcher produces the production dependency graph, typically by
// invoking an external scanner process.
type GraphFetcher interface {
	FetchGraph(ctx context.Context) (DependencyGraph, error)
}

// FileReader reads license files referenced by scanner metadata. It exists
// so the extraction logic can be tested without touching the filesystem.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}
