package model

// SearchResult is one listing item extracted from a source's search page,
// tagged with the repack group it came from. Date and Version are mutually
// exclusive: which one is populated depends on the source's schema.
type SearchResult struct {
	Name    string `json:"name"`
	Date    string `json:"date,omitempty"`
	Version string `json:"version,omitempty"`
	Repack  string `json:"repack"`
	URL     string `json:"url,omitempty"`
	Source  string `json:"source"`
}
