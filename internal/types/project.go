//nolint:revive // types is a standard Go package name pattern
package types

// ProjectItem represents a project or volunteer entry. Volunteer sections
// reuse this shape since they carry the same name/dates/bullets structure.
type ProjectItem struct {
	Name     string   `json:"name,omitempty"`
	Location string   `json:"location,omitempty"`
	Dates    string   `json:"dates,omitempty"`
	Bullets  []string `json:"bullets"`
	Skills   []string `json:"skills,omitempty"`
}
