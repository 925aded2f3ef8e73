//nolint:revive // types is a standard Go package name pattern
package types

// EducationItem represents a single school entry.
type EducationItem struct {
	School   string   `json:"school,omitempty"`
	Location string   `json:"location,omitempty"`
	Degree   string   `json:"degree,omitempty"`
	Major    string   `json:"major,omitempty"`
	GPA      string   `json:"gpa,omitempty"`
	Dates    string   `json:"dates,omitempty"`
	Bullets  []string `json:"bullets,omitempty"`
}
