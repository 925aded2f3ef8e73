//nolint:revive // types is a standard Go package name pattern
package types

// ExperienceItem represents a single position held, with its bullets.
type ExperienceItem struct {
	Title     string   `json:"title,omitempty"`
	Company   string   `json:"company,omitempty"`
	Location  string   `json:"location,omitempty"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
	Bullets   []string `json:"bullets"`
	Skills    []string `json:"skills,omitempty"`
}
