//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// Resume is the normalized resume record shared by all pipeline stages.
// The parser produces it, the tailor rewrites it, and the exporter consumes
// it. List fields keep their document order.
type Resume struct {
	Contact        Contact           `json:"contact"`
	Summary        string            `json:"summary,omitempty"`
	Experience     []ExperienceItem  `json:"experience"`
	Education      []EducationItem   `json:"education"`
	Projects       []ProjectItem     `json:"projects,omitempty"`
	Skills         []string          `json:"skills"`
	Certifications []string          `json:"certifications,omitempty"`
	Languages      []string          `json:"languages,omitempty"`
	Volunteer      []ProjectItem     `json:"volunteer,omitempty"`
	Meta           map[string]string `json:"meta,omitempty"`
}

// NewResume returns a Resume with all list fields initialized, so that a
// freshly parsed record marshals with empty arrays instead of null.
func NewResume() *Resume {
	return &Resume{
		Experience: []ExperienceItem{},
		Education:  []EducationItem{},
		Skills:     []string{},
	}
}

// Validate validates the Resume using the validator.
func (r *Resume) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Normalize ensures the list fields that always serialize are non-nil.
// Records deserialized from hand-edited JSON may carry nulls there.
func (r *Resume) Normalize() {
	if r.Experience == nil {
		r.Experience = []ExperienceItem{}
	}
	if r.Education == nil {
		r.Education = []EducationItem{}
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	for i := range r.Experience {
		if r.Experience[i].Bullets == nil {
			r.Experience[i].Bullets = []string{}
		}
	}
	for i := range r.Projects {
		if r.Projects[i].Bullets == nil {
			r.Projects[i].Bullets = []string{}
		}
	}
	for i := range r.Volunteer {
		if r.Volunteer[i].Bullets == nil {
			r.Volunteer[i].Bullets = []string{}
		}
	}
}
