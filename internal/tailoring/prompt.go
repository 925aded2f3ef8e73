package tailoring

import (
	"encoding/json"
	"unicode/utf8"

	"github.com/jonathan/resume-tailor/internal/prompts"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Prompt payload caps. The model rewrites content anyway; keeping the input
// compact stays inside context limits on large resumes.
const (
	maxExperienceBullets = 6
	maxProjectBullets    = 4
	maxVolunteerBullets  = 3
	maxSkills            = 40
	maxCertifications    = 10
	maxLanguages         = 10
	maxSummaryChars      = 1200
)

// buildTailoringPrompt constructs the rewrite prompt from the shrunk record,
// the job description, and the record schema.
func buildTailoringPrompt(resume *types.Resume, jobDescription string) (string, error) {
	compact := shrinkForPrompt(resume)
	resumeJSON, err := json.Marshal(compact)
	if err != nil {
		return "", err
	}

	template := prompts.MustGet("tailor-resume")
	return prompts.Format(template, map[string]string{
		"JobDescription": jobDescription,
		"ResumeJSON":     string(resumeJSON),
		"Schema":         schemas.ResumeSchema(),
	}), nil
}

// buildCorrectivePrompt appends the corrective instruction after a response
// failed schema validation.
func buildCorrectivePrompt(basePrompt string, validationErr error) string {
	template := prompts.MustGet("corrective-retry")
	correction := prompts.Format(template, map[string]string{
		"ValidationErrors": validationErr.Error(),
	})
	return basePrompt + "\n\n" + correction
}

// shrinkForPrompt returns a deep copy of the record with list and text
// fields capped for prompt size.
func shrinkForPrompt(resume *types.Resume) *types.Resume {
	compact := *resume

	compact.Experience = make([]types.ExperienceItem, len(resume.Experience))
	copy(compact.Experience, resume.Experience)
	for i := range compact.Experience {
		compact.Experience[i].Bullets = capStrings(compact.Experience[i].Bullets, maxExperienceBullets)
	}

	compact.Projects = make([]types.ProjectItem, len(resume.Projects))
	copy(compact.Projects, resume.Projects)
	for i := range compact.Projects {
		compact.Projects[i].Bullets = capStrings(compact.Projects[i].Bullets, maxProjectBullets)
	}

	compact.Volunteer = make([]types.ProjectItem, len(resume.Volunteer))
	copy(compact.Volunteer, resume.Volunteer)
	for i := range compact.Volunteer {
		compact.Volunteer[i].Bullets = capStrings(compact.Volunteer[i].Bullets, maxVolunteerBullets)
	}

	compact.Skills = capStrings(resume.Skills, maxSkills)
	compact.Certifications = capStrings(resume.Certifications, maxCertifications)
	compact.Languages = capStrings(resume.Languages, maxLanguages)

	if len(compact.Summary) > maxSummaryChars {
		// Back up to a rune boundary so the cut never splits a
		// multi-byte character.
		cut := maxSummaryChars
		for cut > 0 && !utf8.RuneStart(compact.Summary[cut]) {
			cut--
		}
		compact.Summary = compact.Summary[:cut]
	}

	return &compact
}

func capStrings(items []string, max int) []string {
	if items == nil {
		return nil
	}
	if len(items) <= max {
		out := make([]string, len(items))
		copy(out, items)
		return out
	}
	out := make([]string, max)
	copy(out, items[:max])
	return out
}
