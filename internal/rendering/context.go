package rendering

import (
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// EducationSection is one education entry formatted for templates.
type EducationSection struct {
	SchoolLine string // "State University — Austin, TX"
	DegreeLine string // "B.S. | Computer Science | GPA: 3.8"
	DatesLine  string
	Bullets    []string
}

// ExperienceSection is one position formatted for templates.
type ExperienceSection struct {
	HeaderCompany    string // "Acme Corp — Austin, TX"
	HeaderTitleDates string // "Senior Engineer     Jan 2020 – Present"
	Bullets          []string
}

// ProjectSection is one project or volunteer entry formatted for templates.
type ProjectSection struct {
	Header  string
	Bullets []string
}

// BuildContext flattens a resume record into the template context. Every
// key is always present — missing record fields become empty strings, empty
// lists, and false Has* flags — so templates never fail on absent data.
func BuildContext(resume *types.Resume) map[string]any {
	c := resume.Contact

	ctx := map[string]any{
		"ContactName":  c.Name,
		"ContactLine":  joinNonEmpty([]string{c.Location, c.Phone, c.Email}, " | "),
		"ContactLinks": joinNonEmpty([]string{c.LinkedIn, c.GitHub, c.Website}, " | "),

		"HasSummary": resume.Summary != "",
		"Summary":    resume.Summary,

		"SkillsLine": strings.Join(resume.Skills, ", "),
		"HasSkills":  len(resume.Skills) > 0,

		"CertificationLines": append([]string{}, resume.Certifications...),
		"HasCertifications":  len(resume.Certifications) > 0,

		"LanguagesLine": strings.Join(resume.Languages, ", "),
		"HasLanguages":  len(resume.Languages) > 0,
	}

	experience := make([]ExperienceSection, 0, len(resume.Experience))
	for _, e := range resume.Experience {
		experience = append(experience, formatExperience(e))
	}
	ctx["ExperienceItems"] = experience
	ctx["HasExperience"] = len(experience) > 0

	education := make([]EducationSection, 0, len(resume.Education))
	for _, ed := range resume.Education {
		education = append(education, formatEducation(ed))
	}
	ctx["EducationItems"] = education
	ctx["HasEducation"] = len(education) > 0

	projects := make([]ProjectSection, 0, len(resume.Projects))
	for _, p := range resume.Projects {
		projects = append(projects, formatProject(p))
	}
	ctx["ProjectItems"] = projects
	ctx["HasProjects"] = len(projects) > 0

	volunteer := make([]ProjectSection, 0, len(resume.Volunteer))
	for _, v := range resume.Volunteer {
		volunteer = append(volunteer, formatProject(v))
	}
	ctx["VolunteerItems"] = volunteer
	ctx["HasVolunteer"] = len(volunteer) > 0

	return ctx
}

func formatExperience(e types.ExperienceItem) ExperienceSection {
	dates := e.StartDate
	if e.StartDate != "" || e.EndDate != "" {
		end := e.EndDate
		if end == "" {
			end = "Present"
		}
		dates = joinNonEmpty([]string{e.StartDate, end}, " – ")
	}

	return ExperienceSection{
		HeaderCompany:    joinNonEmpty([]string{e.Company, e.Location}, " — "),
		HeaderTitleDates: joinNonEmpty([]string{e.Title, dates}, "     "),
		Bullets:          append([]string{}, e.Bullets...),
	}
}

func formatEducation(ed types.EducationItem) EducationSection {
	degreeBits := []string{ed.Degree, ed.Major}
	if ed.GPA != "" {
		degreeBits = append(degreeBits, "GPA: "+ed.GPA)
	}

	return EducationSection{
		SchoolLine: joinNonEmpty([]string{ed.School, ed.Location}, " — "),
		DegreeLine: joinNonEmpty(degreeBits, " | "),
		DatesLine:  ed.Dates,
		Bullets:    append([]string{}, ed.Bullets...),
	}
}

func formatProject(p types.ProjectItem) ProjectSection {
	header := joinNonEmpty([]string{p.Name, p.Location}, " — ")
	header = joinNonEmpty([]string{header, p.Dates}, "     ")

	return ProjectSection{
		Header:  header,
		Bullets: append([]string{}, p.Bullets...),
	}
}

func joinNonEmpty(parts []string, sep string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, sep)
}
