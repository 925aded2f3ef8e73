package rendering

import (
	"testing"

	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullResume() *types.Resume {
	r := types.NewResume()
	r.Contact = types.Contact{
		Name:     "Jordan Rivera",
		Email:    "jordan@example.com",
		Phone:    "555-123-4567",
		Location: "Austin, TX",
		LinkedIn: "linkedin.com/in/jordanrivera",
	}
	r.Summary = "Backend engineer."
	r.Experience = []types.ExperienceItem{
		{
			Title:     "Senior Engineer",
			Company:   "Acme Corp",
			Location:  "Austin, TX",
			StartDate: "Jan 2020",
			EndDate:   "Present",
			Bullets:   []string{"Built a billing service"},
		},
	}
	r.Education = []types.EducationItem{
		{School: "State University", Degree: "B.S.", Major: "Computer Science", GPA: "3.8"},
	}
	r.Skills = []string{"Go", "Python"}
	return r
}

func TestBuildContext_FullRecord(t *testing.T) {
	ctx := BuildContext(fullResume())

	assert.Equal(t, "Jordan Rivera", ctx["ContactName"])
	assert.Equal(t, "Austin, TX | 555-123-4567 | jordan@example.com", ctx["ContactLine"])
	assert.Equal(t, "linkedin.com/in/jordanrivera", ctx["ContactLinks"])

	assert.Equal(t, true, ctx["HasSummary"])
	assert.Equal(t, "Backend engineer.", ctx["Summary"])
	assert.Equal(t, "Go, Python", ctx["SkillsLine"])

	experience := ctx["ExperienceItems"].([]ExperienceSection)
	require.Len(t, experience, 1)
	assert.Equal(t, "Acme Corp — Austin, TX", experience[0].HeaderCompany)
	assert.Contains(t, experience[0].HeaderTitleDates, "Senior Engineer")
	assert.Contains(t, experience[0].HeaderTitleDates, "Jan 2020 – Present")

	education := ctx["EducationItems"].([]EducationSection)
	require.Len(t, education, 1)
	assert.Equal(t, "State University", education[0].SchoolLine)
	assert.Equal(t, "B.S. | Computer Science | GPA: 3.8", education[0].DegreeLine)
}

func TestBuildContext_EmptyRecord(t *testing.T) {
	ctx := BuildContext(types.NewResume())

	// Every key exists with zero values; nothing is missing
	assert.Equal(t, "", ctx["ContactName"])
	assert.Equal(t, false, ctx["HasSummary"])
	assert.Equal(t, "", ctx["Summary"])
	assert.Equal(t, false, ctx["HasExperience"])
	assert.Empty(t, ctx["ExperienceItems"])
	assert.Equal(t, false, ctx["HasSkills"])
	assert.Equal(t, "", ctx["SkillsLine"])
	assert.Equal(t, false, ctx["HasVolunteer"])
}

func TestBuildContext_OngoingRoleDefaultsToPresent(t *testing.T) {
	r := types.NewResume()
	r.Experience = []types.ExperienceItem{{Title: "Engineer", StartDate: "Jun 2021", Bullets: []string{}}}

	ctx := BuildContext(r)
	experience := ctx["ExperienceItems"].([]ExperienceSection)
	assert.Contains(t, experience[0].HeaderTitleDates, "Jun 2021 – Present")
}

func TestStringContext(t *testing.T) {
	ctx := stringContext(BuildContext(fullResume()))

	assert.Equal(t, "Jordan Rivera", ctx["ContactName"])
	assert.Equal(t, "true", ctx["HasSummary"])
	assert.Contains(t, ctx["ExperienceItems"], "Acme Corp — Austin, TX")
	assert.Contains(t, ctx["ExperienceItems"], "• Built a billing service")
	assert.Contains(t, ctx["EducationItems"], "State University")
}

func TestEscapeLaTeX(t *testing.T) {
	assert.Equal(t, `50\% \& \$10`, EscapeLaTeX(`50% & $10`))
	assert.Equal(t, `a\_b`, EscapeLaTeX(`a_b`))
	assert.Equal(t, "", EscapeLaTeX(""))
}
