package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSections(t *testing.T) {
	text := `Jordan Rivera
jordan@example.com

Summary
Backend engineer with 6 years of experience.

Experience
Senior Engineer — Acme Corp, Austin, TX   Jan 2020 – Present
- Built a billing service

Education
State University
B.S. Computer Science`

	sections := splitSections(text)

	assert.Contains(t, sections, "Summary")
	assert.Contains(t, sections, "Experience")
	assert.Contains(t, sections, "Education")
	assert.Contains(t, sections["Summary"], "Backend engineer")
	assert.Contains(t, sections["Experience"], "Acme Corp")
	assert.NotContains(t, sections["Experience"], "State University")
}

func TestSplitSections_TrailingColonAndCase(t *testing.T) {
	text := "SKILLS:\nGo, Python\n\nwork experience\nEngineer — Acme"

	sections := splitSections(text)

	assert.Contains(t, sections, "Skills")
	assert.Contains(t, sections, "Work Experience")
}

func TestSplitSections_MidSentenceHeadingWordIgnored(t *testing.T) {
	text := "Summary\nI have experience with Go and education in CS."

	sections := splitSections(text)

	assert.Len(t, sections, 1)
	assert.Contains(t, sections, "Summary")
}

func TestSplitSections_EmptyBodyDropped(t *testing.T) {
	text := "Summary\n\nExperience\nEngineer — Acme"

	sections := splitSections(text)

	assert.NotContains(t, sections, "Summary")
	assert.Contains(t, sections, "Experience")
}

func TestContactBlock(t *testing.T) {
	text := "Jordan Rivera\njordan@example.com\n\nExperience\nEngineer"

	top := contactBlock(text)

	assert.Contains(t, top, "Jordan Rivera")
	assert.NotContains(t, top, "Engineer")
}

func TestContactBlock_NoHeadings(t *testing.T) {
	text := "Jordan Rivera\njordan@example.com"
	assert.Equal(t, text, contactBlock(text))
}
