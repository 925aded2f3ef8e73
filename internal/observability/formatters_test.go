package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintResume(t *testing.T) {
	resume := types.NewResume()
	resume.Contact.Name = "Jordan Rivera"
	resume.Contact.Email = "jordan@example.com"
	resume.Experience = []types.ExperienceItem{
		{Company: "Acme", Bullets: []string{"a", "b"}},
	}
	resume.Skills = []string{"Go", "Python", "Kubernetes", "PostgreSQL", "Docker", "Terraform"}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintResume("Parsed resume", resume)

	out := buf.String()
	assert.Contains(t, out, "Parsed resume")
	assert.Contains(t, out, "Jordan Rivera")
	assert.Contains(t, out, "1 positions (2 bullets)")
	assert.Contains(t, out, "Skills:     6")
	assert.Contains(t, out, "...")
}

func TestPrintResume_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResume("x", nil)
	assert.Zero(t, buf.Len())
}

func TestPrintTailorDiff(t *testing.T) {
	before := types.NewResume()
	before.Summary = "old"
	after := types.NewResume()
	after.Summary = "new"
	after.Skills = []string{"Go"}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintTailorDiff(before, after)

	out := buf.String()
	assert.Contains(t, out, "Summary rewritten:  true")
	assert.Contains(t, out, "Skills:             0 -> 1")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).printBox("Title", strings.Repeat("x", 200))
	assert.Contains(t, buf.String(), "...")
}
