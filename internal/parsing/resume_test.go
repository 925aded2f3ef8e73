package parsing

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResumeText = `Jordan Rivera
Austin, TX | 555-123-4567 | jordan@example.com
linkedin.com/in/jordanrivera | github.com/jrivera

Summary
Backend engineer with 6 years of experience building data pipelines.

Experience
Senior Engineer — Acme Corp, Austin, TX   Jan 2020 – Present
- Built a Python billing service processing 2M events/day
- Designed a distributed job scheduler

Engineer — Initech   Jun 2017 – Dec 2019
- Maintained a legacy monolith

Education
State University
B.S. Computer Science
Aug 2013 - May 2017

Technical Skills
Go, Python, Kubernetes, PostgreSQL

Languages
- English (native)
- Spanish (conversational)`

func TestParseText_FullResume(t *testing.T) {
	resume, err := ParseText(sampleResumeText)
	require.NoError(t, err)

	assert.Equal(t, "Jordan Rivera", resume.Contact.Name)
	assert.Equal(t, "jordan@example.com", resume.Contact.Email)
	assert.Equal(t, "555-123-4567", resume.Contact.Phone)
	assert.Contains(t, resume.Contact.LinkedIn, "linkedin.com/in/jordanrivera")
	assert.Contains(t, resume.Contact.GitHub, "github.com/jrivera")

	assert.Contains(t, resume.Summary, "Backend engineer")

	require.Len(t, resume.Experience, 2)
	assert.Equal(t, "Senior Engineer", resume.Experience[0].Title)
	require.Len(t, resume.Experience[0].Bullets, 2)

	require.Len(t, resume.Education, 1)
	assert.Contains(t, resume.Education[0].School, "State University")

	assert.Equal(t, []string{"Go", "Python", "Kubernetes", "PostgreSQL"}, resume.Skills)
	assert.Equal(t, []string{"English (native)", "Spanish (conversational)"}, resume.Languages)
}

func TestParseText_RoundTrip(t *testing.T) {
	resume, err := ParseText(sampleResumeText)
	require.NoError(t, err)

	data, err := json.Marshal(resume)
	require.NoError(t, err)

	var decoded types.Resume
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *resume, decoded)

	data2, err := json.Marshal(&decoded)
	require.NoError(t, err)
	assert.Equal(t, data, data2)
}

func TestParseText_Empty(t *testing.T) {
	_, err := ParseText("   \n\n  ")
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Error(), "no extractable text")
}

func TestParseText_TooSparse(t *testing.T) {
	_, err := ParseText("just a name\nand some words with no structure")
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Error(), "sparse")
}

func TestParseText_ContactOnlyIsEnough(t *testing.T) {
	resume, err := ParseText("Jordan Rivera\njordan@example.com")
	require.NoError(t, err)
	assert.Equal(t, "jordan@example.com", resume.Contact.Email)
	assert.Empty(t, resume.Experience)
}

func TestParseFile_TXT(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleResumeText), 0644))

	resume, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Jordan Rivera", resume.Contact.Name)
}

func TestParseFile_UnsupportedFormat(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "resume.odt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	_, err := ParseFile(path)
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}
