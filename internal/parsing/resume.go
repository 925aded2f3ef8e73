// Package parsing turns extracted resume text into the normalized resume
// record. Section segmentation is heuristic: known heading lines split the
// document, and per-section parsers fill in the record fields.
package parsing

import (
	"strings"

	"github.com/jonathan/resume-tailor/internal/extraction"
	"github.com/jonathan/resume-tailor/internal/types"
)

// ParseFile extracts text from the document at path and parses it into a
// resume record.
func ParseFile(path string) (*types.Resume, error) {
	text, err := extraction.ExtractText(path)
	if err != nil {
		return nil, &ParseError{
			Message: "failed to extract text from " + path,
			Cause:   err,
		}
	}
	return ParseText(text)
}

// ParseText parses already-extracted resume text into a record.
func ParseText(text string) (*types.Resume, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Message: "document contains no extractable text"}
	}

	sections := splitSections(text)
	resume := types.NewResume()
	resume.Contact = parseContact(contactBlock(text))

	if len(sections) == 0 && !hasContactSignal(resume.Contact) {
		return nil, &ParseError{Message: "text too sparse to segment into resume sections"}
	}

	for _, key := range []string{"Summary", "Objective"} {
		if body, ok := sections[key]; ok && resume.Summary == "" {
			resume.Summary = strings.TrimSpace(body)
		}
	}

	for _, key := range []string{"Experience", "Work Experience", "Professional Experience"} {
		if body, ok := sections[key]; ok {
			resume.Experience = parseExperience(body)
			break
		}
	}

	if body, ok := sections["Education"]; ok {
		resume.Education = parseEducation(body)
	}

	if body, ok := sections["Projects"]; ok {
		resume.Projects = parseProjects(body)
	}

	for _, key := range []string{"Technical Skills", "Skills"} {
		if body, ok := sections[key]; ok && len(resume.Skills) == 0 {
			resume.Skills = parseSkills(body)
		}
	}

	for _, key := range []string{"Certifications & Licenses", "Certifications", "Licenses"} {
		if body, ok := sections[key]; ok && len(resume.Certifications) == 0 {
			resume.Certifications = parseLines(body)
		}
	}

	if body, ok := sections["Languages"]; ok {
		resume.Languages = parseLines(body)
	}

	for _, key := range []string{"Volunteer Experience", "Volunteer"} {
		if body, ok := sections[key]; ok && len(resume.Volunteer) == 0 {
			resume.Volunteer = parseProjects(body)
		}
	}

	if err := resume.Validate(); err != nil {
		// Detected fields can trip struct validation (a malformed email,
		// for instance); drop the offending value rather than fail the
		// whole parse, since every field is optional.
		resume.Contact.Email = ""
		if err := resume.Validate(); err != nil {
			return nil, &ValidationError{Message: err.Error()}
		}
	}

	return resume, nil
}
