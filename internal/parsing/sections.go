package parsing

import (
	"strings"
)

// sectionHeaders are the heading lines recognized as section boundaries.
// Matching is exact (case-insensitive) on the whole line, with a trailing
// colon ignored, so bullet text mentioning "experience" mid-sentence never
// starts a new section.
var sectionHeaders = []string{
	"Contact Information",
	"Summary",
	"Objective",
	"Experience",
	"Work Experience",
	"Professional Experience",
	"Education",
	"Projects",
	"Skills",
	"Technical Skills",
	"Certifications",
	"Licenses",
	"Certifications & Licenses",
	"Languages",
	"Volunteer",
	"Volunteer Experience",
}

// normalizeHeading strips a trailing colon and surrounding whitespace.
func normalizeHeading(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimSuffix(line, ":")
	return strings.TrimSpace(line)
}

// isSectionHeader reports whether a line is one of the known headings,
// and returns the canonical heading text.
func isSectionHeader(line string) (string, bool) {
	stripped := normalizeHeading(line)
	for _, h := range sectionHeaders {
		if strings.EqualFold(stripped, h) {
			return h, true
		}
	}
	return "", false
}

// splitSections segments resume text into canonical-heading -> body blocks.
// Text above the first heading is not included; callers read the contact
// block from the raw text separately.
func splitSections(text string) map[string]string {
	lines := strings.Split(text, "\n")

	type headerPos struct {
		index   int
		heading string
	}
	var headers []headerPos
	for i, line := range lines {
		if heading, ok := isSectionHeader(line); ok {
			headers = append(headers, headerPos{index: i, heading: heading})
		}
	}

	sections := make(map[string]string, len(headers))
	for i, h := range headers {
		end := len(lines)
		if i+1 < len(headers) {
			end = headers[i+1].index
		}
		body := strings.TrimSpace(strings.Join(lines[h.index+1:end], "\n"))
		if body != "" {
			sections[h.heading] = body
		}
	}
	return sections
}

// contactBlock returns the text above the first recognized heading.
// When no heading exists the whole text is the contact block.
func contactBlock(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if _, ok := isSectionHeader(line); ok {
			return strings.Join(lines[:i], "\n")
		}
	}
	return text
}
