package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

var (
	bulletMarkerRe = regexp.MustCompile(`(?m)^\s*(?:[-•*]|\d+\.)\s+`)
	monthDateRe    = regexp.MustCompile(`(?i)(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\w*\s+\d{4}.*?(Present|\d{4})`)
	eduDatesRe     = regexp.MustCompile(`(?i)(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\w*\s+\d{4}.*?\d{4}|(?i)Expected\s+\w+\s+\d{4}`)
	yearSpanRe     = regexp.MustCompile(`(?:\b20\d{2}\b|\b19\d{2}\b)(?:.*?(?:Present|\b20\d{2}\b|\b19\d{2}\b))?`)
	gpaRe          = regexp.MustCompile(`(?i)\bGPA[:\s]+([\d.]+/?[\d.]*)`)
	titleSplitRe   = regexp.MustCompile(`\s+—\s+| - `)
	dashSplitRe    = regexp.MustCompile(`\s*[–—-]\s*`)
)

// parseBullets splits a block into bullet strings on bullet markers or
// newlines, dropping empty fragments.
func parseBullets(block string) []string {
	marked := bulletMarkerRe.ReplaceAllString(block, "\n")
	parts := strings.Split(marked, "\n")

	bullets := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) > 1 {
			bullets = append(bullets, p)
		}
	}
	return bullets
}

// splitChunks breaks a section body into entries separated by blank lines.
func splitChunks(block string) []string {
	var chunks []string
	for _, c := range regexp.MustCompile(`\n\s*\n`).Split(block, -1) {
		if c = strings.TrimSpace(c); c != "" {
			chunks = append(chunks, c)
		}
	}
	return chunks
}

// parseExperience parses an experience section body. Each blank-line
// separated chunk is one position: a header line of the shape
// "Title — Company, City ST   Jan 2022 – Present" followed by bullets.
func parseExperience(block string) []types.ExperienceItem {
	chunks := splitChunks(block)
	items := make([]types.ExperienceItem, 0, len(chunks))

	for _, chunk := range chunks {
		lines := strings.Split(chunk, "\n")
		header := lines[0]

		item := types.ExperienceItem{Bullets: []string{}}

		titleCompany := titleSplitRe.Split(header, 2)
		if len(titleCompany) > 0 {
			item.Title = strings.TrimSpace(titleCompany[0])
		}
		if len(titleCompany) > 1 {
			company := strings.TrimSpace(titleCompany[1])
			// Drop a trailing date range from the company segment
			if m := monthDateRe.FindStringIndex(company); m != nil {
				company = strings.TrimSpace(strings.TrimRight(company[:m[0]], " \t,"))
			}
			item.Company = company
		}

		if loc := locationRe.FindString(header); loc != "" {
			item.Location = strings.TrimSpace(loc)
			item.Company = strings.TrimSpace(strings.TrimSuffix(item.Company, item.Location))
			item.Company = strings.TrimRight(item.Company, " ,")
		}

		if date := monthDateRe.FindString(header); date != "" {
			bounds := dashSplitRe.Split(date, 2)
			item.StartDate = strings.TrimSpace(bounds[0])
			if len(bounds) > 1 {
				item.EndDate = strings.TrimSpace(bounds[1])
			} else if strings.Contains(date, "Present") {
				item.EndDate = "Present"
			}
		}

		if len(lines) > 1 {
			item.Bullets = parseBullets(strings.Join(lines[1:], "\n"))
		}
		items = append(items, item)
	}
	return items
}

// parseEducation parses an education section body: first line is the
// school, second the degree line, the rest bullets.
func parseEducation(block string) []types.EducationItem {
	chunks := splitChunks(block)
	items := make([]types.EducationItem, 0, len(chunks))

	for _, chunk := range chunks {
		lines := strings.Split(chunk, "\n")

		item := types.EducationItem{
			School: strings.TrimSpace(lines[0]),
		}
		if len(lines) > 1 {
			item.Degree = strings.TrimSpace(lines[1])
		}
		if m := gpaRe.FindStringSubmatch(chunk); m != nil {
			item.GPA = m[1]
		}
		item.Dates = strings.TrimSpace(eduDatesRe.FindString(chunk))
		if loc := locationRe.FindString(chunk); loc != "" {
			item.Location = strings.TrimSpace(loc)
		}
		if len(lines) > 2 {
			item.Bullets = parseBullets(strings.Join(lines[2:], "\n"))
		}
		items = append(items, item)
	}
	return items
}

// parseProjects parses project-shaped sections (Projects, Volunteer):
// header line is the name, rest bullets.
func parseProjects(block string) []types.ProjectItem {
	chunks := splitChunks(block)
	items := make([]types.ProjectItem, 0, len(chunks))

	for _, chunk := range chunks {
		lines := strings.Split(chunk, "\n")

		item := types.ProjectItem{
			Name:    strings.TrimSpace(lines[0]),
			Bullets: []string{},
		}
		if loc := locationRe.FindString(lines[0]); loc != "" {
			item.Location = strings.TrimSpace(loc)
		}
		item.Dates = strings.TrimSpace(yearSpanRe.FindString(chunk))
		if len(lines) > 1 {
			item.Bullets = parseBullets(strings.Join(lines[1:], "\n"))
		}
		items = append(items, item)
	}
	return items
}

// parseSkills splits a skills block on commas, pipes, and newlines.
func parseSkills(block string) []string {
	parts := regexp.MustCompile(`[,|\n]`).Split(block, -1)
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}

// parseLines returns one entry per non-empty line with leading bullet
// markers stripped. Used for certifications and languages.
func parseLines(block string) []string {
	var entries []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-•* "))
		if line != "" {
			entries = append(entries, line)
		}
	}
	return entries
}
