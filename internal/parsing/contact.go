package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

var (
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe    = regexp.MustCompile(`(?:\+1\s*)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	locationRe = regexp.MustCompile(`[A-Za-z][A-Za-z.\s]+,\s*[A-Za-z]{2}\b`)
	websiteRe  = regexp.MustCompile(`https?://\S+|www\.\S+|\S+\.com\b`)
	linkedinRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/\S+`)
	githubRe   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/\S+`)
)

// parseContact extracts contact details from the text above the first
// section heading. The first non-empty line is taken as the name; the rest
// is scanned with per-field patterns.
func parseContact(top string) types.Contact {
	contact := types.Contact{}

	for _, line := range strings.Split(top, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			contact.Name = trimmed
			break
		}
	}

	contact.Email = emailRe.FindString(top)
	contact.Phone = phoneRe.FindString(top)
	contact.LinkedIn = linkedinRe.FindString(top)
	contact.GitHub = githubRe.FindString(top)

	// Location and website patterns are loose; skip matches that are
	// really the email or a code-hosting link.
	if loc := locationRe.FindString(top); loc != "" && !strings.Contains(contact.Email, loc) {
		contact.Location = strings.TrimSpace(loc)
	}
	for _, candidate := range websiteRe.FindAllString(top, -1) {
		if strings.Contains(candidate, "@") ||
			strings.Contains(strings.ToLower(candidate), "linkedin.com") ||
			strings.Contains(strings.ToLower(candidate), "github.com") {
			continue
		}
		contact.Website = candidate
		break
	}

	return contact
}

// hasContactSignal reports whether the contact block produced anything
// stronger than a bare name. Used by the sparse-input check.
func hasContactSignal(c types.Contact) bool {
	return c.Email != "" || c.Phone != "" || c.LinkedIn != "" || c.GitHub != "" || c.Website != ""
}
