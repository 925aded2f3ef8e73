package rendering

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/nguyenthenguyen/docx"
)

var placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// RenderDocx fills a DOCX template's {{Key}} placeholders from the record's
// template context and writes the result to outPath. Placeholders naming a
// key outside the context are an ExportError; keys with no data render as
// empty text.
func RenderDocx(resume *types.Resume, templatePath, outPath string) error {
	doc, err := docx.ReadDocxFile(templatePath)
	if err != nil {
		return &TemplateError{
			Message: "failed to read DOCX template: " + templatePath,
			Cause:   err,
		}
	}
	defer func() { _ = doc.Close() }()

	editable := doc.Editable()
	ctx := stringContext(BuildContext(resume))

	// Validate every placeholder before touching the document
	content := editable.GetContent()
	for _, match := range placeholderRe.FindAllStringSubmatch(content, -1) {
		key := match[1]
		if _, known := ctx[key]; !known {
			return &ExportError{
				Message: fmt.Sprintf("template references undefined field %q", key),
			}
		}
	}

	for key, value := range ctx {
		if err := editable.Replace("{{"+key+"}}", value, -1); err != nil {
			return &ExportError{
				Message: fmt.Sprintf("failed to substitute field %q", key),
				Cause:   err,
			}
		}
	}

	if err := editable.WriteToFile(outPath); err != nil {
		return &ExportError{
			Message: "failed to write output document: " + outPath,
			Cause:   err,
		}
	}
	return nil
}

// stringContext flattens the template context to plain strings for
// placeholder substitution. Section lists become blank-line separated
// blocks with bullet markers.
func stringContext(ctx map[string]any) map[string]string {
	out := make(map[string]string, len(ctx))
	for key, value := range ctx {
		switch v := value.(type) {
		case string:
			out[key] = v
		case bool:
			out[key] = fmt.Sprintf("%t", v)
		case []string:
			out[key] = strings.Join(v, "\n")
		case []ExperienceSection:
			blocks := make([]string, 0, len(v))
			for _, s := range v {
				blocks = append(blocks, sectionBlock([]string{s.HeaderCompany, s.HeaderTitleDates}, s.Bullets))
			}
			out[key] = strings.Join(blocks, "\n\n")
		case []EducationSection:
			blocks := make([]string, 0, len(v))
			for _, s := range v {
				blocks = append(blocks, sectionBlock([]string{s.SchoolLine, s.DegreeLine, s.DatesLine}, s.Bullets))
			}
			out[key] = strings.Join(blocks, "\n\n")
		case []ProjectSection:
			blocks := make([]string, 0, len(v))
			for _, s := range v {
				blocks = append(blocks, sectionBlock([]string{s.Header}, s.Bullets))
			}
			out[key] = strings.Join(blocks, "\n\n")
		default:
			out[key] = fmt.Sprintf("%v", v)
		}
	}
	return out
}

func sectionBlock(headerLines []string, bullets []string) string {
	lines := make([]string, 0, len(headerLines)+len(bullets))
	for _, h := range headerLines {
		if h != "" {
			lines = append(lines, h)
		}
	}
	for _, b := range bullets {
		lines = append(lines, "• "+b)
	}
	return strings.Join(lines, "\n")
}
