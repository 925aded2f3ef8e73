package rendering

import (
	"os"
	"strings"
	"text/template"

	"github.com/jonathan/resume-tailor/internal/types"
)

// RenderText renders a text-based template (plain text, Markdown, LaTeX)
// against the record's template context. A template referencing a context
// key that does not exist fails with an ExportError rather than rendering
// a hole: the context map is complete, so "missingkey=error" only fires on
// fields outside the schema.
func RenderText(resume *types.Resume, templatePath string) (string, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &TemplateError{
				Message: "template file not found: " + templatePath,
				Cause:   err,
			}
		}
		return "", &TemplateError{
			Message: "failed to read template file: " + templatePath,
			Cause:   err,
		}
	}

	tmpl, err := template.New("resume").
		Option("missingkey=error").
		Funcs(template.FuncMap{
			"escape": EscapeLaTeX,
			"join":   strings.Join,
		}).
		Parse(string(content))
	if err != nil {
		return "", &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, BuildContext(resume)); err != nil {
		return "", &ExportError{
			Message: "template references a field the resume schema does not define",
			Cause:   err,
		}
	}

	return result.String(), nil
}
