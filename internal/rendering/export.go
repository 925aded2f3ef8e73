// Package rendering produces the final output document by substituting
// resume record fields into a document template. DOCX templates use
// placeholder replacement; any other template is treated as text/template.
package rendering

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-tailor/internal/artifacts"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Export renders resume through the template at templatePath and writes the
// result to outPath. An existing file at outPath is only replaced when
// overwrite is set. Writes are atomic: no partial output is left behind on
// failure.
func Export(resume *types.Resume, templatePath, outPath string, overwrite bool) error {
	if _, err := os.Stat(outPath); err == nil && !overwrite {
		return &ExportError{
			Message: "output file already exists (use --force to overwrite): " + outPath,
		}
	}

	if strings.ToLower(filepath.Ext(templatePath)) == ".docx" {
		return exportDocx(resume, templatePath, outPath)
	}

	rendered, err := RenderText(resume, templatePath)
	if err != nil {
		return err
	}

	if err := artifacts.WriteFileAtomic(outPath, []byte(rendered)); err != nil {
		return &ExportError{
			Message: "failed to write output document: " + outPath,
			Cause:   err,
		}
	}
	return nil
}

// exportDocx renders into a temp file next to outPath and renames it into
// place, so a failed render never clobbers an existing document.
func exportDocx(resume *types.Resume, templatePath, outPath string) error {
	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &ExportError{
			Message: "failed to create output directory: " + dir,
			Cause:   err,
		}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(outPath)+".tmp-*")
	if err != nil {
		return &ExportError{
			Message: "output path is not writable: " + outPath,
			Cause:   err,
		}
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()

	if err := RenderDocx(resume, templatePath, tmpPath); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return &ExportError{
			Message: "failed to write output document: " + outPath,
			Cause:   err,
		}
	}
	return nil
}
