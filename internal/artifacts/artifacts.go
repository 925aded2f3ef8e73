// Package artifacts handles the on-disk JSON artifacts passed between
// pipeline stages. All writes are atomic (temp file + rename) so a failed
// stage never leaves a partial artifact behind.
package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
)

// WriteFileAtomic writes data to path via a temp file in the same directory
// followed by a rename.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file for %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to move %s into place: %w", path, err)
	}
	return nil
}

// SaveResume validates the record against the resume schema and writes it
// as indented JSON.
func SaveResume(path string, resume *types.Resume) error {
	data, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal resume record: %w", err)
	}

	if err := schemas.ValidateResumeJSON(string(data)); err != nil {
		return fmt.Errorf("record does not validate against the resume schema: %w", err)
	}

	return WriteFileAtomic(path, data)
}

// LoadResume reads a resume record JSON artifact, validates it against the
// schema, and normalizes its list fields.
func LoadResume(path string) (*types.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := schemas.ValidateResumeJSON(string(data)); err != nil {
		return nil, fmt.Errorf("%s does not validate against the resume schema: %w", path, err)
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	resume.Normalize()
	return &resume, nil
}
