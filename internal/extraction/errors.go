package extraction

import "fmt"

// UnsupportedFormatError indicates the input file extension has no extractor.
type UnsupportedFormatError struct {
	Path      string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type %q for %s (use .pdf, .docx, .txt, or .html)", e.Extension, e.Path)
}

// ReadError indicates the input file could not be read or decoded.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}
