package tailoring

import "fmt"

// TailorError represents a failure to produce a tailored resume record:
// a missing or empty job description, a text-generation service failure, or
// a service response that does not validate against the record schema.
type TailorError struct {
	Message string
	Cause   error
}

func (e *TailorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("tailor error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("tailor error: %s", e.Message)
}

func (e *TailorError) Unwrap() error {
	return e.Cause
}
