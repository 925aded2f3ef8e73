// Package tailoring rewrites a resume record against a job description via
// an LLM call. The service response is untrusted: it is validated against
// the record schema before re-entering the pipeline, with one corrective
// retry on validation failure.
package tailoring

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
)

// TailorResume rewrites resume to emphasize relevance to jobDescription.
// The input record is not mutated; a new record is returned. The policy is
// deterministic: one call, one corrective retry on schema-validation
// failure, then a TailorError.
func TailorResume(ctx context.Context, client llm.Client, resume *types.Resume, jobDescription string) (*types.Resume, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, &TailorError{Message: "job description is empty"}
	}

	// Ensure the input conforms before sending it anywhere
	inputJSON, err := json.Marshal(resume)
	if err != nil {
		return nil, &TailorError{Message: "failed to serialize resume record", Cause: err}
	}
	if err := schemas.ValidateResumeJSON(string(inputJSON)); err != nil {
		return nil, &TailorError{Message: "input record does not match the resume schema", Cause: err}
	}

	prompt, err := buildTailoringPrompt(resume, jobDescription)
	if err != nil {
		return nil, &TailorError{Message: "failed to build prompt", Cause: err}
	}

	response, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &TailorError{Message: "text-generation service call failed", Cause: err}
	}

	tailored, validationErr := decodeResponse(response)
	if validationErr == nil {
		return tailored, nil
	}

	// One corrective retry with the validation errors spelled out
	retryPrompt := buildCorrectivePrompt(prompt, validationErr)
	response, err = client.GenerateJSON(ctx, retryPrompt, llm.TierStandard)
	if err != nil {
		return nil, &TailorError{Message: "text-generation service call failed on retry", Cause: err}
	}

	tailored, validationErr = decodeResponse(response)
	if validationErr != nil {
		return nil, &TailorError{
			Message: "service response failed schema validation after corrective retry",
			Cause:   validationErr,
		}
	}
	return tailored, nil
}

// decodeResponse validates the raw service response against the record
// schema and decodes it. Schema validation runs on the raw JSON first, so
// fields the schema does not define are rejected rather than silently
// dropped by json.Unmarshal.
func decodeResponse(response string) (*types.Resume, error) {
	cleaned := llm.CleanJSONBlock(response)

	if err := schemas.ValidateResumeJSON(cleaned); err != nil {
		return nil, err
	}

	var tailored types.Resume
	if err := json.Unmarshal([]byte(cleaned), &tailored); err != nil {
		return nil, err
	}

	tailored.Normalize()
	return &tailored, nil
}
