package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// InvalidInputError indicates that the supplied resume data is not a
// map-like structure. It is the only error the scoring engine raises;
// sparse or partially valid resumes are tolerated, not rejected.
type InvalidInputError struct {
	Message string
	Cause   error
}

func (e *InvalidInputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid resume input: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid resume input: %s", e.Message)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Cause
}

// ParseResumeData decodes raw JSON into a ResumeData. A payload whose
// top level is not a JSON object yields an *InvalidInputError.
func ParseResumeData(data []byte) (*ResumeData, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &InvalidInputError{Message: "empty payload"}
	}
	if trimmed[0] != '{' {
		return nil, &InvalidInputError{Message: "resume data must be a JSON object"}
	}

	var resume ResumeData
	if err := json.Unmarshal(trimmed, &resume); err != nil {
		return nil, &InvalidInputError{Message: "malformed resume data", Cause: err}
	}
	return &resume, nil
}
