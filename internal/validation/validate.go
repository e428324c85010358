// Package validation checks required resume fields before optimization.
// This is deliberately outside the scoring engine: the engine tolerates
// sparse resumes, while this collaborator decides whether a resume is
// complete enough to submit anywhere.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/DavidVeksler/ResumeForge/internal/types"
)

// contactInfo is the validated view of the personal section.
type contactInfo struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

// FieldError describes one failed field check.
type FieldError struct {
	Field   string
	Message string
}

// Result collects all field errors from one validation pass.
type Result struct {
	Errors []FieldError
}

// Valid reports whether the resume passed every check.
func (r *Result) Valid() bool {
	return len(r.Errors) == 0
}

// Validator runs field-presence and format checks over resume data.
type Validator struct {
	validate *validator.Validate
}

// New creates a resume validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// ValidateResume checks required personal fields (name present, email
// present and well-formed). Missing sections elsewhere are allowed; the
// engine scores whatever is present.
func (v *Validator) ValidateResume(resume *types.ResumeData) *Result {
	result := &Result{}
	if resume == nil {
		result.Errors = append(result.Errors, FieldError{Field: "resume", Message: "resume data is required"})
		return result
	}

	contact := contactInfo{
		Name:  resume.Personal["name"],
		Email: resume.Personal["email"],
	}

	err := v.validate.Struct(contact)
	if err == nil {
		return result
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		result.Errors = append(result.Errors, FieldError{Field: "personal", Message: err.Error()})
		return result
	}

	for _, fieldErr := range validationErrors {
		switch fieldErr.Field() {
		case "Name":
			result.Errors = append(result.Errors, FieldError{
				Field:   "personal.name",
				Message: "name is required",
			})
		case "Email":
			message := "email is required"
			if fieldErr.Tag() == "email" {
				message = fmt.Sprintf("invalid email format: %s", contact.Email)
			}
			result.Errors = append(result.Errors, FieldError{
				Field:   "personal.email",
				Message: message,
			})
		}
	}

	return result
}
