package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidVeksler/ResumeForge/internal/types"
)

func TestValidateResume_Valid(t *testing.T) {
	v := New()

	result := v.ValidateResume(&types.ResumeData{
		Personal: map[string]string{"name": "Ada Lovelace", "email": "ada@example.com"},
	})

	assert.True(t, result.Valid())
	assert.Empty(t, result.Errors)
}

func TestValidateResume_MissingName(t *testing.T) {
	v := New()

	result := v.ValidateResume(&types.ResumeData{
		Personal: map[string]string{"email": "ada@example.com"},
	})

	require.False(t, result.Valid())
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "personal.name", result.Errors[0].Field)
}

func TestValidateResume_MissingEmail(t *testing.T) {
	v := New()

	result := v.ValidateResume(&types.ResumeData{
		Personal: map[string]string{"name": "Ada"},
	})

	require.False(t, result.Valid())
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "personal.email", result.Errors[0].Field)
	assert.Equal(t, "email is required", result.Errors[0].Message)
}

func TestValidateResume_MalformedEmail(t *testing.T) {
	v := New()

	result := v.ValidateResume(&types.ResumeData{
		Personal: map[string]string{"name": "Ada", "email": "not-an-email"},
	})

	require.False(t, result.Valid())
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "personal.email", result.Errors[0].Field)
	assert.Contains(t, result.Errors[0].Message, "invalid email format")
}

func TestValidateResume_AllContactMissing(t *testing.T) {
	v := New()

	result := v.ValidateResume(&types.ResumeData{})

	require.False(t, result.Valid())
	assert.Len(t, result.Errors, 2)
}

func TestValidateResume_NilResume(t *testing.T) {
	v := New()

	result := v.ValidateResume(nil)

	require.False(t, result.Valid())
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "resume", result.Errors[0].Field)
}

func TestValidateResume_SparseSectionsAllowed(t *testing.T) {
	v := New()

	// Only contact info is mandatory; everything else may be absent.
	result := v.ValidateResume(&types.ResumeData{
		Personal: map[string]string{"name": "Ada", "email": "ada@example.com"},
	})
	assert.True(t, result.Valid())
}
