package db

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizationRun_JSONShape(t *testing.T) {
	run := OptimizationRun{
		ID:             uuid.MustParse("3b4b1db8-0c2f-4c7a-9a51-000000000001"),
		JobDescription: "Required: Python.",
		RoleKeywords:   []string{"python"},
		DefaultScore:   40.5,
		OptimizedScore: 62.0,
		Resume:         json.RawMessage(`{"personal":{"name":"Ada"}}`),
	}

	out, err := json.Marshal(run)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))

	assert.Equal(t, "3b4b1db8-0c2f-4c7a-9a51-000000000001", decoded["id"])
	assert.Equal(t, "Required: Python.", decoded["job_description"])
	assert.Equal(t, 40.5, decoded["default_score"])
	// Raw payloads embed as objects, not strings.
	_, ok := decoded["resume"].(map[string]any)
	assert.True(t, ok)
}

func TestErrRunNotFound(t *testing.T) {
	assert.EqualError(t, ErrRunNotFound, "optimization run not found")
}
