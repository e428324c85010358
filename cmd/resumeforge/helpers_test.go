package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadJobDescription_FromFile(t *testing.T) {
	path := writeFile(t, "job.txt", "Required: Python and AWS.")

	text, err := loadJobDescription(path, "", false)
	require.NoError(t, err)
	assert.Equal(t, "Required: Python and AWS.", text)
}

func TestLoadJobDescription_MissingFile(t *testing.T) {
	_, err := loadJobDescription(filepath.Join(t.TempDir(), "nope.txt"), "", false)
	assert.Error(t, err)
}

func TestLoadJobDescription_FromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<h1>Backend Engineer</h1><p>Required: Python.</p>"))
	}))
	defer srv.Close()

	text, err := loadJobDescription("", srv.URL, false)
	require.NoError(t, err)
	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "Required: Python.")
}

func TestLoadLexicon_DefaultWhenEmpty(t *testing.T) {
	lex, err := loadLexicon("")
	require.NoError(t, err)
	assert.NotEmpty(t, lex.Patterns)
}

func TestLoadLexicon_CustomFile(t *testing.T) {
	path := writeFile(t, "lexicon.json", `{"patterns": [{"pattern": "\\b(zig)\\b", "weight": 4}]}`)

	lex, err := loadLexicon(path)
	require.NoError(t, err)
	require.Len(t, lex.Patterns, 1)
	assert.Equal(t, 4, lex.Patterns[0].Weight)
}

func TestLoadResume(t *testing.T) {
	path := writeFile(t, "resume.json", `{
		"personal": {"name": "Ada", "email": "ada@example.com"},
		"skills": {"languages": ["python"]}
	}`)

	resume, err := loadResume(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada", resume.Personal["name"])
}

func TestLoadResume_SchemaViolation(t *testing.T) {
	// Achievements must carry text; schema validation rejects this
	// before parsing.
	path := writeFile(t, "resume.json", `{
		"experience": [{"achievements": [{"keywords": ["go"]}]}]
	}`)

	_, err := loadResume(path)
	assert.Error(t, err)
}

func TestLoadResume_NotJSON(t *testing.T) {
	path := writeFile(t, "resume.json", `[1, 2, 3]`)

	_, err := loadResume(path)
	assert.Error(t, err)
}
