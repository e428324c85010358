package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_CompilesAllPatterns(t *testing.T) {
	lex := Default()

	require.Len(t, lex.Patterns, len(defaultPatternExprs))
	for i := range lex.Patterns {
		assert.NotNil(t, lex.Patterns[i].Regexp(), "pattern %d not compiled", i)
	}
}

func TestDefault_PositionalWeights(t *testing.T) {
	lex := Default()

	assert.Equal(t, len(lex.Patterns), lex.Patterns[0].Weight)
	assert.Equal(t, 1, lex.Patterns[len(lex.Patterns)-1].Weight)
}

func TestDefault_PatternsAreCaseInsensitive(t *testing.T) {
	lex := Default()

	assert.True(t, lex.Patterns[0].Regexp().MatchString("FinTech payments"))
	assert.True(t, lex.Patterns[0].Regexp().MatchString("fintech payments"))
}

func TestIsStopWord(t *testing.T) {
	lex := Default()

	assert.True(t, lex.IsStopWord("the"))
	assert.True(t, lex.IsStopWord("THE"))
	assert.True(t, lex.IsStopWord("candidate"))
	assert.False(t, lex.IsStopWord("python"))
}

func TestIsHighPriority(t *testing.T) {
	lex := Default()

	assert.True(t, lex.IsHighPriority("python"))
	assert.True(t, lex.IsHighPriority("PYTHON"))
	assert.False(t, lex.IsHighPriority("cobol"))
}

func TestVariationsFor(t *testing.T) {
	lex := Default()

	assert.Contains(t, lex.VariationsFor("javascript"), "nodejs")
	assert.Contains(t, lex.VariationsFor("PostgreSQL"), "postgres")
	assert.Nil(t, lex.VariationsFor("brainfuck"))
}

func TestLoad_CustomLexicon(t *testing.T) {
	path := writeLexiconFile(t, `{
		"patterns": [
			{"pattern": "\\b(erlang|elixir)\\b", "weight": 9},
			{"pattern": "\\b(otp)\\b"}
		],
		"stop_words": ["foo"],
		"variations": {"Elixir": ["ex"]},
		"high_priority_terms": ["erlang"]
	}`)

	lex, err := Load(path)
	require.NoError(t, err)

	require.Len(t, lex.Patterns, 2)
	assert.Equal(t, 9, lex.Patterns[0].Weight)
	// Omitted weight falls back to the positional default
	assert.Equal(t, 1, lex.Patterns[1].Weight)
	assert.True(t, lex.Patterns[0].Regexp().MatchString("Elixir"))

	assert.True(t, lex.IsStopWord("foo"))
	assert.True(t, lex.IsHighPriority("erlang"))
	assert.Contains(t, lex.VariationsFor("elixir"), "ex")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeLexiconFile(t, `{not json`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidPattern(t *testing.T) {
	path := writeLexiconFile(t, `{"patterns": [{"pattern": "([unclosed", "weight": 1}]}`)
	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")
}

func writeLexiconFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lexicon.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
