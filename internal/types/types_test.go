package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkills_UnmarshalFlatCategories(t *testing.T) {
	var skills Skills
	err := json.Unmarshal([]byte(`{
		"languages": ["python", "go"],
		"databases": ["postgresql"]
	}`), &skills)
	require.NoError(t, err)

	require.Len(t, skills, 2)
	assert.Equal(t, "languages", skills[0].Name)
	assert.Equal(t, []string{"python", "go"}, skills[0].Category.Flat)
	assert.False(t, skills[0].Category.IsLeveled())
	assert.Equal(t, "databases", skills[1].Name)
}

func TestSkills_UnmarshalLeveledCategory(t *testing.T) {
	var skills Skills
	err := json.Unmarshal([]byte(`{
		"languages": {"expert": ["go"], "familiar": ["haskell"]}
	}`), &skills)
	require.NoError(t, err)

	require.Len(t, skills, 1)
	cat := skills[0].Category
	require.True(t, cat.IsLeveled())
	require.Len(t, cat.Levels, 2)
	assert.Equal(t, "expert", cat.Levels[0].Name)
	assert.Equal(t, []string{"go"}, cat.Levels[0].Skills)
	assert.Equal(t, "familiar", cat.Levels[1].Name)
}

func TestSkills_RoundTripPreservesOrder(t *testing.T) {
	input := `{"zeta":["a"],"alpha":["b"],"mid":{"core":["c"]}}`

	var skills Skills
	require.NoError(t, json.Unmarshal([]byte(input), &skills))

	out, err := json.Marshal(skills)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
	// JSONEq ignores key order; check it literally too.
	assert.Equal(t, input, string(out))
}

func TestSkills_UnmarshalNull(t *testing.T) {
	var skills Skills
	require.NoError(t, json.Unmarshal([]byte(`null`), &skills))
	assert.Nil(t, skills)
}

func TestSkills_UnmarshalRejectsArray(t *testing.T) {
	var skills Skills
	err := json.Unmarshal([]byte(`["python"]`), &skills)
	assert.Error(t, err)
}

func TestSkillCategory_UnmarshalRejectsScalar(t *testing.T) {
	var cat SkillCategory
	err := json.Unmarshal([]byte(`"python"`), &cat)
	assert.Error(t, err)
}

func TestHasMetrics(t *testing.T) {
	assert.False(t, (&Achievement{}).HasMetrics())
	assert.False(t, (&Achievement{Metrics: &Metrics{}}).HasMetrics())
	assert.True(t, (&Achievement{Metrics: &Metrics{Value: 40}}).HasMetrics())
	assert.True(t, (&Achievement{Metrics: &Metrics{Type: "percent"}}).HasMetrics())
}

func TestParseResumeData_ValidObject(t *testing.T) {
	resume, err := ParseResumeData([]byte(`{
		"personal": {"name": "Ada"},
		"experience": [{"title": "Engineer", "achievements": [{"text": "did"}]}]
	}`))
	require.NoError(t, err)

	assert.Equal(t, "Ada", resume.Personal["name"])
	require.Len(t, resume.Experience, 1)
	assert.Equal(t, "did", resume.Experience[0].Achievements[0].Text)
}

func TestParseResumeData_RejectsNonObject(t *testing.T) {
	for _, payload := range []string{`[]`, `"resume"`, `42`, `null`, ``, `   `} {
		_, err := ParseResumeData([]byte(payload))
		require.Error(t, err, "payload %q", payload)

		var invalid *InvalidInputError
		assert.True(t, errors.As(err, &invalid), "payload %q", payload)
	}
}

func TestParseResumeData_MalformedJSONWrapsCause(t *testing.T) {
	_, err := ParseResumeData([]byte(`{"personal": `))
	require.Error(t, err)

	var invalid *InvalidInputError
	require.True(t, errors.As(err, &invalid))
	assert.Error(t, invalid.Cause)
	assert.ErrorContains(t, err, "malformed resume data")
}

func TestClone_Independence(t *testing.T) {
	original := &ResumeData{
		Personal: map[string]string{"name": "Ada"},
		Summary:  &Summary{Headline: "Engineer", Bullets: []string{"one"}},
		Experience: []Experience{{
			Title: "Dev",
			Achievements: []Achievement{{
				Text:     "did",
				Keywords: []string{"go"},
				Metrics:  &Metrics{Value: 3, Type: "x"},
			}},
		}},
		Skills: Skills{
			{Name: "langs", Category: SkillCategory{Flat: []string{"go"}}},
		},
		Keywords: map[string][]string{"bucket": {"kw"}},
	}

	clone := original.Clone()
	require.NotNil(t, clone)
	assert.Equal(t, original, clone)

	clone.Personal["name"] = "Grace"
	clone.Summary.Bullets[0] = "changed"
	clone.Experience[0].Achievements[0].Keywords[0] = "rust"
	clone.Experience[0].Achievements[0].Metrics.Value = 99
	clone.Skills[0].Category.Flat[0] = "zig"
	clone.Keywords["bucket"][0] = "changed"

	assert.Equal(t, "Ada", original.Personal["name"])
	assert.Equal(t, "one", original.Summary.Bullets[0])
	assert.Equal(t, "go", original.Experience[0].Achievements[0].Keywords[0])
	assert.Equal(t, 3.0, original.Experience[0].Achievements[0].Metrics.Value)
	assert.Equal(t, "go", original.Skills[0].Category.Flat[0])
	assert.Equal(t, "kw", original.Keywords["bucket"][0])
}

func TestClone_Nil(t *testing.T) {
	var resume *ResumeData
	assert.Nil(t, resume.Clone())
}
