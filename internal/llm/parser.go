package llm

import (
	"context"
	"fmt"

	"github.com/DavidVeksler/ResumeForge/internal/types"
)

const parsePromptTemplate = `Convert the following resume text into JSON with this exact structure:
{
  "personal": {"name": "", "email": "", "phone": "", "location": ""},
  "summary": {"headline": "", "bullets": []},
  "experience": [{"title": "", "company": "", "location": "", "duration": "", "description": "", "achievements": [{"text": "", "keywords": [], "metrics": {"value": 0, "type": ""}}]}],
  "skills": {"technical": {"expert": [], "proficient": []}},
  "education": [{"degree": "", "school": "", "duration": "", "description": ""}],
  "projects": [{"name": "", "description": "", "keywords": [], "technologies": []}]
}
Rules:
- Use only information present in the resume text; never invent content.
- Omit the "metrics" field for achievements without quantified results.
- Tag each achievement with the technologies and skills it demonstrates.
- Output only the JSON object, no commentary.

Resume text:
%s`

// ParseResume converts free-text resume content into structured
// ResumeData using the model client. Malformed model output surfaces as
// the same *types.InvalidInputError a bad upload would.
func ParseResume(ctx context.Context, client Client, resumeText string) (*types.ResumeData, error) {
	if resumeText == "" {
		return nil, fmt.Errorf("resume text is empty")
	}

	raw, err := client.GenerateJSON(ctx, fmt.Sprintf(parsePromptTemplate, resumeText))
	if err != nil {
		return nil, fmt.Errorf("resume parse request failed: %w", err)
	}

	resume, err := types.ParseResumeData([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("model returned unusable resume JSON: %w", err)
	}
	return resume, nil
}
