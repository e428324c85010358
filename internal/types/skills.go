package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Skills is an ordered list of skill categories. It round-trips with the
// JSON object form (category name -> category body) while preserving the
// author's category order, which a plain Go map would not.
type Skills []SkillGroup

// SkillGroup is one named skill category
type SkillGroup struct {
	Name     string
	Category SkillCategory
}

// SkillCategory is a tagged variant: a category body is either a flat
// list of skill names or a map of proficiency level -> skill names.
// Exactly one of Flat and Levels is set.
type SkillCategory struct {
	Flat   []string
	Levels []SkillLevel
}

// SkillLevel is one proficiency bucket within a leveled category
type SkillLevel struct {
	Name   string
	Skills []string
}

// IsLeveled reports whether the category uses the level -> skills form.
func (c *SkillCategory) IsLeveled() bool {
	return c.Levels != nil
}

// UnmarshalJSON decodes the skills object, preserving category order.
func (s *Skills) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("skills: expected JSON object, got %v", tok)
	}

	var groups []SkillGroup
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("skills: expected object key, got %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		var cat SkillCategory
		if err := json.Unmarshal(raw, &cat); err != nil {
			return fmt.Errorf("skills category %q: %w", key, err)
		}
		groups = append(groups, SkillGroup{Name: key, Category: cat})
	}

	*s = groups
	return nil
}

// MarshalJSON encodes the skills back to the JSON object form in order.
func (s Skills) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, group := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(group.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		body, err := json.Marshal(group.Category)
		if err != nil {
			return nil, err
		}
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decides the variant by the leading JSON token.
func (c *SkillCategory) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*c = SkillCategory{}
		return nil
	}

	switch trimmed[0] {
	case '[':
		var flat []string
		if err := json.Unmarshal(trimmed, &flat); err != nil {
			return err
		}
		*c = SkillCategory{Flat: flat}
		return nil
	case '{':
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		if _, err := dec.Token(); err != nil {
			return err
		}
		levels := make([]SkillLevel, 0)
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return err
			}
			key, ok := keyTok.(string)
			if !ok {
				return fmt.Errorf("skill level: expected object key, got %v", keyTok)
			}
			var skills []string
			if err := dec.Decode(&skills); err != nil {
				return fmt.Errorf("skill level %q: %w", key, err)
			}
			levels = append(levels, SkillLevel{Name: key, Skills: skills})
		}
		*c = SkillCategory{Levels: levels}
		return nil
	default:
		return fmt.Errorf("skill category: expected array or object")
	}
}

// MarshalJSON encodes the active variant.
func (c SkillCategory) MarshalJSON() ([]byte, error) {
	if c.Levels != nil {
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, level := range c.Levels {
			if i > 0 {
				buf.WriteByte(',')
			}
			name, err := json.Marshal(level.Name)
			if err != nil {
				return nil, err
			}
			buf.Write(name)
			buf.WriteByte(':')
			skills := level.Skills
			if skills == nil {
				skills = []string{}
			}
			body, err := json.Marshal(skills)
			if err != nil {
				return nil, err
			}
			buf.Write(body)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	}

	flat := c.Flat
	if flat == nil {
		flat = []string{}
	}
	return json.Marshal(flat)
}
