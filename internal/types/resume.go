// Package types provides type definitions for structured resume data used throughout ResumeForge.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeData is the top-level structured resume. Every section is
// optional; missing sections contribute nothing to scoring or rendering.
type ResumeData struct {
	Personal   map[string]string   `json:"personal,omitempty"`
	Summary    *Summary            `json:"summary,omitempty"`
	Experience []Experience        `json:"experience,omitempty"`
	Skills     Skills              `json:"skills,omitempty"`
	Education  []Education         `json:"education,omitempty"`
	Projects   []Project           `json:"projects,omitempty"`
	Keywords   map[string][]string `json:"keywords,omitempty"`
}

// Summary is the professional summary section
type Summary struct {
	Headline string   `json:"headline,omitempty"`
	Bullets  []string `json:"bullets,omitempty"`
}

// Experience represents a single job entry with its achievement bullets
type Experience struct {
	Title        string        `json:"title,omitempty"`
	Company      string        `json:"company,omitempty"`
	Location     string        `json:"location,omitempty"`
	Duration     string        `json:"duration,omitempty"`
	Description  string        `json:"description,omitempty"`
	Achievements []Achievement `json:"achievements,omitempty"`
}

// Achievement is a single resume bullet. Keywords are author-supplied
// tags, not extracted ones. RelevanceScore is assigned during
// customization and is zero until then.
type Achievement struct {
	Text           string   `json:"text"`
	Keywords       []string `json:"keywords,omitempty"`
	Metrics        *Metrics `json:"metrics,omitempty"`
	RelevanceScore float64  `json:"relevance_score,omitempty"`
}

// Metrics holds a quantified claim attached to an achievement
type Metrics struct {
	Value float64 `json:"value,omitempty"`
	Type  string  `json:"type,omitempty"`
}

// HasMetrics reports whether the achievement carries a non-empty metric.
func (a *Achievement) HasMetrics() bool {
	return a.Metrics != nil && (a.Metrics.Value != 0 || a.Metrics.Type != "")
}

// Education represents a single education entry
type Education struct {
	Degree      string `json:"degree,omitempty"`
	School      string `json:"school,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

// Project represents a personal or professional project entry
type Project struct {
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	Keywords     []string `json:"keywords,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}
