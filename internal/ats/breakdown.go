package ats

import (
	"strings"

	"github.com/DavidVeksler/ResumeForge/internal/types"
)

// Breakdown is the legacy per-section scoring report. Its components
// sum to an integer 0-100 on a different scale than Score; the two are
// never mixed. Score stays canonical for before/after comparison, the
// breakdown is reporting detail only.
type Breakdown struct {
	Keywords     float64 `json:"keywords"`     // up to 40
	Skills       float64 `json:"skills"`       // flat 15
	Achievements float64 `json:"achievements"` // up to 20
	Contact      float64 `json:"contact"`      // up to 10
	Summary      float64 `json:"summary"`      // flat 10
	Education    float64 `json:"education"`    // flat 5
	Total        int     `json:"total"`
}

const (
	breakdownKeywordMax     = 40.0
	breakdownKeywordSample  = 20
	breakdownSkillsPoints   = 15.0
	breakdownAchievementMax = 20.0
	// Achievement points scale linearly up to this many bullets.
	breakdownAchievementFull = 10
	breakdownSummaryPoints   = 10.0
	breakdownEducationPoints = 5.0
)

// ScoreWithBreakdown computes the legacy component-based ATS score:
// keyword matching out of 40 (over the first 20 keywords), flat 15 for
// a skills section, achievement count scaled up to 20, contact
// completeness up to 10, flat 10 for a summary headline, flat 5 for
// education.
func ScoreWithBreakdown(resume *types.ResumeData, keywords []string) Breakdown {
	var b Breakdown

	sample := keywords
	if len(sample) > breakdownKeywordSample {
		sample = sample[:breakdownKeywordSample]
	}
	if len(sample) > 0 {
		textLower := strings.ToLower(SearchableText(resume))
		matched := 0
		for _, kw := range sample {
			if strings.Contains(textLower, strings.ToLower(kw)) {
				matched++
			}
		}
		b.Keywords = float64(matched) / breakdownKeywordSample * breakdownKeywordMax
		if b.Keywords > breakdownKeywordMax {
			b.Keywords = breakdownKeywordMax
		}
	}

	if len(resume.Skills) > 0 {
		b.Skills = breakdownSkillsPoints
	}

	achievementCount := 0
	for _, job := range resume.Experience {
		achievementCount += len(job.Achievements)
	}
	b.Achievements = float64(achievementCount) / breakdownAchievementFull * breakdownAchievementMax
	if b.Achievements > breakdownAchievementMax {
		b.Achievements = breakdownAchievementMax
	}

	b.Contact = contactScore(resume.Personal)

	if resume.Summary != nil && resume.Summary.Headline != "" {
		b.Summary = breakdownSummaryPoints
	}

	if len(resume.Education) > 0 {
		b.Education = breakdownEducationPoints
	}

	total := b.Keywords + b.Skills + b.Achievements + b.Contact + b.Summary + b.Education
	if total > 100 {
		total = 100
	}
	b.Total = int(total)
	return b
}

// contactScore awards 5 points each for name and email, 2.5 each for
// phone and location.
func contactScore(personal map[string]string) float64 {
	if personal == nil {
		return 0
	}
	score := 0.0
	if personal["name"] != "" {
		score += 5
	}
	if personal["email"] != "" {
		score += 5
	}
	if personal["phone"] != "" {
		score += 2.5
	}
	if personal["location"] != "" {
		score += 2.5
	}
	return score
}
