// Package ats computes 0-100 Applicant Tracking System compatibility
// scores for a resume against a target keyword list.
package ats

import (
	"math"
	"sort"
	"strings"

	"github.com/DavidVeksler/ResumeForge/internal/types"
)

// structuralBonus is awarded per present non-empty section, for each of
// experience, skills, and education.
const structuralBonus = 5.0

// Score is the canonical ATS compatibility score: the percentage of
// unique keywords found as substrings of the resume's searchable text,
// plus a structural bonus, clamped to [0,100] and rounded to two
// decimal places. An empty keyword list scores 0.0; the score is only
// meaningful relative to a target posting.
func Score(resume *types.ResumeData, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0.0
	}

	keywordSet := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		keywordSet[strings.ToLower(kw)] = struct{}{}
	}

	textLower := strings.ToLower(SearchableText(resume))

	matches := 0
	for kw := range keywordSet {
		if strings.Contains(textLower, kw) {
			matches++
		}
	}

	score := float64(matches) / float64(len(keywordSet)) * 100

	if len(resume.Experience) > 0 {
		score += structuralBonus
	}
	if len(resume.Skills) > 0 {
		score += structuralBonus
	}
	if len(resume.Education) > 0 {
		score += structuralBonus
	}

	if score > 100 {
		score = 100
	}
	return math.Round(score*100) / 100
}

// SearchableText concatenates every text-bearing field of the resume
// into one blob for substring matching: personal values, summary,
// experience entries with achievement text and tags, all skills in both
// category shapes, projects, and education.
func SearchableText(resume *types.ResumeData) string {
	var parts []string
	add := func(values ...string) {
		for _, v := range values {
			if v != "" {
				parts = append(parts, v)
			}
		}
	}

	// Map iteration order is randomized; sort keys so the blob is
	// identical across calls.
	personalKeys := make([]string, 0, len(resume.Personal))
	for k := range resume.Personal {
		personalKeys = append(personalKeys, k)
	}
	sort.Strings(personalKeys)
	for _, k := range personalKeys {
		add(resume.Personal[k])
	}

	if resume.Summary != nil {
		add(resume.Summary.Headline)
		add(resume.Summary.Bullets...)
	}

	for _, job := range resume.Experience {
		add(job.Title, job.Company, job.Description)
		for _, achievement := range job.Achievements {
			add(achievement.Text)
			add(achievement.Keywords...)
		}
	}

	for _, group := range resume.Skills {
		if group.Category.IsLeveled() {
			for _, level := range group.Category.Levels {
				add(level.Skills...)
			}
			continue
		}
		add(group.Category.Flat...)
	}

	for _, project := range resume.Projects {
		add(project.Name, project.Description)
		add(project.Keywords...)
		add(project.Technologies...)
	}

	for _, edu := range resume.Education {
		add(edu.Degree, edu.School, edu.Description)
	}

	return strings.Join(parts, " ")
}
