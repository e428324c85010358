// Package relevance scores resume achievements against role keywords
// mined from a job description and reorders resume content accordingly.
package relevance

import (
	"sort"
	"strings"

	"github.com/DavidVeksler/ResumeForge/internal/lexicon"
	"github.com/DavidVeksler/ResumeForge/internal/types"
)

const (
	// partialMatchFactor discounts substring co-occurrence in the
	// achievement text relative to an explicit author-supplied tag.
	partialMatchFactor = 0.7

	// metricsBonus is added for any quantified achievement,
	// independent of keyword overlap.
	metricsBonus = 1.0

	// roleSpecificKeywordCount is how many top keywords are injected
	// into the resume's keywords.role_specific bucket.
	roleSpecificKeywordCount = 20

	// Keyword weight bonuses
	frequencyBonusPerOccurrence = 0.2
	frequencyBonusMax           = 1.0
	requirementContextBonus     = 0.5
	highValueBonus              = 0.3

	// requirementContextWindow is the character span following a
	// requirement phrase within which a keyword earns the context bonus.
	requirementContextWindow = 200
)

// requirementContexts are the phrases that open a requirement-context
// window in the job description.
var requirementContexts = []string{
	"required", "must have", "essential", "mandatory",
	"experience with", "proficient in", "expertise in",
}

// Scorer scores achievements for one (role keywords, job description)
// pair. A fresh Scorer is constructed per customization; it carries no
// state between job descriptions.
type Scorer struct {
	roleKeywords []string
	jobDescLower string
	weights      map[string]float64
}

// NewScorer computes per-keyword importance weights up front and
// returns a scorer ready to score achievements.
func NewScorer(roleKeywords []string, jobDescription string, lex *lexicon.Lexicon) *Scorer {
	s := &Scorer{
		roleKeywords: roleKeywords,
		jobDescLower: strings.ToLower(jobDescription),
	}
	s.weights = s.calculateKeywordWeights(lex)
	return s
}

// KeywordWeights exposes the computed keyword -> weight mapping.
func (s *Scorer) KeywordWeights() map[string]float64 {
	return s.weights
}

// ScoreAchievement computes the relevance score for one achievement.
// Author-supplied tags that match a role keyword earn the keyword's
// full weight; role keywords found only as substrings of the
// achievement text earn the weight discounted by partialMatchFactor.
// A keyword credited through a tag is never credited again through the
// text. Quantified achievements get a flat bonus on top.
func (s *Scorer) ScoreAchievement(achievement *types.Achievement) float64 {
	score := 0.0
	counted := make(map[string]struct{})

	for _, tag := range achievement.Keywords {
		tagLower := strings.ToLower(tag)
		if !s.isRoleKeyword(tagLower) {
			continue
		}
		if _, done := counted[tagLower]; done {
			continue
		}
		counted[tagLower] = struct{}{}
		score += s.weight(tagLower)
	}

	textLower := strings.ToLower(achievement.Text)
	for _, roleKw := range s.roleKeywords {
		kwLower := strings.ToLower(roleKw)
		if _, done := counted[kwLower]; done {
			continue
		}
		if strings.Contains(textLower, kwLower) {
			counted[kwLower] = struct{}{}
			score += s.weight(kwLower) * partialMatchFactor
		}
	}

	if achievement.HasMetrics() {
		score += metricsBonus
	}

	return score
}

// CustomizeResumeData returns a customized deep copy of the resume:
// every achievement gets a relevance score, achievements within each
// experience entry are stable-sorted by score descending, the top
// bullet of each job is guaranteed a score of at least 1.0, and the
// top role keywords are injected under keywords.role_specific. The
// caller's resume is never modified.
func (s *Scorer) CustomizeResumeData(resume *types.ResumeData) *types.ResumeData {
	customized := resume.Clone()
	if customized == nil {
		customized = &types.ResumeData{}
	}

	for i := range customized.Experience {
		achievements := customized.Experience[i].Achievements
		for j := range achievements {
			achievements[j].RelevanceScore = s.ScoreAchievement(&achievements[j])
		}

		sort.SliceStable(achievements, func(a, b int) bool {
			return achievements[a].RelevanceScore > achievements[b].RelevanceScore
		})

		// A job with no scoring signal at all still leads with a
		// deliberately boosted bullet, so the first position is
		// never arbitrary.
		if len(achievements) > 0 && achievements[0].RelevanceScore < 1 {
			achievements[0].RelevanceScore = 1.0
		}
	}

	if customized.Keywords == nil {
		customized.Keywords = make(map[string][]string)
	}
	top := s.roleKeywords
	if len(top) > roleSpecificKeywordCount {
		top = top[:roleSpecificKeywordCount]
	}
	customized.Keywords["role_specific"] = append([]string(nil), top...)

	return customized
}

// calculateKeywordWeights assigns each role keyword a weight >= 1.0
// from its frequency in the job description, requirement-context
// proximity, and high-value term membership.
func (s *Scorer) calculateKeywordWeights(lex *lexicon.Lexicon) map[string]float64 {
	weights := make(map[string]float64, len(s.roleKeywords))

	for _, keyword := range s.roleKeywords {
		kwLower := strings.ToLower(keyword)
		weight := 1.0

		if occurrences := strings.Count(s.jobDescLower, kwLower); occurrences > 1 {
			bonus := float64(occurrences) * frequencyBonusPerOccurrence
			if bonus > frequencyBonusMax {
				bonus = frequencyBonusMax
			}
			weight += bonus
		}

		if s.inRequirementContext(kwLower) {
			weight += requirementContextBonus
		}

		if lex.IsHighPriority(kwLower) {
			weight += highValueBonus
		}

		weights[kwLower] = weight
	}

	return weights
}

// inRequirementContext reports whether the keyword appears within the
// fixed window after any requirement phrase. The first context phrase
// whose window contains the keyword wins; the bonus never stacks.
func (s *Scorer) inRequirementContext(kwLower string) bool {
	for _, context := range requirementContexts {
		start := strings.Index(s.jobDescLower, context)
		if start < 0 {
			continue
		}
		end := start + requirementContextWindow
		if end > len(s.jobDescLower) {
			end = len(s.jobDescLower)
		}
		if strings.Contains(s.jobDescLower[start:end], kwLower) {
			return true
		}
	}
	return false
}

func (s *Scorer) isRoleKeyword(kwLower string) bool {
	_, ok := s.weights[kwLower]
	return ok
}

func (s *Scorer) weight(kwLower string) float64 {
	if w, ok := s.weights[kwLower]; ok {
		return w
	}
	return 1.0
}
