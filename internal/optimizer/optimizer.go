// Package optimizer wires keyword extraction, relevance scoring, and
// ATS scoring into the before/after optimization flow.
package optimizer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/DavidVeksler/ResumeForge/internal/ats"
	"github.com/DavidVeksler/ResumeForge/internal/keywords"
	"github.com/DavidVeksler/ResumeForge/internal/lexicon"
	"github.com/DavidVeksler/ResumeForge/internal/relevance"
	"github.com/DavidVeksler/ResumeForge/internal/types"
)

// Result holds the artifacts of one optimization pass.
type Result struct {
	DefaultScore   float64           `json:"default_score"`
	OptimizedScore float64           `json:"optimized_score"`
	Customized     *types.ResumeData `json:"customized_resume"`
	RoleKeywords   []string          `json:"role_keywords"`
	Summary        Summary           `json:"summary"`
}

// Summary describes what the customization changed, for "what improved"
// reporting.
type Summary struct {
	KeywordsAdded         int `json:"keywords_added"`
	AchievementsReordered int `json:"achievements_reordered"`
	QuantifiedBullets     int `json:"quantified_bullets"`
}

// Optimize extracts role keywords from the job description, scores the
// original resume, customizes a copy, and re-scores it against the same
// keyword list. Both ATS passes compare on the canonical scale. The
// input resume is not modified; the whole pass is deterministic for
// identical inputs.
func Optimize(ctx context.Context, resume *types.ResumeData, jobDescription string, lex *lexicon.Lexicon) (*Result, error) {
	if resume == nil {
		return nil, &types.InvalidInputError{Message: "resume data is required"}
	}
	if lex == nil {
		lex = lexicon.Default()
	}

	roleKeywords := keywords.New(lex, jobDescription).Extract()

	scorer := relevance.NewScorer(roleKeywords, jobDescription, lex)
	customized := scorer.CustomizeResumeData(resume)

	result := &Result{
		Customized:   customized,
		RoleKeywords: roleKeywords,
	}

	// The two ATS passes are independent pure scans; run them together.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		result.DefaultScore = ats.Score(resume, roleKeywords)
		return nil
	})
	g.Go(func() error {
		result.OptimizedScore = ats.Score(customized, roleKeywords)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Summary = summarize(resume, customized)
	return result, nil
}

// summarize reports the keyword injection size, how many achievements
// moved, and how many bullets carry metrics.
func summarize(original, customized *types.ResumeData) Summary {
	s := Summary{KeywordsAdded: len(customized.Keywords["role_specific"])}

	for i, job := range original.Experience {
		if i >= len(customized.Experience) {
			break
		}
		optJob := customized.Experience[i]
		if len(job.Achievements) != len(optJob.Achievements) {
			continue
		}
		for j := range job.Achievements {
			if job.Achievements[j].Text != optJob.Achievements[j].Text {
				s.AchievementsReordered++
			}
		}
	}

	for _, job := range original.Experience {
		for _, achievement := range job.Achievements {
			if achievement.HasMetrics() {
				s.QuantifiedBullets++
			}
		}
	}

	return s
}
