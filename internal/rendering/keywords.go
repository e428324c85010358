package rendering

import (
	"sort"
	"strings"

	"github.com/DavidVeksler/ResumeForge/internal/skills"
	"github.com/DavidVeksler/ResumeForge/internal/types"
)

// maxKeywordRepetitions caps how many times a high-priority keyword is
// repeated in the hidden blob.
const maxKeywordRepetitions = 3

// primaryKeywordCategories are keyword-section buckets whose entries
// are counted twice before repetition capping.
var primaryKeywordCategories = map[string]struct{}{
	"fintech_primary":   {},
	"technical_primary": {},
}

// KeywordBlob assembles the hidden ATS keyword text for a rendered
// resume. It collects keywords from the keywords section, all skills
// with their synonym variations, achievement tags, meaningful words
// from titles, companies, and degrees, and project keywords. Each
// distinct keyword appears once, except high-priority terms, which are
// repeated up to their occurrence count (capped) for stronger ATS
// recognition.
func KeywordBlob(resume *types.ResumeData, proc *skills.Processor) string {
	var collected []string

	categories := make([]string, 0, len(resume.Keywords))
	for category := range resume.Keywords {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		list := resume.Keywords[category]
		collected = append(collected, list...)
		if _, primary := primaryKeywordCategories[category]; primary {
			collected = append(collected, list...)
		}
	}

	collected = append(collected, proc.ExtractSkillKeywords(resume.Skills)...)

	for _, job := range resume.Experience {
		for _, achievement := range job.Achievements {
			collected = append(collected, achievement.Keywords...)
		}
	}

	for _, job := range resume.Experience {
		collected = append(collected, wordsLongerThan(job.Title, 2)...)
		collected = append(collected, wordsLongerThan(job.Company, 2)...)
	}

	for _, edu := range resume.Education {
		collected = append(collected, wordsLongerThan(edu.Degree, 2)...)
	}

	for _, project := range resume.Projects {
		collected = append(collected, project.Keywords...)
		collected = append(collected, wordsLongerThan(project.Description, 3)...)
	}

	// Count per lowercase keyword, keeping first-occurrence order so
	// the blob is deterministic.
	counts := make(map[string]int, len(collected))
	var order []string
	for _, keyword := range collected {
		lower := strings.ToLower(keyword)
		if lower == "" {
			continue
		}
		if counts[lower] == 0 {
			order = append(order, lower)
		}
		counts[lower]++
	}

	var final []string
	for _, keyword := range order {
		repetitions := 1
		if proc.IsHighPriority(keyword) {
			repetitions = counts[keyword]
			if repetitions > maxKeywordRepetitions {
				repetitions = maxKeywordRepetitions
			}
		}
		for i := 0; i < repetitions; i++ {
			final = append(final, keyword)
		}
	}

	return strings.Join(final, " ")
}

func wordsLongerThan(text string, minLen int) []string {
	var out []string
	for _, word := range strings.Fields(text) {
		if len(word) > minLen {
			out = append(out, word)
		}
	}
	return out
}
