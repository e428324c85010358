// Package keywords mines a free-text job description into a ranked,
// deduplicated keyword list. Four passes accumulate into one score map:
// weighted priority patterns, uppercase acronyms, requirement phrases,
// and tech-stack labels. Each pass encodes a different confidence
// signal, so the same lexical item may be counted by several passes
// additively.
package keywords

import (
	"regexp"
	"sort"
	"strings"

	"github.com/DavidVeksler/ResumeForge/internal/lexicon"
)

// MaxKeywords caps the ranked list returned by Extract.
const MaxKeywords = 60

// Per-token score contributions for the phrase-based passes.
// Requirement phrases are the strongest importance signal.
const (
	requirementTermScore = 3
	techStackTermScore   = 2
	acronymScore         = 1
)

var (
	// 2-6 consecutive uppercase letters, matched against the
	// original-case text so acronyms survive lowercasing.
	acronymRe = regexp.MustCompile(`\b[A-Z]{2,6}\b`)

	// Word-like terms: letters plus internal ., -, /
	termRe = regexp.MustCompile(`\b[a-z]+(?:[.\-/][a-z]+)*\b`)

	requirementRes = []*regexp.Regexp{
		regexp.MustCompile(`(?:required|must have|experience with|proficient in|knowledge of|familiar with|expertise in)\s+([^.!?\n]+)`),
		regexp.MustCompile(`(?:skills in|background in|strong|solid|deep understanding of|experience in)\s+([^.!?\n]+)`),
		regexp.MustCompile(`(?:proficiency|proficient|expert|advanced|intermediate) (?:in|with|knowledge of)\s+([^.!?\n]+)`),
	}

	techStackRes = []*regexp.Regexp{
		regexp.MustCompile(`(?:tech stack|technology stack|technologies|tools|frameworks?):\s*([^.!?\n]+)`),
		regexp.MustCompile(`(?:using|working with|built with):\s*([^.!?\n]+)`),
	}

	// Common non-technical acronyms excluded from the acronym pass
	acronymDenylist = map[string]struct{}{
		"the": {}, "and": {}, "for": {}, "you": {}, "are": {}, "our": {},
		"inc": {}, "llc": {}, "corp": {}, "ltd": {},
	}
)

// Extractor accumulates keyword scores for a single job description.
// Working state is per-invocation; nothing is shared across extractions.
type Extractor struct {
	lex       *lexicon.Lexicon
	text      string
	textLower string
	scores    map[string]int
	order     []string // first-discovery order, used for stable tie-breaking
}

// New creates an extractor for the given job description.
func New(lex *lexicon.Lexicon, jobDescription string) *Extractor {
	return &Extractor{
		lex:       lex,
		text:      jobDescription,
		textLower: strings.ToLower(jobDescription),
		scores:    make(map[string]int),
	}
}

// Extract returns keywords ranked by accumulated score descending,
// ties broken by first-discovery order, capped at MaxKeywords. An empty
// job description yields an empty list.
func (e *Extractor) Extract() []string {
	e.extractPriorityKeywords()
	e.extractAcronyms()
	e.extractRequirementPhrases()
	e.extractTechStack()

	filtered := e.filter()
	sort.SliceStable(filtered, func(i, j int) bool {
		return e.scores[filtered[i]] > e.scores[filtered[j]]
	})

	if len(filtered) > MaxKeywords {
		filtered = filtered[:MaxKeywords]
	}
	return filtered
}

// Extract runs a fresh extraction against the default lexicon.
func Extract(jobDescription string) []string {
	return New(lexicon.Default(), jobDescription).Extract()
}

// extractPriorityKeywords applies the weighted pattern list. Every
// match adds the pattern's weight again; repetition amplifies importance.
func (e *Extractor) extractPriorityKeywords() {
	for i := range e.lex.Patterns {
		pattern := &e.lex.Patterns[i]
		for _, match := range pattern.Regexp().FindAllStringSubmatch(e.textLower, -1) {
			keyword := match[0]
			if len(match) > 1 && match[1] != "" {
				keyword = match[1]
			}
			e.add(keyword, pattern.Weight)
		}
	}
}

// extractAcronyms scans the original-case text for 2-6 letter acronyms.
func (e *Extractor) extractAcronyms() {
	for _, term := range acronymRe.FindAllString(e.text, -1) {
		lower := strings.ToLower(term)
		if _, denied := acronymDenylist[lower]; denied {
			continue
		}
		e.add(lower, acronymScore)
	}
}

// extractRequirementPhrases tokenizes the text following requirement
// phrases like "must have" or "proficient in".
func (e *Extractor) extractRequirementPhrases() {
	e.extractPhraseTerms(requirementRes, requirementTermScore)
}

// extractTechStack tokenizes explicit stack lists ("tech stack:", "using:").
func (e *Extractor) extractTechStack() {
	e.extractPhraseTerms(techStackRes, techStackTermScore)
}

func (e *Extractor) extractPhraseTerms(patterns []*regexp.Regexp, score int) {
	for _, re := range patterns {
		for _, match := range re.FindAllStringSubmatch(e.textLower, -1) {
			for _, term := range termRe.FindAllString(match[1], -1) {
				if len(term) > 2 {
					e.add(term, score)
				}
			}
		}
	}
}

func (e *Extractor) add(keyword string, score int) {
	keyword = strings.ToLower(keyword)
	if _, seen := e.scores[keyword]; !seen {
		e.order = append(e.order, keyword)
	}
	e.scores[keyword] += score
}

// filter drops stop words, short tokens, and non-positive scores,
// preserving first-discovery order.
func (e *Extractor) filter() []string {
	kept := make([]string, 0, len(e.order))
	for _, keyword := range e.order {
		if len(keyword) <= 2 {
			continue
		}
		if e.lex.IsStopWord(keyword) {
			continue
		}
		if e.scores[keyword] <= 0 {
			continue
		}
		kept = append(kept, keyword)
	}
	return kept
}
