// Package lexicon holds the static keyword-extraction configuration:
// weighted priority patterns, stop words, technology synonyms, and
// high-priority terms. A Lexicon is loaded once and treated as
// immutable; the extraction and scoring packages take it as input
// rather than reaching for package-level state, so tests can run the
// algorithms against alternate lexicons.
package lexicon

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Pattern is one priority extraction rule. Weight is explicit rather
// than derived from list position, so reordering the pattern list does
// not silently change scores.
type Pattern struct {
	Expr   string `json:"pattern"`
	Weight int    `json:"weight"`

	re *regexp.Regexp
}

// Regexp returns the compiled case-insensitive expression.
func (p *Pattern) Regexp() *regexp.Regexp {
	return p.re
}

// Lexicon is the full extraction/scoring vocabulary.
type Lexicon struct {
	Patterns     []Pattern
	StopWords    map[string]struct{}
	Variations   map[string][]string
	HighPriority map[string]struct{}
}

// IsStopWord reports whether the word is filtered out of keyword lists.
func (l *Lexicon) IsStopWord(word string) bool {
	_, ok := l.StopWords[strings.ToLower(word)]
	return ok
}

// IsHighPriority reports whether the keyword is in the high-value term set.
func (l *Lexicon) IsHighPriority(keyword string) bool {
	_, ok := l.HighPriority[strings.ToLower(keyword)]
	return ok
}

// VariationsFor returns known synonyms for a skill, or nil for
// unrecognized skills.
func (l *Lexicon) VariationsFor(skill string) []string {
	return l.Variations[strings.ToLower(skill)]
}

// lexiconFile is the on-disk JSON form of a Lexicon.
type lexiconFile struct {
	Patterns          []Pattern           `json:"patterns"`
	StopWords         []string            `json:"stop_words"`
	Variations        map[string][]string `json:"variations"`
	HighPriorityTerms []string            `json:"high_priority_terms"`
}

// Load reads a lexicon from a JSON file and compiles its patterns.
// Patterns that omit a weight get the positional default
// len(patterns)-index, matching the built-in pattern ordering scheme.
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file %s: %w", path, err)
	}

	var file lexiconFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon JSON: %w", err)
	}

	lex := &Lexicon{
		Patterns:     file.Patterns,
		StopWords:    toSet(file.StopWords),
		Variations:   lowerKeys(file.Variations),
		HighPriority: toSet(file.HighPriorityTerms),
	}
	for i := range lex.Patterns {
		if lex.Patterns[i].Weight == 0 {
			lex.Patterns[i].Weight = len(lex.Patterns) - i
		}
	}

	if err := lex.Compile(); err != nil {
		return nil, err
	}
	return lex, nil
}

// Default returns the built-in lexicon.
func Default() *Lexicon {
	lex := &Lexicon{
		Patterns:     make([]Pattern, len(defaultPatternExprs)),
		StopWords:    toSet(defaultStopWords),
		Variations:   lowerKeys(defaultVariations),
		HighPriority: toSet(defaultHighPriorityTerms),
	}
	for i, expr := range defaultPatternExprs {
		lex.Patterns[i] = Pattern{Expr: expr, Weight: len(defaultPatternExprs) - i}
	}

	if err := lex.Compile(); err != nil {
		// The default expressions are compile-checked by tests; a
		// failure here is a programming error, not a runtime condition.
		panic(fmt.Sprintf("lexicon: default patterns failed to compile: %v", err))
	}
	return lex
}

// Compile compiles every pattern expression. Lexicons built in code
// rather than via Load or Default must call it before use.
func (l *Lexicon) Compile() error {
	for i := range l.Patterns {
		re, err := regexp.Compile("(?i)" + l.Patterns[i].Expr)
		if err != nil {
			return fmt.Errorf("invalid pattern %q: %w", l.Patterns[i].Expr, err)
		}
		l.Patterns[i].re = re
	}
	return nil
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

func lowerKeys(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for k, v := range in {
		out[strings.ToLower(k)] = v
	}
	return out
}
