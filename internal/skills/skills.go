// Package skills expands a resume's declared skills into flat keyword
// lists for scoring and for the rendered document's hidden ATS keyword
// blob.
package skills

import (
	"github.com/DavidVeksler/ResumeForge/internal/lexicon"
	"github.com/DavidVeksler/ResumeForge/internal/types"
)

// Processor resolves skill synonyms and high-priority terms against an
// injected lexicon.
type Processor struct {
	lex *lexicon.Lexicon
}

// NewProcessor creates a skills processor backed by the given lexicon.
func NewProcessor(lex *lexicon.Lexicon) *Processor {
	return &Processor{lex: lex}
}

// ExtractSkillKeywords flattens a skills structure into a keyword list.
// Both category shapes are handled: flat lists and level -> list maps.
// For every skill recognized in the synonym table, its variations are
// appended immediately after the skill itself.
func (p *Processor) ExtractSkillKeywords(skills types.Skills) []string {
	keywords := make([]string, 0)
	for _, group := range skills {
		if group.Category.IsLeveled() {
			for _, level := range group.Category.Levels {
				keywords = p.appendSkills(keywords, level.Skills)
			}
			continue
		}
		keywords = p.appendSkills(keywords, group.Category.Flat)
	}
	return keywords
}

func (p *Processor) appendSkills(keywords []string, skillList []string) []string {
	keywords = append(keywords, skillList...)
	for _, skill := range skillList {
		keywords = append(keywords, p.Variations(skill)...)
	}
	return keywords
}

// Variations returns known synonyms for a skill. Unknown skills yield nil.
func (p *Processor) Variations(skill string) []string {
	return p.lex.VariationsFor(skill)
}

// IsHighPriority reports whether a keyword should be repeated in the
// rendered document for better ATS recognition.
func (p *Processor) IsHighPriority(keyword string) bool {
	return p.lex.IsHighPriority(keyword)
}
