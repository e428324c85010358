package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DavidVeksler/ResumeForge/internal/ats"
	"github.com/DavidVeksler/ResumeForge/internal/keywords"
	"github.com/DavidVeksler/ResumeForge/internal/schemas"
	"github.com/DavidVeksler/ResumeForge/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute the ATS score for a resume against a job description",
	Long:  "Computes the 0-100 ATS compatibility score for a resume JSON file against keywords extracted from a job description, with a per-category breakdown.",
	RunE:  runScore,
}

var (
	scoreResumeFile string
	scoreJobFile    string
	scoreJobURL     string
	scoreLexicon    string
	scoreBrowser    bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumeFile, "resume", "r", "", "Path to input resume JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path to a job description text file")
	scoreCmd.Flags().StringVarP(&scoreJobURL, "url", "u", "", "URL of a job posting to fetch")
	scoreCmd.Flags().StringVar(&scoreLexicon, "lexicon", "", "Path to a custom lexicon JSON file")
	scoreCmd.Flags().BoolVar(&scoreBrowser, "browser", false, "Render JavaScript-heavy postings with a headless browser")

	if err := scoreCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	scoreCmd.MarkFlagsOneRequired("job", "url")
	scoreCmd.MarkFlagsMutuallyExclusive("job", "url")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	resume, err := loadResume(scoreResumeFile)
	if err != nil {
		return err
	}

	jobDescription, err := loadJobDescription(scoreJobFile, scoreJobURL, scoreBrowser)
	if err != nil {
		return err
	}

	lex, err := loadLexicon(scoreLexicon)
	if err != nil {
		return err
	}

	kws := keywords.New(lex, jobDescription).Extract()

	out, err := json.MarshalIndent(map[string]any{
		"score":     ats.Score(resume, kws),
		"keywords":  kws,
		"breakdown": ats.ScoreWithBreakdown(resume, kws),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal score report: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// loadResume reads and parses a resume JSON file, running it through
// schema validation first when the schema file can be found.
func loadResume(path string) (*types.ResumeData, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}

	schemaPath := schemas.ResolveSchemaPath(schemas.ResumeSchemaPath)
	if schemaPath != "" {
		if err := schemas.ValidateResumeBytes(schemaPath, content); err != nil {
			return nil, fmt.Errorf("resume failed schema validation: %w", err)
		}
	}

	resume, err := types.ParseResumeData(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return resume, nil
}
