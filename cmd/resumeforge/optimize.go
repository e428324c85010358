package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/DavidVeksler/ResumeForge/internal/optimizer"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Optimize a resume for a job description",
	Long:  "Runs the full optimization pass: extracts keywords from the job description, reorders and re-weights resume content, and reports before/after ATS scores.",
	RunE:  runOptimize,
}

var (
	optimizeResumeFile string
	optimizeJobFile    string
	optimizeJobURL     string
	optimizeOutput     string
	optimizeLexicon    string
	optimizeBrowser    bool
)

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeResumeFile, "resume", "r", "", "Path to input resume JSON file (required)")
	optimizeCmd.Flags().StringVarP(&optimizeJobFile, "job", "j", "", "Path to a job description text file")
	optimizeCmd.Flags().StringVarP(&optimizeJobURL, "url", "u", "", "URL of a job posting to fetch")
	optimizeCmd.Flags().StringVarP(&optimizeOutput, "out", "o", "", "Path to write the customized resume JSON (required)")
	optimizeCmd.Flags().StringVar(&optimizeLexicon, "lexicon", "", "Path to a custom lexicon JSON file")
	optimizeCmd.Flags().BoolVar(&optimizeBrowser, "browser", false, "Render JavaScript-heavy postings with a headless browser")

	if err := optimizeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := optimizeCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}
	optimizeCmd.MarkFlagsOneRequired("job", "url")
	optimizeCmd.MarkFlagsMutuallyExclusive("job", "url")

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(_ *cobra.Command, _ []string) error {
	resume, err := loadResume(optimizeResumeFile)
	if err != nil {
		return err
	}

	jobDescription, err := loadJobDescription(optimizeJobFile, optimizeJobURL, optimizeBrowser)
	if err != nil {
		return err
	}

	lex, err := loadLexicon(optimizeLexicon)
	if err != nil {
		return err
	}

	result, err := optimizer.Optimize(context.Background(), resume, jobDescription, lex)
	if err != nil {
		return fmt.Errorf("optimization failed: %w", err)
	}

	customizedJSON, err := json.MarshalIndent(result.Customized, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal customized resume to JSON: %w", err)
	}

	outputDir := filepath.Dir(optimizeOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(optimizeOutput, customizedJSON, 0644); err != nil {
		return fmt.Errorf("failed to write customized resume to %s: %w", optimizeOutput, err)
	}

	fmt.Printf("ATS score: %.2f -> %.2f\n", result.DefaultScore, result.OptimizedScore)
	fmt.Printf("Role keywords: %d, keywords injected: %d, achievements reordered: %d, quantified bullets: %d\n",
		len(result.RoleKeywords), result.Summary.KeywordsAdded,
		result.Summary.AchievementsReordered, result.Summary.QuantifiedBullets)
	fmt.Printf("Customized resume written to %s\n", optimizeOutput)

	return nil
}
