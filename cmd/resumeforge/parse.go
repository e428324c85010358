package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/DavidVeksler/ResumeForge/internal/llm"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse free-form resume text into structured JSON",
	Long:  "Converts a plain-text resume into the structured resume JSON format using the Gemini API. Requires GEMINI_API_KEY.",
	RunE:  runParse,
}

var (
	parseInputFile string
	parseOutput    string
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to input resume text file (required)")
	parseCmd.Flags().StringVarP(&parseOutput, "out", "o", "", "Path to output resume JSON file (required)")

	if err := parseCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := parseCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	content, err := os.ReadFile(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume text file %s: %w", parseInputFile, err)
	}

	ctx := context.Background()
	client, err := llm.NewGeminiClient(ctx, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer client.Close()

	resume, err := llm.ParseResume(ctx, client, string(content))
	if err != nil {
		return fmt.Errorf("failed to parse resume text: %w", err)
	}

	jsonOutput, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal resume to JSON: %w", err)
	}

	outputDir := filepath.Dir(parseOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(parseOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write resume JSON to %s: %w", parseOutput, err)
	}

	fmt.Printf("Parsed resume written to %s\n", parseOutput)
	return nil
}
