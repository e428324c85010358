package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/DavidVeksler/ResumeForge/internal/rendering"
	"github.com/DavidVeksler/ResumeForge/internal/skills"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume to ATS-friendly HTML",
	Long:  "Renders a resume JSON file to a single-file HTML document with a hidden keyword block for ATS parsers.",
	RunE:  runRender,
}

var (
	renderResumeFile string
	renderOutput     string
	renderLexicon    string
)

func init() {
	renderCmd.Flags().StringVarP(&renderResumeFile, "resume", "r", "", "Path to input resume JSON file (required)")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Path to output HTML file (required)")
	renderCmd.Flags().StringVar(&renderLexicon, "lexicon", "", "Path to a custom lexicon JSON file")

	if err := renderCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := renderCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	resume, err := loadResume(renderResumeFile)
	if err != nil {
		return err
	}

	lex, err := loadLexicon(renderLexicon)
	if err != nil {
		return err
	}

	html := rendering.Render(resume, skills.NewProcessor(lex))

	outputDir := filepath.Dir(renderOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(renderOutput, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write HTML to %s: %w", renderOutput, err)
	}

	fmt.Printf("Rendered resume written to %s\n", renderOutput)
	return nil
}
