// Package main provides the entry point for the ResumeForge CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumeforge",
	Short: "ResumeForge ATS optimization engine",
	Long:  "ResumeForge mines job descriptions for weighted keywords, scores and reorders resume content against them, and reports before/after ATS compatibility scores.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
