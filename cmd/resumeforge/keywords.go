package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DavidVeksler/ResumeForge/internal/fetch"
	"github.com/DavidVeksler/ResumeForge/internal/keywords"
	"github.com/DavidVeksler/ResumeForge/internal/lexicon"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Extract ranked keywords from a job description",
	Long:  "Extracts ATS-relevant keywords from a job description, ranked by salience. The description can come from a file or be fetched from a posting URL.",
	RunE:  runKeywords,
}

var (
	keywordsJobFile string
	keywordsJobURL  string
	keywordsLexicon string
	keywordsJSON    bool
	keywordsBrowser bool
)

func init() {
	keywordsCmd.Flags().StringVarP(&keywordsJobFile, "job", "j", "", "Path to a job description text file")
	keywordsCmd.Flags().StringVarP(&keywordsJobURL, "url", "u", "", "URL of a job posting to fetch")
	keywordsCmd.Flags().StringVar(&keywordsLexicon, "lexicon", "", "Path to a custom lexicon JSON file")
	keywordsCmd.Flags().BoolVar(&keywordsJSON, "json", false, "Emit JSON instead of one keyword per line")
	keywordsCmd.Flags().BoolVar(&keywordsBrowser, "browser", false, "Render JavaScript-heavy postings with a headless browser")
	keywordsCmd.MarkFlagsOneRequired("job", "url")
	keywordsCmd.MarkFlagsMutuallyExclusive("job", "url")

	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(_ *cobra.Command, _ []string) error {
	jobDescription, err := loadJobDescription(keywordsJobFile, keywordsJobURL, keywordsBrowser)
	if err != nil {
		return err
	}

	lex, err := loadLexicon(keywordsLexicon)
	if err != nil {
		return err
	}

	extracted := keywords.New(lex, jobDescription).Extract()

	if keywordsJSON {
		out, err := json.MarshalIndent(map[string]any{
			"keywords": extracted,
			"count":    len(extracted),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal keywords to JSON: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	for _, kw := range extracted {
		fmt.Println(kw)
	}
	return nil
}

// loadJobDescription reads the description from a file or fetches it
// from a posting URL. Exactly one source must be given.
func loadJobDescription(path, url string, useBrowser bool) (string, error) {
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read job description file %s: %w", path, err)
		}
		return string(content), nil
	}

	opts := fetch.DefaultOptions()
	opts.UseBrowser = useBrowser
	result, err := fetch.JobPosting(context.Background(), url, opts)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	if strings.TrimSpace(result.Text) == "" {
		return "", fmt.Errorf("job posting at %s produced no text", url)
	}
	return result.Text, nil
}

// loadLexicon returns the built-in lexicon unless a custom path is given.
func loadLexicon(path string) (*lexicon.Lexicon, error) {
	if path == "" {
		return lexicon.Default(), nil
	}
	lex, err := lexicon.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon %s: %w", path, err)
	}
	return lex, nil
}
