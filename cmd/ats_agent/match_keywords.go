package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/fetch"
	"github.com/jonathan/ats-scorer/internal/keywords"
	"github.com/jonathan/ats-scorer/internal/observability"
)

var matchKeywordsCmd = &cobra.Command{
	Use:   "match-keywords",
	Short: "Analyze keyword overlap between a resume and a job description",
	Long:  "Extracts the most important phrases from a job description and reports which appear in the resume, producing a KeywordMatch JSON sorted by frequency.",
	RunE:  runMatchKeywords,
}

var (
	matchResume  string
	matchJob     string
	matchJobURL  string
	matchOutput  string
	matchConfig  string
	matchVerbose bool
)

func init() {
	matchKeywordsCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to input ResumeDocument JSON file (required)")
	matchKeywordsCmd.Flags().StringVarP(&matchJob, "job", "j", "", "Path to job description text file")
	matchKeywordsCmd.Flags().StringVar(&matchJobURL, "job-url", "", "URL of a job posting to fetch and extract")
	matchKeywordsCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output KeywordMatch JSON file (required)")
	matchKeywordsCmd.Flags().StringVarP(&matchConfig, "config", "c", "", "Path to config JSON file with default flag values")
	matchKeywordsCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print formatted keyword matches to stdout")

	rootCmd.AddCommand(matchKeywordsCmd)
}

func runMatchKeywords(_ *cobra.Command, _ []string) error {
	// 1. Resolve flags against config file defaults
	cfg := config.Config{Resume: matchResume, Job: matchJob, JobURL: matchJobURL, Out: matchOutput}
	if matchConfig != "" {
		fileCfg, err := config.LoadConfig(matchConfig)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
		matchVerbose = matchVerbose || fileCfg.Verbose
	}
	if cfg.Resume == "" {
		return fmt.Errorf("no resume file given: use --resume or set 'resume' in the config file")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("no job description given: use --job or --job-url")
	}
	if cfg.Out == "" {
		return fmt.Errorf("no output path given: use --out or set 'out' in the config file")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// 2. Load the resume document
	doc, err := loadResumeDocument(cfg.Resume)
	if err != nil {
		return err
	}

	// 3. Obtain the job description text
	var description string
	if cfg.Job != "" {
		content, err := os.ReadFile(cfg.Job)
		if err != nil {
			return fmt.Errorf("failed to read job description file %s: %w", cfg.Job, err)
		}
		description = string(content)
	} else {
		description, err = fetch.JobDescription(context.Background(), cfg.JobURL)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
	}

	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("job description is empty")
	}

	// 4. Match and write artifact
	matches := keywords.Match(doc, description)

	if err := writeArtifact(cfg.Out, matches); err != nil {
		return err
	}

	if matchVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintKeywordMatches(matches)
	}

	found := 0
	for _, m := range matches {
		if m.Found {
			found++
		}
	}
	_, _ = fmt.Fprintf(os.Stdout, "Matched %d/%d keywords to %s\n", found, len(matches), cfg.Out)

	return nil
}
