// Package main implements the ats_agent CLI tool for deterministic resume scoring.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/observability"
	"github.com/jonathan/ats-scorer/internal/scoring"
	"github.com/jonathan/ats-scorer/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume for ATS compatibility",
	Long:  "Deterministically scores a resume document across seven weighted sections, producing an ATSScoreReport JSON with a 0-100 overall score, per-section breakdowns, and severity-classified issues.",
	RunE:  runScore,
}

var (
	scoreResume   string
	scoreOutput   string
	scoreConfig   string
	scoreVerbose  bool
	scoreParallel bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to input ResumeDocument JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output ATSScoreReport JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreConfig, "config", "c", "", "Path to config JSON file with default flag values")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted score report to stdout")
	scoreCmd.Flags().BoolVar(&scoreParallel, "parallel", false, "Evaluate section scorers concurrently")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	// 1. Resolve flags against config file defaults
	cfg := config.Config{Resume: scoreResume, Out: scoreOutput}
	if scoreConfig != "" {
		fileCfg, err := config.LoadConfig(scoreConfig)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
		scoreVerbose = scoreVerbose || fileCfg.Verbose
		scoreParallel = scoreParallel || fileCfg.Parallel
	}
	if cfg.Resume == "" {
		return fmt.Errorf("no resume file given: use --resume or set 'resume' in the config file")
	}
	if cfg.Out == "" {
		return fmt.Errorf("no output path given: use --out or set 'out' in the config file")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// 2. Load and validate the resume document
	doc, err := loadResumeDocument(cfg.Resume)
	if err != nil {
		return err
	}

	// 3. Score
	var report *types.ATSScoreReport
	if scoreParallel {
		report, err = scoring.ScoreParallel(context.Background(), doc)
		if err != nil {
			return fmt.Errorf("failed to score resume: %w", err)
		}
	} else {
		report = scoring.Score(doc)
	}

	// 4. Write artifact
	if err := writeArtifact(cfg.Out, report); err != nil {
		return err
	}

	if scoreVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintScoreReport(report)
		printer.PrintIssues(report.Issues)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Scored resume %d/100 (%d issues) to %s\n", report.Overall, len(report.Issues), cfg.Out)

	return nil
}
