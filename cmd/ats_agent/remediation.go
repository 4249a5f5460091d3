package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/prompts"
	"github.com/jonathan/ats-scorer/internal/scoring"
	"github.com/jonathan/ats-scorer/internal/types"
)

var remediationCmd = &cobra.Command{
	Use:   "remediation-prompt",
	Short: "Build a remediation prompt for a resume section",
	Long:  "Collects the issues found in one section of a score report and builds a ready-to-use rewrite prompt embedding the issues and the section's current content. Scores the resume on the fly unless an existing report is supplied with --report.",
	RunE:  runRemediation,
}

var (
	remediationResume  string
	remediationReport  string
	remediationSection string
	remediationOutput  string
)

func init() {
	remediationCmd.Flags().StringVarP(&remediationResume, "resume", "r", "", "Path to input ResumeDocument JSON file (required)")
	remediationCmd.Flags().StringVar(&remediationReport, "report", "", "Path to an existing ATSScoreReport JSON file; omit to score the resume now")
	remediationCmd.Flags().StringVarP(&remediationSection, "section", "s", "", "Section to remediate: header, summary, experience, education, skills, formatting, or content (required)")
	remediationCmd.Flags().StringVarP(&remediationOutput, "out", "o", "", "Path to output prompt text file; omit to print the prompt to stdout")

	if err := remediationCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := remediationCmd.MarkFlagRequired("section"); err != nil {
		panic(fmt.Sprintf("failed to mark section flag as required: %v", err))
	}

	rootCmd.AddCommand(remediationCmd)
}

func runRemediation(_ *cobra.Command, _ []string) error {
	// 1. Load the resume
	doc, err := loadResumeDocument(remediationResume)
	if err != nil {
		return err
	}

	// 2. Obtain the score report: reuse an existing artifact or score now
	var report *types.ATSScoreReport
	if remediationReport != "" {
		content, err := os.ReadFile(remediationReport)
		if err != nil {
			return fmt.Errorf("failed to read report file %s: %w", remediationReport, err)
		}
		report = &types.ATSScoreReport{}
		if err := json.Unmarshal(content, report); err != nil {
			return fmt.Errorf("failed to unmarshal report JSON: %w", err)
		}
	} else {
		report = scoring.Score(doc)
	}

	// 3. Collect issues for the requested section
	var sectionIssues []types.Issue
	for _, issue := range report.Issues {
		if issue.Section == remediationSection {
			sectionIssues = append(sectionIssues, issue)
		}
	}

	// 4. Build the prompt
	prompt, err := prompts.BuildRemediationPrompt(remediationSection, doc, sectionIssues)
	if err != nil {
		return fmt.Errorf("failed to build remediation prompt: %w", err)
	}

	// 5. Write to the output file, or stdout when no path was given
	if remediationOutput == "" {
		_, _ = fmt.Fprintln(os.Stdout, prompt)
		return nil
	}
	outputDir := filepath.Dir(remediationOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(remediationOutput, []byte(prompt), 0644); err != nil {
		return fmt.Errorf("failed to write prompt to output file %s: %w", remediationOutput, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Built remediation prompt for %s (%d issues) to %s\n", remediationSection, len(sectionIssues), remediationOutput)

	return nil
}
