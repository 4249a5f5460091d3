// Package main provides the entry point for the ATS compatibility scoring engine.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_agent",
	Short: "ATS Compatibility Scoring Engine",
	Long:  "ats_agent deterministically scores resume documents for applicant tracking system compatibility, analyzes keyword overlap against job postings, and builds remediation prompts, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
