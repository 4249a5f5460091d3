package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/ats-scorer/internal/schemas"
	"github.com/jonathan/ats-scorer/internal/types"
)

// loadResumeDocument reads a resume JSON file, validates it against the
// document schema, and unmarshals it.
func loadResumeDocument(path string) (*types.ResumeDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}

	if err := schemas.ValidateResumeDocument(data); err != nil {
		return nil, fmt.Errorf("resume document failed schema validation: %w", err)
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume JSON: %w", err)
	}

	return &doc, nil
}

// writeArtifact marshals data with indentation and writes it to outPath,
// creating parent directories as needed.
func writeArtifact(outPath string, data any) error {
	jsonOutput, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	outputDir := filepath.Dir(outPath)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(outPath, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outPath, err)
	}

	return nil
}
