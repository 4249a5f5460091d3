package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/types"
)

func writeResumeFixture(t *testing.T, dir string) string {
	t.Helper()
	doc := types.ResumeDocument{
		Header:  types.Header{Name: "Jane Smith", Email: "jane@example.com", Phone: "555-1234"},
		Summary: "Platform engineer who cut deployment time 45% across three product teams over six years of infrastructure work.",
		Experience: []types.Experience{
			{Title: "Engineer", Company: "Acme Corp", StartDate: "Jan 2020", EndDate: "Present",
				Bullets: []string{
					"Led migration of 30 services to Kubernetes, cutting deploy time 45%",
					"Built internal tooling that reduced oncall pages 60% for the platform team",
					"Mentored four engineers on production readiness and incident response",
				}},
		},
		Education: []types.Education{
			{Institution: "State University", Degree: "B.S.", Field: "Computer Science", GraduationDate: "2014"},
		},
		Skills: map[string][]string{
			"Languages": {"Go", "Python", "SQL"},
			"Tools":     {"Kubernetes", "Docker", "Terraform", "PostgreSQL", "Git", "Prometheus"},
		},
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)

	path := filepath.Join(dir, "resume.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestRunScore_WritesReport(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "report.json")

	scoreResume = writeResumeFixture(t, dir)
	scoreOutput = outPath
	scoreConfig = ""
	scoreVerbose = false
	scoreParallel = false

	require.NoError(t, runScore(nil, nil))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var report types.ATSScoreReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Len(t, report.Sections, 7)
	assert.Greater(t, report.Overall, 0)
}

func TestRunScore_ParallelMatchesSequential(t *testing.T) {
	dir := t.TempDir()

	scoreResume = writeResumeFixture(t, dir)
	scoreConfig = ""
	scoreVerbose = false

	scoreOutput = filepath.Join(dir, "sequential.json")
	scoreParallel = false
	require.NoError(t, runScore(nil, nil))

	scoreOutput = filepath.Join(dir, "parallel.json")
	scoreParallel = true
	require.NoError(t, runScore(nil, nil))

	sequential, err := os.ReadFile(filepath.Join(dir, "sequential.json"))
	require.NoError(t, err)
	parallel, err := os.ReadFile(filepath.Join(dir, "parallel.json"))
	require.NoError(t, err)
	assert.JSONEq(t, string(sequential), string(parallel))
}

func TestRunScore_MissingResumeFlag(t *testing.T) {
	scoreResume = ""
	scoreOutput = filepath.Join(t.TempDir(), "report.json")
	scoreConfig = ""

	err := runScore(nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no resume file given")
}

func TestRunScore_RejectsInvalidDocument(t *testing.T) {
	dir := t.TempDir()
	badPath := filepath.Join(dir, "resume.json")
	require.NoError(t, os.WriteFile(badPath, []byte(`{"summary": 42}`), 0644))

	scoreResume = badPath
	scoreOutput = filepath.Join(dir, "report.json")
	scoreConfig = ""

	err := runScore(nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation")
}

func TestRunScore_ConfigFileProvidesDefaults(t *testing.T) {
	dir := t.TempDir()
	resumePath := writeResumeFixture(t, dir)
	outPath := filepath.Join(dir, "report.json")

	cfgPath := filepath.Join(dir, "config.json")
	cfg, err := json.Marshal(map[string]any{"resume": resumePath, "out": outPath})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(cfgPath, cfg, 0644))

	scoreResume = ""
	scoreOutput = ""
	scoreConfig = cfgPath
	scoreVerbose = false
	scoreParallel = false

	require.NoError(t, runScore(nil, nil))
	assert.FileExists(t, outPath)
}
