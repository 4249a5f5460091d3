package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/types"
)

func TestScoreFormatting_Clean(t *testing.T) {
	result := scoreFormatting(goodResume())

	assert.Equal(t, types.SectionFormatting, result.Name)
	assert.Equal(t, 10.0, result.Score)
	assert.Empty(t, result.Issues)
}

func TestScoreFormatting_Pictographs(t *testing.T) {
	doc := goodResume()
	doc.Summary = "🚀 " + doc.Summary

	result := scoreFormatting(doc)

	assert.Equal(t, 8.0, result.Score)
	assert.Equal(t, []string{"formatting-pictographs"}, issueIDs(result.Issues))
	assert.Equal(t, types.SeverityCritical, result.Issues[0].Severity)
}

func TestScoreFormatting_Tabs(t *testing.T) {
	doc := goodResume()
	doc.Summary = "Platform\tengineer " + doc.Summary

	result := scoreFormatting(doc)

	assert.Equal(t, 9.0, result.Score)
	assert.Equal(t, []string{"formatting-tabs"}, issueIDs(result.Issues))
	assert.Equal(t, types.SeverityWarning, result.Issues[0].Severity)
}

func TestScoreFormatting_SparseDocument(t *testing.T) {
	doc := emptyResume()
	doc.Header = types.Header{Name: "Jane Smith", Email: "jane@example.com"}
	doc.Skills = map[string][]string{"Skills": {"Go"}}

	result := scoreFormatting(doc)

	// 2 no pictographs + 1 no tabs + 0 word band + round(2/5*3) = 1 presence
	// + 1 date consistency (no dates at all).
	assert.Equal(t, 5.0, result.Score)
	ids := issueIDs(result.Issues)
	assert.Contains(t, ids, "formatting-too-sparse")
	assert.Contains(t, ids, "formatting-missing-sections")
}

func TestScoreFormatting_MissingSectionsNamed(t *testing.T) {
	doc := emptyResume()
	doc.Header = types.Header{Name: "Jane Smith", Email: "jane@example.com"}

	result := scoreFormatting(doc)

	var missing *types.Issue
	for i := range result.Issues {
		if result.Issues[i].ID == "formatting-missing-sections" {
			missing = &result.Issues[i]
		}
	}
	require.NotNil(t, missing)
	assert.Equal(t, types.SeverityCritical, missing.Severity)
	assert.Contains(t, missing.Details, "summary")
	assert.Contains(t, missing.Details, "experience")
	assert.Contains(t, missing.Details, "education")
	assert.Contains(t, missing.Details, "skills")
	assert.NotContains(t, missing.Details, "contact info")
}

func TestScoreFormatting_MixedDateFormats(t *testing.T) {
	doc := goodResume()
	doc.Experience[1].StartDate = "03/2016"
	doc.Experience[1].EndDate = "12/2020"

	result := scoreFormatting(doc)

	assert.Equal(t, 9.0, result.Score)
	assert.Equal(t, []string{"formatting-mixed-date-formats"}, issueIDs(result.Issues))
	assert.Equal(t, types.SeverityWarning, result.Issues[0].Severity)
}

func TestCheckDateConsistency_CurrentMarkersExcluded(t *testing.T) {
	doc := emptyResume()
	doc.Experience = []types.Experience{
		{Company: "Acme Corp", StartDate: "Jan 2021", EndDate: "Present"},
		{Company: "Initech", StartDate: "Mar 2016", EndDate: "Dec 2020"},
	}

	score, issue := checkDateConsistency(doc)

	assert.Equal(t, 1.0, score)
	assert.Nil(t, issue)
}

func TestCheckDateConsistency_TooFewDatesToJudge(t *testing.T) {
	doc := emptyResume()
	doc.Experience = []types.Experience{
		{Company: "Acme Corp", StartDate: "Jan 2021", EndDate: "03/2022"},
	}

	score, issue := checkDateConsistency(doc)

	// Two dates in two formats is not enough evidence of inconsistency.
	assert.Equal(t, 1.0, score)
	assert.Nil(t, issue)
}
