package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ats-scorer/internal/types"
)

func TestScoreEducation_Complete(t *testing.T) {
	result := scoreEducation(goodResume())

	assert.Equal(t, types.SectionEducation, result.Name)
	assert.Equal(t, 10.0, result.Score)
	assert.Empty(t, result.Issues)
}

func TestScoreEducation_None(t *testing.T) {
	result := scoreEducation(emptyResume())

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, []string{"education-none"}, issueIDs(result.Issues))
	assert.Equal(t, types.SeverityWarning, result.Issues[0].Severity)
}

func TestScoreEducation_EntriesWithoutInstitutionIgnored(t *testing.T) {
	doc := emptyResume()
	doc.Education = []types.Education{{Degree: "B.S.", Field: "Computer Science"}}

	result := scoreEducation(doc)

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, []string{"education-none"}, issueIDs(result.Issues))
}

func TestScoreEducation_MissingDegree(t *testing.T) {
	doc := emptyResume()
	doc.Education = []types.Education{
		{Institution: "University of Washington", Field: "Computer Science", GraduationDate: "2016"},
	}

	result := scoreEducation(doc)

	// Base 3 plus round(4/7*7) = 7.
	assert.Equal(t, 7.0, result.Score)
	assert.Equal(t, []string{"education-entry-1-missing-degree"}, issueIDs(result.Issues))
	assert.Equal(t, types.SeveritySuggestion, result.Issues[0].Severity)
}

func TestScoreEducation_MissingDate(t *testing.T) {
	doc := emptyResume()
	doc.Education = []types.Education{
		{Institution: "University of Washington", Degree: "B.S.", Field: "Computer Science"},
	}

	result := scoreEducation(doc)

	// Base 3 plus round(5/7*7) = 8.
	assert.Equal(t, 8.0, result.Score)
	assert.Equal(t, []string{"education-entry-1-missing-date"}, issueIDs(result.Issues))
}

func TestScoreEducation_MissingFieldIsSilent(t *testing.T) {
	doc := emptyResume()
	doc.Education = []types.Education{
		{Institution: "University of Washington", Degree: "B.S.", GraduationDate: "2016"},
	}

	result := scoreEducation(doc)

	// A missing field of study costs points but raises no issue.
	assert.Equal(t, 8.0, result.Score)
	assert.Empty(t, result.Issues)
}

func TestScoreEducation_TwoEntriesAveraged(t *testing.T) {
	doc := emptyResume()
	doc.Education = []types.Education{
		{Institution: "University of Washington", Degree: "M.S.", Field: "Computer Science", GraduationDate: "2018"},
		{Institution: "Portland State University", GraduationDate: "2016"},
	}

	result := scoreEducation(doc)

	// raw 7 + 2 over two entries: 3 + round(9/14*7) = 3 + round(4.5) = 8.
	assert.Equal(t, 8.0, result.Score)
	ids := issueIDs(result.Issues)
	assert.Contains(t, ids, "education-entry-2-missing-degree")
}
