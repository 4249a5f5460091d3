package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ats-scorer/internal/types"
)

func TestScoreSummary_Complete(t *testing.T) {
	result := scoreSummary(goodResume())

	assert.Equal(t, types.SectionSummary, result.Name)
	assert.Equal(t, 10.0, result.Score)
	assert.Empty(t, result.Issues)
}

func TestScoreSummary_Missing(t *testing.T) {
	result := scoreSummary(emptyResume())

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, []string{"summary-missing"}, issueIDs(result.Issues))
	assert.Equal(t, types.SeverityCritical, result.Issues[0].Severity)
}

func TestScoreSummary_TooShort(t *testing.T) {
	doc := goodResume()
	doc.Summary = "Experienced engineer."

	result := scoreSummary(doc)

	// 1 for the short band, 2 for no first person, 1 for no metric;
	// the length bonus needs more than 50 characters.
	assert.Equal(t, 4.0, result.Score)
	ids := issueIDs(result.Issues)
	assert.Contains(t, ids, "summary-too-short")
	assert.Contains(t, ids, "summary-no-metrics")
}

func TestScoreSummary_TooLong(t *testing.T) {
	doc := goodResume()
	doc.Summary = strings.TrimSpace(strings.Repeat("delivered reliable platform services ", 25))

	result := scoreSummary(doc)

	// 3 for the long band, 2 for no first person, 1 for no metric, 2 length bonus.
	assert.Equal(t, 8.0, result.Score)
	ids := issueIDs(result.Issues)
	assert.Contains(t, ids, "summary-too-long")
	assert.Contains(t, ids, "summary-no-metrics")
}

func TestScoreSummary_FirstPerson(t *testing.T) {
	doc := goodResume()
	doc.Summary = "I led platform teams that cut infrastructure costs 30% while scaling " +
		"distributed services to support product launches across three continents and " +
		"nine years of sustained growth."

	result := scoreSummary(doc)

	// 4 band, 0 first person, 2 metric, 2 length bonus.
	assert.Equal(t, 8.0, result.Score)
	assert.Equal(t, []string{"summary-first-person"}, issueIDs(result.Issues))
	assert.Equal(t, types.SeverityWarning, result.Issues[0].Severity)
}

func TestScoreSummary_FirstPersonWholeWordOnly(t *testing.T) {
	// "Implemented" and "mystified" contain pronoun substrings but are not
	// first-person usage.
	assert.False(t, hasFirstPerson("Implemented mystified analytics"))
	assert.True(t, hasFirstPerson("My team shipped it"))
	assert.True(t, hasFirstPerson("Results I delivered"))
}
