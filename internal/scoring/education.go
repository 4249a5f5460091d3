package scoring

import (
	"fmt"

	"github.com/jonathan/ats-scorer/internal/types"
)

const (
	maxEducationScore = 10
	educationBase     = 3

	// Per-entry internal scale: degree 3, graduation date 2, field 2.
	perEntryScale      = 7
	educationNormalize = 7
)

// scoreEducation evaluates education history with the same per-entry
// normalization technique as the experience scorer, on a 7-point scale.
func scoreEducation(doc *types.ResumeDocument) types.SectionScore {
	section := types.SectionEducation
	var issues []types.Issue

	valid := validEducation(doc)
	if len(valid) == 0 {
		issues = append(issues, newIssue(section, "none", types.SeverityWarning,
			"No education listed",
			"No education entries with an institution were found. Many ATS filters screen on education.",
			"Add your highest degree with institution and graduation date."))
		return types.SectionScore{Name: section, Score: 0, MaxScore: maxEducationScore, Issues: issues}
	}

	rawSum := 0.0
	for i, edu := range valid {
		raw := 0.0
		if edu.Degree != "" {
			raw += 3
		} else {
			issues = append(issues, newIssue(section, fmt.Sprintf("entry-%d-missing-degree", i+1), types.SeveritySuggestion,
				"Education entry has no degree",
				fmt.Sprintf("The entry for %q does not name a degree.", edu.Institution),
				"Name the degree, e.g. \"B.S.\" or \"Master of Science\"."))
		}
		if edu.GraduationDate != "" {
			raw += 2
		} else {
			issues = append(issues, newIssue(section, fmt.Sprintf("entry-%d-missing-date", i+1), types.SeveritySuggestion,
				"Education entry has no graduation date",
				fmt.Sprintf("The entry for %q has no graduation date.", edu.Institution),
				"Add the graduation year."))
		}
		if edu.Field != "" {
			raw += 2
		}
		rawSum += raw
	}

	score := float64(educationBase) +
		float64(round(rawSum/float64(perEntryScale*len(valid))*educationNormalize))

	return types.SectionScore{
		Name:     section,
		Score:    clamp(score, maxEducationScore),
		MaxScore: maxEducationScore,
		Issues:   issues,
	}
}
