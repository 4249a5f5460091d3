package scoring

import (
	"fmt"
	"sort"

	"github.com/jonathan/ats-scorer/internal/types"
)

// aggregate folds the seven section scores into the final report. Section
// maxima total exactly 100, so the overall score is the rounded raw sum; the
// ratio form is kept so future weight edits cannot silently break the scale.
func aggregate(sections []types.SectionScore) *types.ATSScoreReport {
	rawSum := 0.0
	maxSum := 0
	var issues []types.Issue
	for _, s := range sections {
		rawSum += s.Score
		maxSum += s.MaxScore
		issues = append(issues, s.Issues...)
	}

	overall := round(100 * rawSum / float64(maxSum))

	// Stable sort: within one severity tier issues keep the order their
	// scorers emitted them in, which the UI relies on for diffing.
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Severity.Rank() < issues[j].Severity.Rank()
	})

	return &types.ATSScoreReport{
		Overall:   overall,
		Sections:  sections,
		Issues:    issues,
		PassesATS: overall >= 70,
		Summary:   verdict(overall, issues),
	}
}

// verdict renders the one-line human-readable assessment for a score band.
func verdict(overall int, issues []types.Issue) string {
	criticals, warnings := 0, 0
	for _, issue := range issues {
		switch issue.Severity {
		case types.SeverityCritical:
			criticals++
		case types.SeverityWarning:
			warnings++
		}
	}

	switch {
	case overall >= 90:
		return fmt.Sprintf("Excellent ATS compatibility (%d/100). This resume should pass automated screening cleanly.", overall)
	case overall >= 80:
		return fmt.Sprintf("Very good ATS compatibility (%d/100). A few refinements would make it stronger.", overall)
	case overall >= 70:
		return fmt.Sprintf("Decent ATS compatibility (%d/100), but %d warning(s) need attention.", overall, warnings)
	case overall >= 50:
		return fmt.Sprintf("Needs significant improvement (%d/100): %d critical issue(s) and %d warning(s).", overall, criticals, warnings)
	default:
		return fmt.Sprintf("Major issues found (%d/100). Fix the %d critical issue(s) before applying anywhere.", overall, criticals)
	}
}
