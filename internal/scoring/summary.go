package scoring

import (
	"fmt"

	"github.com/jonathan/ats-scorer/internal/patterns"
	"github.com/jonathan/ats-scorer/internal/types"
)

const maxSummaryScore = 10

// scoreSummary evaluates the professional summary: word-count band (4),
// first-person check (2), quantified achievement (2), length bonus (2).
func scoreSummary(doc *types.ResumeDocument) types.SectionScore {
	section := types.SectionSummary
	var issues []types.Issue

	if doc.Summary == "" {
		issues = append(issues, newIssue(section, "missing", types.SeverityCritical,
			"Missing summary",
			"The resume has no professional summary. ATS systems weight the top of the document heavily.",
			"Add a 2-4 sentence summary of your experience and target role."))
		return types.SectionScore{Name: section, Score: 0, MaxScore: maxSummaryScore, Issues: issues}
	}

	score := 0.0
	words := countWords(doc.Summary)
	switch {
	case words < 20:
		score++
		issues = append(issues, newIssue(section, "too-short", types.SeverityWarning,
			"Summary is too short",
			fmt.Sprintf("The summary is only %d words; aim for 20-80.", words),
			"Expand the summary to cover your specialty, seniority, and one standout result."))
	case words > 80:
		score += 3
		issues = append(issues, newIssue(section, "too-long", types.SeveritySuggestion,
			"Summary is too long",
			fmt.Sprintf("The summary runs %d words; recruiters skim anything over 80.", words),
			"Tighten the summary to 20-80 words."))
	default:
		score += 4
	}

	if hasFirstPerson(doc.Summary) {
		issues = append(issues, newIssue(section, "first-person", types.SeverityWarning,
			"Summary uses first person",
			"The summary contains first-person pronouns (I, me, my). Resume convention is implied first person.",
			"Rewrite without pronouns: \"Led...\" instead of \"I led...\"."))
	} else {
		score += 2
	}

	if patterns.HasQuantifiedMetric(doc.Summary) {
		score += 2
	} else {
		score++
		issues = append(issues, newIssue(section, "no-metrics", types.SeveritySuggestion,
			"Summary has no quantified achievement",
			"No percentage, amount, or measurable result found in the summary.",
			"Anchor the summary with one number, e.g. \"cut infra spend 30%\"."))
	}

	// Length over 50 characters works as a cheap keyword-density proxy.
	if len(doc.Summary) > 50 {
		score += 2
	}

	return types.SectionScore{
		Name:     section,
		Score:    clamp(score, maxSummaryScore),
		MaxScore: maxSummaryScore,
		Issues:   issues,
	}
}
