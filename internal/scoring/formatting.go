package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-scorer/internal/patterns"
	"github.com/jonathan/ats-scorer/internal/types"
)

const maxFormattingScore = 10

// scoreFormatting evaluates document-level hygiene on the concatenation of
// every text field: pictographs (2), tab characters (1), total word count
// (3), section presence (3), and date-format consistency (1).
func scoreFormatting(doc *types.ResumeDocument) types.SectionScore {
	section := types.SectionFormatting
	var issues []types.Issue
	score := 0.0

	text := allText(doc)

	if patterns.ContainsPictograph(text) {
		issues = append(issues, newIssue(section, "pictographs", types.SeverityCritical,
			"Resume contains emoji or symbols",
			"Pictographic characters break many ATS text extractors and can corrupt the parsed resume.",
			"Remove all emoji and decorative symbols."))
	} else {
		score += 2
	}

	if strings.ContainsRune(text, '\t') {
		issues = append(issues, newIssue(section, "tabs", types.SeverityWarning,
			"Resume contains tab characters",
			"Tab characters usually come from table layouts, which ATS parsers read in the wrong order.",
			"Replace tabs and table layouts with plain single-column text."))
	} else {
		score++
	}

	switch words := countWords(text); {
	case words < 100:
		issues = append(issues, newIssue(section, "too-sparse", types.SeverityWarning,
			"Resume has very little content",
			fmt.Sprintf("The whole document is only %d words; there is too little text to match keywords against.", words),
			"Flesh out experience bullets and the summary."))
	case words < 200:
		score++
		issues = append(issues, newIssue(section, "sparse", types.SeveritySuggestion,
			"Resume is on the light side",
			fmt.Sprintf("%d words total; 200-1200 parses best.", words),
			"Add detail to your most recent roles."))
	case words <= 1200:
		score += 3
	default:
		score += 2
		issues = append(issues, newIssue(section, "dense", types.SeveritySuggestion,
			"Resume is very long",
			fmt.Sprintf("%d words total; consider cutting older or less relevant material.", words),
			"Trim roles older than ten years to one or two lines."))
	}

	presentScore, presentIssue := checkSectionPresence(doc)
	score += presentScore
	if presentIssue != nil {
		issues = append(issues, *presentIssue)
	}

	consistencyScore, consistencyIssue := checkDateConsistency(doc)
	score += consistencyScore
	if consistencyIssue != nil {
		issues = append(issues, *consistencyIssue)
	}

	return types.SectionScore{
		Name:     section,
		Score:    clamp(score, maxFormattingScore),
		MaxScore: maxFormattingScore,
		Issues:   issues,
	}
}

// checkSectionPresence counts the five core sections and awards up to 3
// points proportionally, with a critical issue naming anything missing.
func checkSectionPresence(doc *types.ResumeDocument) (float64, *types.Issue) {
	var missing []string
	present := 0

	if doc.Header.Name != "" && doc.Header.Email != "" {
		present++
	} else {
		missing = append(missing, "contact info")
	}
	if doc.Summary != "" {
		present++
	} else {
		missing = append(missing, "summary")
	}
	if len(validExperience(doc)) > 0 {
		present++
	} else {
		missing = append(missing, "experience")
	}
	if len(validEducation(doc)) > 0 {
		present++
	} else {
		missing = append(missing, "education")
	}
	if len(flattenSkills(doc)) > 0 {
		present++
	} else {
		missing = append(missing, "skills")
	}

	if present == 5 {
		return 3, nil
	}
	issue := newIssue(types.SectionFormatting, "missing-sections", types.SeverityCritical,
		"Core resume sections are missing",
		fmt.Sprintf("Missing: %s. ATS parsers expect all five standard sections.", strings.Join(missing, ", ")),
		"Add the missing sections, even if brief.")
	return float64(round(float64(present) / 5 * 3)), &issue
}

// checkDateConsistency collects every experience and education date and
// awards the point unless three or more dates span multiple formats. Current
// markers such as "Present" are not dates and are excluded.
func checkDateConsistency(doc *types.ResumeDocument) (float64, *types.Issue) {
	formats := make(map[patterns.DateFormat]bool)
	dated := 0

	classify := func(s string) {
		if s == "" || patterns.IsCurrentDate(s) {
			return
		}
		dated++
		if f := patterns.ClassifyDate(s); f != patterns.FormatUnknown {
			formats[f] = true
		}
	}

	for _, exp := range doc.Experience {
		if !exp.IsValid() {
			continue
		}
		classify(exp.StartDate)
		classify(exp.EndDate)
	}
	for _, edu := range doc.Education {
		if !edu.IsValid() {
			continue
		}
		classify(edu.GraduationDate)
	}

	if dated >= 3 && len(formats) > 1 {
		issue := newIssue(types.SectionFormatting, "mixed-date-formats", types.SeverityWarning,
			"Date formats are inconsistent",
			"Dates mix styles (e.g. \"Jan 2020\" alongside \"01/2020\"). Inconsistent formats confuse tenure parsing.",
			"Pick one date format and use it everywhere.")
		return 0, &issue
	}
	return 1, nil
}
