package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

const maxSkillsScore = 15

// scoreSkills evaluates the skills section: count band (8), category spread
// (4), and a verbosity check (3).
func scoreSkills(doc *types.ResumeDocument) types.SectionScore {
	section := types.SectionSkills
	var issues []types.Issue

	flat := flattenSkills(doc)
	if len(flat) == 0 {
		issues = append(issues, newIssue(section, "none", types.SeverityCritical,
			"No skills listed",
			"The resume has no skills section content. Skills are the primary ATS keyword source.",
			"Add a skills section with 12-25 concrete skills grouped by category."))
		return types.SectionScore{Name: section, Score: 0, MaxScore: maxSkillsScore, Issues: issues}
	}

	score := 0.0
	switch n := len(flat); {
	case n < 5:
		score += 2
		issues = append(issues, newIssue(section, "too-few", types.SeverityWarning,
			"Very few skills listed",
			fmt.Sprintf("Only %d skill(s) listed; ATS keyword matching needs more surface.", n),
			"List at least 12 relevant skills."))
	case n <= 7:
		score += 4
		issues = append(issues, newIssue(section, "few", types.SeveritySuggestion,
			"Skills list is thin",
			fmt.Sprintf("%d skills listed; 12-25 gives the best keyword coverage.", n),
			"Add more tools, languages, and methods you actually use."))
	case n <= 11:
		score += 6
		issues = append(issues, newIssue(section, "almost-enough", types.SeveritySuggestion,
			"Skills list could be longer",
			fmt.Sprintf("%d skills listed; a few more would reach the 12-25 sweet spot.", n),
			"Add the remaining skills relevant to your target role."))
	case n <= 25:
		score += 8
	default:
		score += 6
		issues = append(issues, newIssue(section, "too-many", types.SeveritySuggestion,
			"Too many skills listed",
			fmt.Sprintf("%d skills listed; past 25 the list reads as padding.", n),
			"Cut to the skills you would defend in an interview."))
	}

	categories := 0
	for _, skills := range doc.Skills {
		for _, s := range skills {
			if strings.TrimSpace(s) != "" {
				categories++
				break
			}
		}
	}
	switch {
	case categories < 2:
		score++
		issues = append(issues, newIssue(section, "one-category", types.SeveritySuggestion,
			"Skills are not grouped",
			"All skills sit in a single category. Grouping helps both ATS section detection and human scanning.",
			"Group skills into 2-4 categories such as Languages, Infrastructure, and Tools."))
	case categories == 2:
		score += 3
	default:
		score += 4
	}

	if offender := firstVerboseSkill(flat); offender != "" {
		score++
		issues = append(issues, newIssue(section, "verbose", types.SeveritySuggestion,
			"Skill entries are too wordy",
			fmt.Sprintf("%q reads as a sentence, not a skill. ATS matchers look for short tokens.", offender),
			"Keep each skill to a few words, e.g. \"Kubernetes\" not a description of using it."))
	} else {
		score += 3
	}

	return types.SectionScore{
		Name:     section,
		Score:    clamp(score, maxSkillsScore),
		MaxScore: maxSkillsScore,
		Issues:   issues,
	}
}

// firstVerboseSkill returns the first skill longer than four words, or "".
func firstVerboseSkill(skills []string) string {
	for _, s := range skills {
		if countWords(s) > 4 {
			return s
		}
	}
	return ""
}
