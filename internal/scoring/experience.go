package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-scorer/internal/patterns"
	"github.com/jonathan/ats-scorer/internal/types"
)

const (
	maxExperienceScore = 30

	// Each valid role is scored on an internal 0-10 scale, then the sum is
	// normalized across roles and rescaled to the remaining point budget.
	// This keeps the section fair regardless of how many roles are listed.
	perRoleScale        = 10
	experienceBase      = 5
	orderPoints         = 2
	normalizedBudget    = 23
	fullBulletBandLow   = 3
	fullBulletBandHigh  = 8
	strongVerbThreshold = 0.8
	mixedVerbThreshold  = 0.5
	metricRatioFull     = 0.4
)

// scoreExperience evaluates work history. Base 5 for any valid experience,
// 2 for reverse-chronological ordering, and 23 distributed by per-role
// normalization.
func scoreExperience(doc *types.ResumeDocument) types.SectionScore {
	section := types.SectionExperience
	var issues []types.Issue

	valid := validExperience(doc)
	if len(valid) == 0 {
		issues = append(issues, newIssue(section, "none", types.SeverityCritical,
			"No work experience",
			"No experience entries with an employer were found. ATS systems reject resumes without work history for experienced roles.",
			"Add your work history with employer, dates, and bullet points."))
		return types.SectionScore{Name: section, Score: 0, MaxScore: maxExperienceScore, Issues: issues}
	}

	score := float64(experienceBase)

	orderScore, orderIssue := checkReverseChronology(valid)
	score += orderScore
	if orderIssue != nil {
		issues = append(issues, *orderIssue)
	}

	rawSum := 0.0
	for i, exp := range valid {
		raw, roleIssues := scoreRole(i+1, &exp)
		rawSum += raw
		issues = append(issues, roleIssues...)
	}

	// Normalize: raw points out of 10 per role, averaged over all roles,
	// rescaled to the 23-point budget, rounded half away from zero.
	score += float64(round(rawSum / float64(perRoleScale*len(valid)) * normalizedBudget))

	return types.SectionScore{
		Name:     section,
		Score:    clamp(score, maxExperienceScore),
		MaxScore: maxExperienceScore,
		Issues:   issues,
	}
}

// checkReverseChronology compares only the first and last listed end dates.
// A full ordering validation would change scores on existing fixtures, so the
// narrow heuristic is kept on purpose.
func checkReverseChronology(valid []types.Experience) (float64, *types.Issue) {
	var endDates []string
	for _, exp := range valid {
		if exp.EndDate != "" {
			endDates = append(endDates, exp.EndDate)
		}
	}
	if len(endDates) < 2 {
		return orderPoints, nil
	}

	first := endDates[0]
	last := endDates[len(endDates)-1]
	if patterns.IsCurrentDate(last) && !patterns.IsCurrentDate(first) {
		issue := newIssue(types.SectionExperience, "not-reverse-chronological", types.SeverityWarning,
			"Experience is not in reverse-chronological order",
			"The current role appears at the bottom of the experience list. ATS parsers and recruiters expect the most recent role first.",
			"Reorder experience with the current or most recent role first.")
		return 0, &issue
	}
	return orderPoints, nil
}

// scoreRole scores one valid entry on the internal 0-10 scale:
// title 2, dates 1, bullet count 3, action-verb ratio 2, quantified ratio 2.
// idx is 1-based and only used to build stable issue IDs.
func scoreRole(idx int, exp *types.Experience) (float64, []types.Issue) {
	section := types.SectionExperience
	var issues []types.Issue
	raw := 0.0

	roleName := exp.Title
	if roleName == "" {
		roleName = exp.Company
	}

	if exp.Title != "" {
		raw += 2
	}

	raw += scoreRoleDates(idx, exp, roleName, &issues)

	bullets := exp.Bullets
	switch n := len(bullets); {
	case n == 0:
		issues = append(issues, newIssue(section, fmt.Sprintf("role-%d-no-bullets", idx), types.SeverityCritical,
			"Role has no bullet points",
			fmt.Sprintf("%q lists no accomplishments. ATS keyword matching has nothing to work with.", roleName),
			"Add 3-8 bullets describing what you did and achieved."))
	case n <= 2:
		raw++
		issues = append(issues, newIssue(section, fmt.Sprintf("role-%d-few-bullets", idx), types.SeverityWarning,
			"Role has very few bullets",
			fmt.Sprintf("%q has only %d bullet(s); aim for 3-8.", roleName, n),
			"Expand the role with more accomplishment bullets."))
	case n <= fullBulletBandHigh:
		raw += 3
	default:
		raw += 2
		issues = append(issues, newIssue(section, fmt.Sprintf("role-%d-many-bullets", idx), types.SeveritySuggestion,
			"Role has too many bullets",
			fmt.Sprintf("%q has %d bullets; long lists dilute the strongest points.", roleName, n),
			"Trim to the 3-8 bullets with the clearest impact."))
	}

	if len(bullets) > 0 {
		raw += scoreRoleVerbs(idx, bullets, roleName, &issues)
		raw += scoreRoleMetrics(idx, bullets, roleName, &issues)
		issues = append(issues, bulletLengthIssues(idx, bullets)...)
		issues = append(issues, duplicateBulletIssues(idx, bullets, roleName)...)
	}

	return raw, issues
}

// scoreRoleDates awards the single date point: 1 when both dates are present
// and match an accepted format, 0.5 when present but malformed, 0 with a
// warning when either is missing.
func scoreRoleDates(idx int, exp *types.Experience, roleName string, issues *[]types.Issue) float64 {
	if exp.StartDate == "" || exp.EndDate == "" {
		*issues = append(*issues, newIssue(types.SectionExperience, fmt.Sprintf("role-%d-missing-dates", idx), types.SeverityWarning,
			"Role is missing dates",
			fmt.Sprintf("%q has no start or end date. ATS systems compute tenure from these.", roleName),
			"Add start and end dates, e.g. \"Jan 2021 - Present\"."))
		return 0
	}
	if patterns.IsValidDate(exp.StartDate) && patterns.IsValidDate(exp.EndDate) {
		return 1
	}
	return 0.5
}

func scoreRoleVerbs(idx int, bullets []string, roleName string, issues *[]types.Issue) float64 {
	strong := 0
	for _, b := range bullets {
		if patterns.StartsWithActionVerb(b) {
			strong++
		}
	}
	ratio := float64(strong) / float64(len(bullets))
	switch {
	case ratio >= strongVerbThreshold:
		return 2
	case ratio >= mixedVerbThreshold:
		weak := len(bullets) - strong
		*issues = append(*issues, newIssue(types.SectionExperience, fmt.Sprintf("role-%d-weak-verbs", idx), types.SeverityWarning,
			"Some bullets lack strong action verbs",
			fmt.Sprintf("%d bullet(s) in %q do not start with a strong action verb.", weak, roleName),
			"Start every bullet with a verb like Led, Built, or Reduced."))
		return 1
	default:
		*issues = append(*issues, newIssue(types.SectionExperience, fmt.Sprintf("role-%d-no-verbs", idx), types.SeverityWarning,
			"Bullets lack strong action verbs",
			fmt.Sprintf("Only %.0f%% of bullets in %q start with a strong action verb.", ratio*100, roleName),
			"Start every bullet with a verb like Led, Built, or Reduced."))
		return 0
	}
}

func scoreRoleMetrics(idx int, bullets []string, roleName string, issues *[]types.Issue) float64 {
	quantified := 0
	for _, b := range bullets {
		if patterns.HasQuantifiedMetric(b) {
			quantified++
		}
	}
	if quantified == 0 {
		*issues = append(*issues, newIssue(types.SectionExperience, fmt.Sprintf("role-%d-no-metrics", idx), types.SeverityWarning,
			"Role has no quantified results",
			fmt.Sprintf("No bullet in %q contains a number, percentage, or amount.", roleName),
			"Quantify impact: \"Reduced build time 40%\" beats \"Improved builds\"."))
		return 0
	}
	ratio := float64(quantified) / float64(len(bullets))
	if ratio < metricRatioFull {
		*issues = append(*issues, newIssue(types.SectionExperience, fmt.Sprintf("role-%d-few-metrics", idx), types.SeveritySuggestion,
			"Few bullets are quantified",
			fmt.Sprintf("Only %d of %d bullets in %q contain a measurable result.", quantified, len(bullets), roleName),
			"Add numbers to more bullets where you can."))
		return 1
	}
	return 2
}

// bulletLengthIssues flags over- and under-long bullets. Issue-only: lengths
// never move the score.
func bulletLengthIssues(idx int, bullets []string) []types.Issue {
	var issues []types.Issue
	for bi, b := range bullets {
		words := countWords(b)
		switch {
		case words > 30:
			issues = append(issues, newIssue(types.SectionExperience,
				fmt.Sprintf("role-%d-bullet-%d-long", idx, bi+1), types.SeveritySuggestion,
				"Bullet is too long",
				fmt.Sprintf("Bullet %d runs %d words; ATS extracts and recruiters skim one-liners.", bi+1, words),
				"Split or tighten the bullet to under 30 words."))
		case words > 0 && words < 5:
			issues = append(issues, newIssue(types.SectionExperience,
				fmt.Sprintf("role-%d-bullet-%d-brief", idx, bi+1), types.SeveritySuggestion,
				"Bullet is too brief",
				fmt.Sprintf("Bullet %d is only %d words and reads as a fragment.", bi+1, words),
				"Say what you did, how, and with what result."))
		}
	}
	return issues
}

// duplicateBulletIssues flags case-insensitive exact duplicates. Issue-only.
func duplicateBulletIssues(idx int, bullets []string, roleName string) []types.Issue {
	seen := make(map[string]bool, len(bullets))
	var issues []types.Issue
	for bi, b := range bullets {
		key := strings.ToLower(strings.TrimSpace(b))
		if key == "" {
			continue
		}
		if seen[key] {
			issues = append(issues, newIssue(types.SectionExperience,
				fmt.Sprintf("role-%d-bullet-%d-duplicate", idx, bi+1), types.SeverityWarning,
				"Duplicate bullet",
				fmt.Sprintf("Bullet %d in %q repeats an earlier bullet verbatim.", bi+1, roleName),
				"Replace the duplicate with a distinct accomplishment."))
		}
		seen[key] = true
	}
	return issues
}
