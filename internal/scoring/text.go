// Package scoring implements the deterministic ATS compatibility scoring
// engine: seven independent section scorers, each a pure function of the
// resume document, plus the aggregator that folds them into a 0-100 report.
package scoring

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

// round applies round-half-away-from-zero semantics. Score boundary tests
// depend on this exact rule, so every rescaling in the engine goes through it.
func round(f float64) int {
	return int(math.Round(f))
}

// clamp bounds a section score to [0, max].
func clamp(score float64, max int) float64 {
	if score < 0 {
		return 0
	}
	if score > float64(max) {
		return float64(max)
	}
	return score
}

// countWords counts whitespace-separated words.
func countWords(s string) int {
	return len(strings.Fields(s))
}

var firstPersonPattern = regexp.MustCompile(`(?i)\b(i|me|my|myself)\b`)

// hasFirstPerson reports whether the text uses first-person pronouns,
// matching whole words only.
func hasFirstPerson(s string) bool {
	return firstPersonPattern.MatchString(s)
}

// allText concatenates every text field of the document, space-separated.
// Used by the formatting scorer and the keyword matcher, which both operate
// on the document as one flat string.
func allText(doc *types.ResumeDocument) string {
	var sb strings.Builder
	add := func(parts ...string) {
		for _, p := range parts {
			if p == "" {
				continue
			}
			sb.WriteString(p)
			sb.WriteString(" ")
		}
	}

	h := doc.Header
	add(h.Name, h.Title, h.Location, h.Email, h.Phone, h.LinkedIn)
	add(doc.Summary)
	for _, exp := range doc.Experience {
		add(exp.Title, exp.Company, exp.StartDate, exp.EndDate, exp.Location)
		add(exp.Bullets...)
	}
	for _, edu := range doc.Education {
		add(edu.Degree, edu.Field, edu.Institution, edu.GraduationDate, edu.Location)
	}
	for _, cert := range doc.Certifications {
		add(cert.Name, cert.Issuer, cert.Date)
	}
	for _, cat := range sortedSkillCategories(doc) {
		add(doc.Skills[cat]...)
	}
	for _, proj := range doc.Projects {
		add(proj.Title, proj.Link)
		add(proj.Bullets...)
	}

	return strings.TrimSpace(sb.String())
}

// AllText exposes the document flattening for the keyword matcher and the
// remediation builder.
func AllText(doc *types.ResumeDocument) string {
	return allText(doc)
}

// validExperience filters out placeholder entries (empty company).
func validExperience(doc *types.ResumeDocument) []types.Experience {
	valid := make([]types.Experience, 0, len(doc.Experience))
	for _, exp := range doc.Experience {
		if exp.IsValid() {
			valid = append(valid, exp)
		}
	}
	return valid
}

// validEducation filters out placeholder entries (empty institution).
func validEducation(doc *types.ResumeDocument) []types.Education {
	valid := make([]types.Education, 0, len(doc.Education))
	for _, edu := range doc.Education {
		if edu.IsValid() {
			valid = append(valid, edu)
		}
	}
	return valid
}

// sortedSkillCategories returns the skill category names in sorted order.
// Map iteration order is random; everything derived from skills must walk
// the categories deterministically.
func sortedSkillCategories(doc *types.ResumeDocument) []string {
	categories := make([]string, 0, len(doc.Skills))
	for cat := range doc.Skills {
		categories = append(categories, cat)
	}
	sort.Strings(categories)
	return categories
}

// flattenSkills collects all non-blank skills across categories, in sorted
// category order.
func flattenSkills(doc *types.ResumeDocument) []string {
	var flat []string
	for _, cat := range sortedSkillCategories(doc) {
		for _, s := range doc.Skills[cat] {
			if strings.TrimSpace(s) != "" {
				flat = append(flat, s)
			}
		}
	}
	return flat
}

// newIssue builds an immutable issue value. IDs are deterministic: the same
// document always yields the same IDs, which keeps re-scoring idempotent.
func newIssue(section, id string, severity types.Severity, title, details, fix string) types.Issue {
	return types.Issue{
		ID:       section + "-" + id,
		Section:  section,
		Severity: severity,
		Title:    title,
		Details:  details,
		Fix:      fix,
	}
}
