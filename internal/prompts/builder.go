package prompts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

// BuildRemediationPrompt renders the instruction block for rewriting one
// resume section, embedding the formatted issue list and minimal context
// from the document. The result is handed to an external text-generation
// collaborator; this function performs no generation itself.
func BuildRemediationPrompt(sectionName string, doc *types.ResumeDocument, issues []types.Issue) (string, error) {
	tmpl, err := Get(templateKey(sectionName))
	if err != nil {
		return "", err
	}
	return Format(tmpl, map[string]string{
		"Section": sectionName,
		"Issues":  formatIssues(issues),
		"Context": sectionContext(sectionName, doc),
	}), nil
}

// templateKey maps a section name onto its template family.
func templateKey(sectionName string) string {
	switch strings.ToLower(sectionName) {
	case types.SectionSummary, types.SectionExperience, types.SectionSkills:
		return strings.ToLower(sectionName)
	default:
		return "default"
	}
}

// formatIssues renders issues as a bulleted list, one line each.
func formatIssues(issues []types.Issue) string {
	if len(issues) == 0 {
		return "- (no specific issues recorded)"
	}
	var sb strings.Builder
	for i, issue := range issues {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("- [%s] %s: %s", issue.Severity, issue.Title, issue.Details))
		if issue.Fix != "" {
			sb.WriteString(fmt.Sprintf(" (suggested fix: %s)", issue.Fix))
		}
	}
	return sb.String()
}

// sectionContext extracts just enough of the document for the rewrite to
// work from, per section family.
func sectionContext(sectionName string, doc *types.ResumeDocument) string {
	switch strings.ToLower(sectionName) {
	case types.SectionSummary:
		if doc.Summary == "" {
			return "(empty)"
		}
		return doc.Summary
	case types.SectionExperience:
		return experienceContext(doc)
	case types.SectionSkills:
		return skillsContext(doc)
	default:
		return fmt.Sprintf("Candidate: %s, %s", doc.Header.Name, doc.Header.Title)
	}
}

func experienceContext(doc *types.ResumeDocument) string {
	var sb strings.Builder
	for _, exp := range doc.Experience {
		if !exp.IsValid() {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s at %s (%s - %s)\n", exp.Title, exp.Company, exp.StartDate, exp.EndDate))
		for _, b := range exp.Bullets {
			sb.WriteString("  - ")
			sb.WriteString(b)
			sb.WriteString("\n")
		}
	}
	if sb.Len() == 0 {
		return "(no experience entries)"
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func skillsContext(doc *types.ResumeDocument) string {
	categories := make([]string, 0, len(doc.Skills))
	for cat := range doc.Skills {
		categories = append(categories, cat)
	}
	// Map iteration order is random; the prompt must be deterministic.
	sort.Strings(categories)

	var sb strings.Builder
	for _, cat := range categories {
		sb.WriteString(fmt.Sprintf("%s: %s\n", cat, strings.Join(doc.Skills[cat], ", ")))
	}
	if sb.Len() == 0 {
		return "(no skills listed)"
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
