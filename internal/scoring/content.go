package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-scorer/internal/patterns"
	"github.com/jonathan/ats-scorer/internal/types"
)

const maxContentScore = 15

// scoreContent evaluates cross-cutting content quality: projects (3),
// certifications (2), metrics density (4), action-verb density (3), and
// keyword diversity (3).
func scoreContent(doc *types.ResumeDocument) types.SectionScore {
	section := types.SectionContent
	var issues []types.Issue
	score := 0.0

	score += scoreProjects(doc, &issues)
	score += scoreCertifications(doc, &issues)

	bullets := collectExperienceBullets(doc)
	score += scoreMetricsDensity(bullets, &issues)
	score += scoreVerbDensity(bullets)
	score += scoreKeywordDiversity(doc, &issues)

	return types.SectionScore{
		Name:     section,
		Score:    clamp(score, maxContentScore),
		MaxScore: maxContentScore,
		Issues:   issues,
	}
}

func scoreProjects(doc *types.ResumeDocument, issues *[]types.Issue) float64 {
	var valid []types.Project
	for _, p := range doc.Projects {
		if p.Title != "" {
			valid = append(valid, p)
		}
	}
	if len(valid) == 0 {
		*issues = append(*issues, newIssue(types.SectionContent, "no-projects", types.SeveritySuggestion,
			"No projects listed",
			"A projects section is optional but gives ATS matchers more keyword surface.",
			"Add 1-2 projects with a line on what each demonstrates."))
		return 0
	}
	for _, p := range valid {
		for _, b := range p.Bullets {
			if strings.TrimSpace(b) != "" {
				return 3
			}
		}
	}
	*issues = append(*issues, newIssue(types.SectionContent, "bare-projects", types.SeveritySuggestion,
		"Projects have no descriptions",
		"Projects are listed by title only; without bullets they contribute nothing to keyword matching.",
		"Add a bullet or two per project."))
	return 1
}

func scoreCertifications(doc *types.ResumeDocument, issues *[]types.Issue) float64 {
	var valid []types.Certification
	for _, c := range doc.Certifications {
		if c.Name != "" {
			valid = append(valid, c)
		}
	}
	if len(valid) == 0 {
		*issues = append(*issues, newIssue(types.SectionContent, "no-certifications", types.SeveritySuggestion,
			"No certifications listed",
			"Certifications are optional, but relevant ones are strong ATS filter matches.",
			"List current certifications with their issuer."))
		return 0
	}
	for _, c := range valid {
		if c.Issuer != "" {
			return 2
		}
	}
	*issues = append(*issues, newIssue(types.SectionContent, "certs-no-issuer", types.SeveritySuggestion,
		"Certifications have no issuer",
		"Certifications are listed without the issuing body; recruiters verify against the issuer.",
		"Add the issuer, e.g. \"AWS\" or \"CNCF\"."))
	return 1
}

func collectExperienceBullets(doc *types.ResumeDocument) []string {
	var bullets []string
	for _, exp := range validExperience(doc) {
		bullets = append(bullets, exp.Bullets...)
	}
	return bullets
}

func scoreMetricsDensity(bullets []string, issues *[]types.Issue) float64 {
	if len(bullets) == 0 {
		return 0
	}
	quantified := 0
	for _, b := range bullets {
		if patterns.HasQuantifiedMetric(b) {
			quantified++
		}
	}
	ratio := float64(quantified) / float64(len(bullets))
	switch {
	case ratio >= 0.5:
		return 4
	case ratio >= 0.3:
		*issues = append(*issues, newIssue(types.SectionContent, "metrics-moderate", types.SeveritySuggestion,
			"Metrics density could be higher",
			fmt.Sprintf("%d of %d experience bullets contain a measurable result.", quantified, len(bullets)),
			"Aim for numbers in at least half of your bullets."))
		return 3
	case ratio > 0:
		*issues = append(*issues, newIssue(types.SectionContent, "metrics-low", types.SeverityWarning,
			"Few bullets are quantified",
			fmt.Sprintf("Only %d of %d experience bullets contain a measurable result.", quantified, len(bullets)),
			"Quantify outcomes wherever you can: scale, speed, money, or people."))
		return 2
	default:
		*issues = append(*issues, newIssue(types.SectionContent, "metrics-none", types.SeverityWarning,
			"No quantified results anywhere",
			"Not a single experience bullet contains a number, percentage, or amount.",
			"Rework your strongest bullets around measurable outcomes."))
		return 0
	}
}

// scoreVerbDensity awards up to 3 points for action-verb coverage across all
// experience bullets. Per-role verb warnings already cover the issue side, so
// none are duplicated here.
func scoreVerbDensity(bullets []string) float64 {
	if len(bullets) == 0 {
		return 0
	}
	strong := 0
	for _, b := range bullets {
		if patterns.StartsWithActionVerb(b) {
			strong++
		}
	}
	ratio := float64(strong) / float64(len(bullets))
	switch {
	case ratio >= 0.8:
		return 3
	case ratio >= 0.5:
		return 2
	case ratio > 0:
		return 1
	default:
		return 0
	}
}

// scoreKeywordDiversity counts unique lowercase tokens longer than three
// characters across the summary, experience text, and skills.
func scoreKeywordDiversity(doc *types.ResumeDocument, issues *[]types.Issue) float64 {
	var sb strings.Builder
	sb.WriteString(doc.Summary)
	sb.WriteString(" ")
	for _, exp := range validExperience(doc) {
		sb.WriteString(exp.Title)
		sb.WriteString(" ")
		sb.WriteString(exp.Company)
		sb.WriteString(" ")
		for _, b := range exp.Bullets {
			sb.WriteString(b)
			sb.WriteString(" ")
		}
	}
	for _, s := range flattenSkills(doc) {
		sb.WriteString(s)
		sb.WriteString(" ")
	}

	unique := make(map[string]bool)
	for _, tok := range strings.Fields(strings.ToLower(sb.String())) {
		tok = strings.Trim(tok, ".,;:()[]\"'")
		if len(tok) > 3 {
			unique[tok] = true
		}
	}

	switch n := len(unique); {
	case n > 150:
		return 3
	case n > 80:
		return 2
	case n > 40:
		return 1
	default:
		*issues = append(*issues, newIssue(types.SectionContent, "low-diversity", types.SeveritySuggestion,
			"Vocabulary is very narrow",
			fmt.Sprintf("Only %d distinct meaningful words across summary, experience, and skills.", n),
			"Vary your wording; repeated phrasing wastes keyword-matching opportunities."))
		return 0
	}
}
