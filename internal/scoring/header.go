package scoring

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/ats-scorer/internal/types"
)

const maxHeaderScore = 10

// Minimal email shape: local-part "@" domain "." tld, no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// scoreHeader evaluates the contact block. Points: name 3, email 2, phone 2,
// location 1, title 1, professional-network URL 1.
func scoreHeader(doc *types.ResumeDocument) types.SectionScore {
	section := types.SectionHeader
	var issues []types.Issue
	score := 0.0

	h := doc.Header

	if h.Name != "" {
		score += 3
		if isAllUpper(h.Name) && len(h.Name) > 3 {
			score--
			issues = append(issues, newIssue(section, "name-all-caps", types.SeverityWarning,
				"Name is in all caps",
				fmt.Sprintf("%q is written entirely in uppercase, which some ATS parsers misread as a section heading.", h.Name),
				"Use normal capitalization for your name."))
		}
		if hasNameSymbols(h.Name) {
			score--
			issues = append(issues, newIssue(section, "name-symbols", types.SeverityWarning,
				"Name contains symbols",
				"Your name contains characters other than letters, spaces, hyphens, or apostrophes.",
				"Remove decorative characters from the name field."))
		}
	} else {
		issues = append(issues, newIssue(section, "missing-name", types.SeverityCritical,
			"Missing name",
			"The resume has no name. ATS systems index applications by candidate name.",
			"Add your full name at the top of the resume."))
	}

	if h.Email != "" {
		if emailPattern.MatchString(h.Email) {
			score += 2
		} else {
			issues = append(issues, newIssue(section, "invalid-email", types.SeverityWarning,
				"Invalid email address",
				fmt.Sprintf("%q does not look like a valid email address.", h.Email),
				"Use a plain address like name@example.com."))
		}
	} else {
		issues = append(issues, newIssue(section, "missing-email", types.SeverityCritical,
			"Missing email",
			"The resume has no email address, so recruiters cannot reach you.",
			"Add a professional email address to the header."))
	}

	if h.Phone != "" {
		score += 2
	} else {
		issues = append(issues, newIssue(section, "missing-phone", types.SeverityWarning,
			"Missing phone number",
			"No phone number found in the header.",
			"Add a phone number with country code if applying internationally."))
	}

	if h.Location != "" {
		score++
	} else {
		issues = append(issues, newIssue(section, "missing-location", types.SeverityWarning,
			"Missing location",
			"No location found. Many ATS filters screen by city or region.",
			"Add your city and state or country."))
	}

	if h.Title != "" {
		score++
	} else {
		issues = append(issues, newIssue(section, "missing-title", types.SeveritySuggestion,
			"Missing professional title",
			"A professional title under your name helps ATS keyword matching for the target role.",
			"Add a title such as \"Senior Software Engineer\"."))
	}

	if h.LinkedIn != "" {
		score++
		if !strings.Contains(strings.ToLower(h.LinkedIn), "/in/") {
			issues = append(issues, newIssue(section, "linkedin-shape", types.SeveritySuggestion,
				"Profile URL has an unusual shape",
				fmt.Sprintf("%q does not look like a canonical profile URL (domain/in/username).", h.LinkedIn),
				"Link directly to your public profile page."))
		}
	} else {
		issues = append(issues, newIssue(section, "missing-linkedin", types.SeveritySuggestion,
			"Missing professional-network URL",
			"No LinkedIn or similar profile URL found in the header.",
			"Add a link to your professional profile."))
	}

	return types.SectionScore{
		Name:     section,
		Score:    clamp(score, maxHeaderScore),
		MaxScore: maxHeaderScore,
		Issues:   issues,
	}
}

// isAllUpper reports whether every letter in s is uppercase. Strings with no
// letters at all do not count as uppercase.
func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// hasNameSymbols reports whether s contains characters outside letters,
// spaces, hyphens, and apostrophes.
func hasNameSymbols(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsSpace(r) || r == '-' || r == '\'' || r == '’' {
			continue
		}
		return true
	}
	return false
}
