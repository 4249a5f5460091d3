// Package patterns holds the closed vocabulary the scoring engine matches
// against: strong action verbs, stop words, quantified-achievement detectors,
// and accepted date formats. Everything here is read-only package data; the
// engine never mutates it and never consults an external corpus.
package patterns

import (
	"regexp"
	"strings"
)

// ActionVerbs is the closed set of strong resume verbs. A bullet "has a strong
// verb" when its first word, lowercased and stripped of non-letters, is in
// this set.
var ActionVerbs = map[string]bool{
	"accelerated": true, "achieved": true, "administered": true, "analyzed": true,
	"architected": true, "automated": true, "built": true, "collaborated": true,
	"conceived": true, "consolidated": true, "constructed": true, "coordinated": true,
	"created": true, "cut": true, "debugged": true, "decreased": true,
	"delivered": true, "deployed": true, "designed": true, "developed": true,
	"directed": true, "doubled": true, "drove": true, "eliminated": true,
	"engineered": true, "enhanced": true, "established": true, "evaluated": true,
	"executed": true, "expanded": true, "founded": true, "generated": true,
	"grew": true, "guided": true, "identified": true, "implemented": true,
	"improved": true, "increased": true, "initiated": true, "integrated": true,
	"introduced": true, "launched": true, "led": true, "maintained": true,
	"managed": true, "mentored": true, "migrated": true, "modernized": true,
	"negotiated": true, "optimized": true, "orchestrated": true, "organized": true,
	"overhauled": true, "owned": true, "partnered": true, "pioneered": true,
	"planned": true, "produced": true, "programmed": true, "redesigned": true,
	"reduced": true, "refactored": true, "released": true, "resolved": true,
	"restructured": true, "revamped": true, "scaled": true, "secured": true,
	"shipped": true, "simplified": true, "spearheaded": true, "standardized": true,
	"streamlined": true, "strengthened": true, "supervised": true, "supported": true,
	"tested": true, "trained": true, "transformed": true, "translated": true,
	"tripled": true, "unified": true, "upgraded": true, "validated": true,
}

// StopWords is the closed stop-word list used by the keyword matcher.
var StopWords = map[string]bool{
	"a": true, "about": true, "above": true, "after": true, "again": true,
	"all": true, "also": true, "an": true, "and": true, "any": true,
	"are": true, "as": true, "at": true, "be": true, "because": true,
	"been": true, "being": true, "below": true, "between": true, "both": true,
	"but": true, "by": true, "can": true, "could": true, "did": true,
	"do": true, "does": true, "doing": true, "down": true, "during": true,
	"each": true, "few": true, "for": true, "from": true, "further": true,
	"had": true, "has": true, "have": true, "having": true, "he": true,
	"her": true, "here": true, "hers": true, "him": true, "his": true,
	"how": true, "i": true, "if": true, "in": true, "into": true,
	"is": true, "it": true, "its": true, "just": true, "me": true,
	"more": true, "most": true, "my": true, "no": true, "nor": true,
	"not": true, "now": true, "of": true, "off": true, "on": true,
	"once": true, "only": true, "or": true, "other": true, "our": true,
	"out": true, "over": true, "own": true, "same": true, "she": true,
	"should": true, "so": true, "some": true, "such": true, "than": true,
	"that": true, "the": true, "their": true, "them": true, "then": true,
	"there": true, "these": true, "they": true, "this": true, "those": true,
	"through": true, "to": true, "too": true, "under": true, "until": true,
	"up": true, "us": true, "very": true, "was": true, "we": true,
	"were": true, "what": true, "when": true, "where": true, "which": true,
	"while": true, "who": true, "whom": true, "why": true, "will": true,
	"with": true, "would": true, "you": true, "your": true, "yours": true,
	// Job-posting boilerplate that carries no signal for matching.
	"ability": true, "able": true, "candidate": true, "company": true,
	"employee": true, "experience": true, "ideal": true, "include": true,
	"including": true, "job": true, "looking": true, "must": true,
	"opportunity": true, "plus": true, "position": true, "preferred": true,
	"required": true, "requirements": true, "responsibilities": true,
	"role": true, "skills": true, "strong": true, "team": true,
	"work": true, "working": true, "years": true,
}

// Quantified-achievement detectors. A text is "quantified" when it contains a
// percentage, a currency amount, or a bare number followed by a unit noun.
var (
	percentPattern  = regexp.MustCompile(`\d+(?:\.\d+)?\s?%`)
	currencyPattern = regexp.MustCompile(`[$€£¥]\s?\d[\d,.]*[kKmMbB]?`)
	numberPattern   = regexp.MustCompile(`\b\d[\d,.]*[kKmMbB+]?\s+(` + unitNouns + `)\b`)
)

// unitNouns are the nouns accepted after a bare number. Kept as one
// alternation so the detector stays a single compiled pattern.
const unitNouns = `users|customers|clients|people|engineers|developers|members|teams|employees|` +
	`projects|products|features|releases|deployments|services|systems|applications|` +
	`requests|transactions|queries|records|rows|events|messages|downloads|installs|` +
	`hours|days|weeks|months|countries|regions|markets|stores|locations|` +
	`dollars|revenue|savings|reports|dashboards|pipelines|models|tests|bugs|incidents`

// HasQuantifiedMetric reports whether s contains a quantified-achievement
// pattern.
func HasQuantifiedMetric(s string) bool {
	lower := strings.ToLower(s)
	return percentPattern.MatchString(lower) ||
		currencyPattern.MatchString(lower) ||
		numberPattern.MatchString(lower)
}

// StartsWithActionVerb reports whether the first word of the bullet,
// lowercased and stripped of non-letters, is a listed strong verb.
func StartsWithActionVerb(bullet string) bool {
	fields := strings.Fields(bullet)
	if len(fields) == 0 {
		return false
	}
	first := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, strings.ToLower(fields[0]))
	return ActionVerbs[first]
}

// Accepted date formats. "Present"/"Current" end dates count as valid.
var (
	monthNameDate = regexp.MustCompile(`(?i)^(jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?,?\s+\d{4}$`)
	numericDate   = regexp.MustCompile(`^\d{1,2}/\d{2}(\d{2})?$`)
	yearOnlyDate  = regexp.MustCompile(`^(19|20)\d{2}$`)
	currentDate   = regexp.MustCompile(`(?i)\b(present|current|now|ongoing)\b`)
)

// DateFormat identifies which accepted shape a date string takes.
type DateFormat int

// Date format kinds. FormatUnknown means the string matched nothing.
const (
	FormatUnknown DateFormat = iota
	FormatMonthName
	FormatNumeric
	FormatYearOnly
)

// ClassifyDate returns the accepted format the trimmed date string matches.
func ClassifyDate(s string) DateFormat {
	s = strings.TrimSpace(s)
	switch {
	case monthNameDate.MatchString(s):
		return FormatMonthName
	case numericDate.MatchString(s):
		return FormatNumeric
	case yearOnlyDate.MatchString(s):
		return FormatYearOnly
	default:
		return FormatUnknown
	}
}

// IsValidDate reports whether the string matches one accepted date format or
// is a current-role marker.
func IsValidDate(s string) bool {
	return ClassifyDate(s) != FormatUnknown || IsCurrentDate(s)
}

// IsCurrentDate reports whether the string marks an ongoing role.
func IsCurrentDate(s string) bool {
	return currentDate.MatchString(s)
}

// Pictographs (emoji and similar symbols) break many ATS parsers outright.
var pictographPattern = regexp.MustCompile(`[\x{1F000}-\x{1FAFF}\x{2600}-\x{27BF}\x{FE0F}\x{2B00}-\x{2BFF}]`)

// ContainsPictograph reports whether s contains an emoji or other
// pictographic character.
func ContainsPictograph(s string) bool {
	return pictographPattern.MatchString(s)
}
