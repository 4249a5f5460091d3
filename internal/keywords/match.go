// Package keywords extracts salient terms from a job description and reports
// which of them appear in a resume. It is independent of section scoring and,
// like the scorers, fully deterministic.
package keywords

import (
	"sort"
	"strings"

	"github.com/jonathan/ats-scorer/internal/patterns"
	"github.com/jonathan/ats-scorer/internal/scoring"
	"github.com/jonathan/ats-scorer/internal/types"
)

// maxPhrases caps how many top-ranked phrases are checked against the resume.
const maxPhrases = 25

// Match extracts the most important unigrams and bigrams from the job
// description and checks each for literal presence in the resume text.
// A blank job description returns an empty (non-nil) slice.
func Match(doc *types.ResumeDocument, jobDescription string) []types.KeywordMatch {
	if strings.TrimSpace(jobDescription) == "" {
		return []types.KeywordMatch{}
	}

	counts := phraseCounts(tokenize(jobDescription))
	phrases := rankImportant(counts)

	resumeText := strings.ToLower(scoring.AllText(doc))
	matches := make([]types.KeywordMatch, 0, len(phrases))
	for _, p := range phrases {
		matches = append(matches, types.KeywordMatch{
			Phrase: p,
			Count:  counts[p],
			Found:  strings.Contains(resumeText, p),
		})
	}
	return matches
}

// tokenize lowercases the text and splits it into alphanumeric words,
// retaining + # . so technology tokens like c++, c#, and node.js survive. A
// trailing dot is sentence punctuation, not part of the token.
func tokenize(text string) []string {
	var tokens []string
	var current strings.Builder
	flush := func() {
		tok := strings.TrimRight(current.String(), ".")
		if tok != "" {
			tokens = append(tokens, tok)
		}
		current.Reset()
	}
	for _, r := range strings.ToLower(text) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '+' || r == '#' || r == '.' {
			current.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// phraseCounts builds frequency counts for unigrams and adjacent bigrams.
// Bigrams containing a stop word or a token of two characters or fewer are
// excluded; unigram stop words are dropped entirely.
func phraseCounts(tokens []string) map[string]int {
	counts := make(map[string]int)
	for i, tok := range tokens {
		if !patterns.StopWords[tok] {
			counts[tok]++
		}
		if i == 0 {
			continue
		}
		prev := tokens[i-1]
		if patterns.StopWords[prev] || patterns.StopWords[tok] || len(prev) <= 2 || len(tok) <= 2 {
			continue
		}
		counts[prev+" "+tok]++
	}
	return counts
}

// rankImportant filters phrases by the importance rule and returns the top
// ones ordered by frequency descending, tie-broken lexicographically so
// output is reproducible.
func rankImportant(counts map[string]int) []string {
	var phrases []string
	for p, n := range counts {
		if isImportant(p, n) {
			phrases = append(phrases, p)
		}
	}
	sort.Slice(phrases, func(i, j int) bool {
		if counts[phrases[i]] != counts[phrases[j]] {
			return counts[phrases[i]] > counts[phrases[j]]
		}
		return phrases[i] < phrases[j]
	})
	if len(phrases) > maxPhrases {
		phrases = phrases[:maxPhrases]
	}
	return phrases
}

// isImportant applies the salience rule: repeated, multi-word, marked as a
// technology token, or long enough to be specific.
func isImportant(phrase string, count int) bool {
	return count >= 2 ||
		strings.Contains(phrase, " ") ||
		strings.ContainsAny(phrase, "+#.") ||
		len(phrase) > 6
}
