package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/types"
)

func testResume() *types.ResumeDocument {
	return &types.ResumeDocument{
		Header:  types.Header{Name: "Jane Smith", Email: "jane@example.com"},
		Summary: "Platform engineer focused on Kubernetes and distributed systems.",
		Experience: []types.Experience{
			{
				Title:   "Engineer",
				Company: "Acme Corp",
				Bullets: []string{"Migrated workloads to Kubernetes", "Wrote services in Go and Python"},
			},
		},
		Skills: map[string][]string{"Tools": {"Terraform", "PostgreSQL"}},
	}
}

func TestMatch_BlankDescription(t *testing.T) {
	matches := Match(testResume(), "   \n\t ")

	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestMatch_CaseInsensitiveLookup(t *testing.T) {
	matches := Match(testResume(), "We need deep KUBERNETES production operations expertise. Kubernetes at scale.")

	var kube *types.KeywordMatch
	for i := range matches {
		if matches[i].Phrase == "kubernetes" {
			kube = &matches[i]
		}
	}
	require.NotNil(t, kube)
	assert.True(t, kube.Found)
	assert.Equal(t, 2, kube.Count)
}

func TestMatch_ReportsMissingKeywords(t *testing.T) {
	matches := Match(testResume(), "Requires Clojure and Datomic. Clojure experience is essential.")

	byPhrase := make(map[string]types.KeywordMatch)
	for _, m := range matches {
		byPhrase[m.Phrase] = m
	}
	require.Contains(t, byPhrase, "clojure")
	assert.False(t, byPhrase["clojure"].Found)
	assert.Equal(t, 2, byPhrase["clojure"].Count)
}

func TestMatch_SortedByCountThenPhrase(t *testing.T) {
	matches := Match(testResume(),
		"terraform terraform terraform kubernetes kubernetes postgres ansible")

	require.NotEmpty(t, matches)
	assert.Equal(t, "terraform", matches[0].Phrase)
	assert.Equal(t, "kubernetes", matches[1].Phrase)
	for i := 1; i < len(matches); i++ {
		if matches[i-1].Count == matches[i].Count {
			assert.Less(t, matches[i-1].Phrase, matches[i].Phrase)
		} else {
			assert.Greater(t, matches[i-1].Count, matches[i].Count)
		}
	}
}

func TestMatch_CapsPhraseCount(t *testing.T) {
	long := ""
	for _, word := range []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel",
		"india", "juliett", "kilo", "lima", "mike", "november", "oscar", "papa",
		"quebec", "romeo", "sierra", "tango", "uniform", "victor", "whiskey",
		"xray", "yankee", "zulu", "amber", "bronze", "copper", "denim",
	} {
		long += word + " " + word + " "
	}

	matches := Match(testResume(), long)

	assert.Len(t, matches, 25)
}

func TestTokenize_TechnologyTokens(t *testing.T) {
	tokens := tokenize("Experience with C++, C#, and Node.js required.")

	assert.Contains(t, tokens, "c++")
	assert.Contains(t, tokens, "c#")
	assert.Contains(t, tokens, "node.js")
	// Trailing sentence punctuation is stripped.
	assert.Contains(t, tokens, "required")
	assert.NotContains(t, tokens, "required.")
}

func TestPhraseCounts_Bigrams(t *testing.T) {
	counts := phraseCounts(tokenize("distributed systems and distributed systems design"))

	assert.Equal(t, 2, counts["distributed systems"])
	assert.Equal(t, 1, counts["systems design"])
	// "and" is a stop word: no bigram crosses it and it is not counted alone.
	assert.Zero(t, counts["and"])
	assert.Zero(t, counts["systems and"])
}

func TestIsImportant(t *testing.T) {
	assert.True(t, isImportant("go", 2), "repeated short token")
	assert.False(t, isImportant("go", 1), "single short token")
	assert.True(t, isImportant("c++", 1), "technology marker")
	assert.True(t, isImportant("event sourcing", 1), "bigram")
	assert.True(t, isImportant("kubernetes", 1), "long specific token")
}
