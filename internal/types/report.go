// Package types provides type definitions for structured data used throughout the ats-scorer system.
package types

// Section names used throughout the engine. The seven scored sections always
// carry exactly these names in SectionScore.Name and Issue.Section.
const (
	SectionHeader     = "header"
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
	SectionFormatting = "formatting"
	SectionContent    = "content"
)

// SectionScore is the result of one section scorer. Score is an integer or
// half-integer clamped to [0, MaxScore].
type SectionScore struct {
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	MaxScore int     `json:"max_score"`
	Issues   []Issue `json:"issues"`
}

// ATSScoreReport is the full output of a scoring run. Section max scores total
// exactly 100, so Overall equals the rounded sum of section scores.
type ATSScoreReport struct {
	Overall   int            `json:"overall"`
	Sections  []SectionScore `json:"sections"`
	Issues    []Issue        `json:"issues"`
	PassesATS bool           `json:"passes_ats"`
	Summary   string         `json:"summary"`
}

// KeywordMatch reports whether one important job-description phrase appears in
// the resume.
type KeywordMatch struct {
	Phrase string `json:"phrase"`
	Count  int    `json:"count"`
	Found  bool   `json:"found"`
}
