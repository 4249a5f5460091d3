// Package types provides type definitions for structured data used throughout the ats-scorer system.
package types

// Severity classifies how urgent an issue is.
type Severity string

// Severity levels, ordered from most to least urgent.
const (
	SeverityCritical   Severity = "critical"
	SeverityWarning    Severity = "warning"
	SeveritySuggestion Severity = "suggestion"
)

// Rank maps a severity to its sort order (critical first).
// Unknown severities sort last.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	case SeveritySuggestion:
		return 2
	default:
		return 3
	}
}

// Issue is a single finding produced by a section scorer. Issues are immutable
// value objects; the ID is stable across repeated scoring of the same document
// so the UI can diff re-scoring runs.
type Issue struct {
	ID       string   `json:"id"`
	Section  string   `json:"section"`
	Severity Severity `json:"severity"`
	Title    string   `json:"title"`
	Details  string   `json:"details"`
	Fix      string   `json:"fix,omitempty"`
}
