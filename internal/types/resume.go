// Package types provides type definitions for structured data used throughout the ats-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeDocument is the structured resume consumed by the scoring engine.
// Every text field defaults to the empty string, never null; the scorers rely
// on this to stay total functions with no nil checks.
type ResumeDocument struct {
	Header         Header              `json:"header"`
	Summary        string              `json:"summary"`
	Experience     []Experience        `json:"experience"`
	Education      []Education         `json:"education"`
	Certifications []Certification     `json:"certifications"`
	Skills         map[string][]string `json:"skills"`
	Projects       []Project           `json:"projects"`
}

// Header holds the contact block at the top of a resume.
type Header struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
}

// Experience is a single role entry. Entries with an empty Company are
// placeholders and are excluded from scoring.
type Experience struct {
	Title     string   `json:"title"`
	Company   string   `json:"company"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Location  string   `json:"location"`
	Bullets   []string `json:"bullets"`
}

// IsValid reports whether the entry counts toward scoring.
func (e *Experience) IsValid() bool {
	return e.Company != ""
}

// Education is a single degree entry. Entries with an empty Institution are
// excluded from scoring.
type Education struct {
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	Institution    string `json:"institution"`
	GraduationDate string `json:"graduation_date"`
	Location       string `json:"location"`
}

// IsValid reports whether the entry counts toward scoring.
func (e *Education) IsValid() bool {
	return e.Institution != ""
}

// Certification is a single certification entry.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// Project is a single project entry.
type Project struct {
	Title   string   `json:"title"`
	Link    string   `json:"link"`
	Bullets []string `json:"bullets"`
}
