// Package types provides type definitions for structured data used throughout the ats-scorer system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// ScoreRequest is the body of POST /score.
type ScoreRequest struct {
	Resume   *ResumeDocument `json:"resume" validate:"required"`
	Parallel bool            `json:"parallel,omitempty"`
}

// KeywordsRequest is the body of POST /keywords. Exactly one of JobDescription
// or JobURL must be set; the handler fetches and extracts text when JobURL is
// given.
type KeywordsRequest struct {
	Resume         *ResumeDocument `json:"resume" validate:"required"`
	JobDescription string          `json:"job_description,omitempty" validate:"required_without=JobURL,excluded_with=JobURL"`
	JobURL         string          `json:"job_url,omitempty" validate:"omitempty,url"`
}

// RemediationRequest is the body of POST /prompts/remediation.
type RemediationRequest struct {
	Resume  *ResumeDocument `json:"resume" validate:"required"`
	Section string          `json:"section" validate:"required"`
	Issues  []Issue         `json:"issues,omitempty"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the KeywordsRequest using the validator.
func (r *KeywordsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RemediationRequest using the validator.
func (r *RemediationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
