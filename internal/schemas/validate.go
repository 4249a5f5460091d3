// Package schemas provides JSON Schema validation for resume documents at
// the CLI and API boundaries. The engine itself is total over well-typed
// input; this layer rejects malformed JSON before it gets that far.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume_document.schema.json
var resumeDocumentSchema string

// ValidationError reports schema violations with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("resume document validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateResumeDocument validates raw JSON against the embedded
// ResumeDocument schema.
func ValidateResumeDocument(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(resumeDocumentSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed to run: %w", err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
