// Package schemas provides JSON Schema validation for AI service responses.
// Schemas are embedded so validation never depends on the working directory.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// Known schema names.
const (
	MatchScore     = "match_score"
	TailoredResume = "tailored_resume"
	CoverLetter    = "cover_letter"
	Email          = "email"
	Chat           = "chat"
)

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s response failed validation:\n", ve.Schema))
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself.
type SchemaLoadError struct {
	Schema  string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Schema, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Schema, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Validate checks a raw JSON payload against the named embedded schema.
// A nil return means the payload conforms.
func Validate(name string, payload []byte) error {
	content, err := schemaFS.ReadFile("schemas/" + name + ".schema.json")
	if err != nil {
		return &SchemaLoadError{Schema: name, Message: "unknown schema", Cause: err}
	}

	schemaLoader := gojsonschema.NewStringLoader(string(content))
	documentLoader := gojsonschema.NewStringLoader(string(payload))

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Schema: name, Message: "validation could not run", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Schema: name,
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
