// Package export renders section lists into downloadable document formats.
package export

import "fmt"

// RenderError represents a failure building or rendering a document.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
