package manager

import (
	"errors"
	"fmt"

	"riskeval/internal/risk"
)

// ValidationError reports a rejected submission. It carries the full
// verdict so the form binder can show every field-level violation; no
// mutation was performed when this error is returned.
type ValidationError struct {
	Verdict risk.Verdict
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	n := len(e.Verdict.Errors)
	if n == 1 {
		return fmt.Sprintf("validation failed: %s", e.Verdict.Errors[0])
	}
	return fmt.Sprintf("validation failed: %d field violations", n)
}

// AsValidationError extracts a ValidationError from err, if present.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
