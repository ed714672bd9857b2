// file: validation/errors.go

package validation

import "fmt"

// ValidationFailure reports the first field that did not pass validation.
type ValidationFailure struct {
	Field   string
	Message string
}

func (e *ValidationFailure) Error() string {
	return fmt.Sprintf("Validation error field '%s': %s", e.Field, e.Message)
}

func fail(field, format string, args ...any) *ValidationFailure {
	return &ValidationFailure{Field: field, Message: fmt.Sprintf(format, args...)}
}
