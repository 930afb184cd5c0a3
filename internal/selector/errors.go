package selector

import "fmt"

// invalidSelectionError signals a selection value rejected by validation.
// Interactive flows re-prompt on it; non-interactive flows surface it.
type invalidSelectionError struct {
	field  string
	reason string
}

func (e invalidSelectionError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.field, e.reason)
}

// ErrInvalidSelection constructs an invalidSelectionError.
func ErrInvalidSelection(field, reason string) error {
	return invalidSelectionError{field: field, reason: reason}
}

// IsInvalidSelection reports whether err is a rejected selection value.
func IsInvalidSelection(err error) bool {
	_, ok := err.(invalidSelectionError)
	return ok
}
