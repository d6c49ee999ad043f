package ordering

import (
	"errors"
	"fmt"
)

var (
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrAlreadyOrdered     = errors.New("member has already ordered today")
	ErrOrderingClosed     = errors.New("ordering is closed")
	ErrSyncInProgress     = errors.New("vendor menu sync is already in progress")
	ErrMenuModeLocked     = errors.New("menu mode cannot change while there are orders today")
	ErrNotFound           = errors.New("not found")
	ErrNoDepartment       = errors.New("no department selected")
	ErrNoCandidate        = errors.New("no reorder candidate")
	ErrSourceMismatch     = errors.New("previous order uses a different menu source")

	errStale = errors.New("result belongs to a superseded selection")
)

const genericMessage = "Something went wrong. Please try again."

// ValidationError is returned before any network call when a draft is
// incomplete or a selection does not fit the current state.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// APIError is a non-2xx backend response. Kind holds the sentinel the status
// and code map to, if any.
type APIError struct {
	Status  int
	Code    string
	Message string
	Kind    error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

func (e *APIError) Unwrap() error {
	return e.Kind
}

// UserMessage picks the text to show for err: the validation message, the
// backend-provided message, or a generic fallback.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}

	var aerr *APIError
	if errors.As(err, &aerr) && aerr.Message != "" {
		return aerr.Message
	}

	switch {
	case errors.Is(err, ErrOrderingClosed):
		return "Ordering is closed for today."
	case errors.Is(err, ErrSourceMismatch):
		return "The previous order was placed from a different menu and cannot be repeated."
	case errors.Is(err, ErrCatalogUnavailable):
		return "The menu could not be loaded."
	}

	return genericMessage
}
