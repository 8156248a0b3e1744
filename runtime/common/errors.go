package common

import (
	"errors"
	"fmt"
)

// ErrConflictingCursors is returned when a request supplies both an 'after'
// and a 'before' cursor. Neither takes priority; the request is rejected
// outright.
var ErrConflictingCursors = errors.New("cannot paginate with both 'after' and 'before' cursors")

// InvalidCursorError reports that a caller-supplied cursor failed shape
// validation. Boundary names which request key carried it, "after" or
// "before". The request can be corrected and retried by the caller.
type InvalidCursorError struct {
	Boundary string
}

func (e *InvalidCursorError) Error() string {
	return fmt.Sprintf("invalid '%s' cursor", e.Boundary)
}

func NewInvalidCursorError(boundary string) *InvalidCursorError {
	return &InvalidCursorError{Boundary: boundary}
}
