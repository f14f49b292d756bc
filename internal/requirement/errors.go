package requirement

import "errors"

// ErrEmptyJobText is returned when the job description contains no
// extractable text.
var ErrEmptyJobText = errors.New("job description text is empty")

// ValidationError wraps a hint validation failure so callers can map it
// to a client error instead of a processing failure.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return "invalid requirement hints: " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }
