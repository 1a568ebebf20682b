package lead

import (
	"errors"
	"strings"

	"tyltyhub/internal/pkg/leadform"
)

var (
	// ErrDuplicateEmail is the business conflict: a second submission with a
	// previously used email is rejected, never merged or overwritten.
	ErrDuplicateEmail = errors.New("email already registered")
)

// ValidationError carries the failed fields of a rejected submission. It is
// client-fixable input, distinct from ErrDuplicateEmail and from storage
// faults, because each produces a different user-facing flow.
type ValidationError struct {
	Fields []leadform.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Message returns the reason shown to the user: the first failed field's
// fixed message.
func (e *ValidationError) Message() string {
	if len(e.Fields) == 0 {
		return leadform.MsgRequired
	}
	return e.Fields[0].Message
}
