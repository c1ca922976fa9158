package colladarender

import (
	"fmt"

	"github.com/pkg/errors"
)

// A UserError is a failure caused by what the user asked for (a missing or malformed input file, an empty scene, an
// unknown palette, and so on), rather than by a bug or the environment. Its message is meant to be shown as-is.
type UserError struct {
	msg string
	err error
}

// NewUserError creates a new UserError with the message formatted from the arguments given.
func NewUserError(format string, args ...any) *UserError {
	return &UserError{msg: fmt.Sprintf(format, args...)}
}

// WrapUserError creates a new UserError describing err, prefixed with the formatted message.
// WrapUserError returns nil if err is nil.
func WrapUserError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &UserError{msg: fmt.Sprintf(format, args...), err: err}
}

func (e *UserError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

// Unwrap returns the error the UserError wraps, if any.
func (e *UserError) Unwrap() error {
	return e.err
}

// Is reports whether target is a UserError with the same message and no wrapped cause, so that errors.Is() can match
// wrapped failures against sentinels like ErrNoExtent.
func (e *UserError) Is(target error) bool {
	t, ok := target.(*UserError)
	return ok && t.err == nil && t.msg == e.msg
}

// IsUserError returns true if err, or any error it wraps, is a UserError.
func IsUserError(err error) bool {
	var userErr *UserError
	return errors.As(err, &userErr)
}

var (
	// ErrEmptyScene is returned when rendering a scene without any triangles.
	ErrEmptyScene = NewUserError("scene has no triangles")
	// ErrNoExtent is returned when a scene's triangles have no width or no depth when seen from above.
	ErrNoExtent = NewUserError("scene has no top-down extent")
)
