package errz

import (
	"fmt"

	"github.com/pkg/errors"
)

// NotImplementedError represents the case when a membership test
// cannot decide for the given value, e.g. ordering a string against
// a number.
type NotImplementedError struct {
	reason string
}

func (e NotImplementedError) Error() string {
	return e.reason
}

// NotImplementedf creates a new NotImplementedError object
func NotImplementedf(format string, a ...interface{}) NotImplementedError {
	return NotImplementedError{fmt.Sprintf(format, a...)}
}

// IsNotImplemented returns true if err, or the error it wraps, is a
// NotImplementedError, false otherwise.
func IsNotImplemented(err error) bool {
	if err == nil {
		return false
	}
	_, ok := errors.Cause(err).(NotImplementedError)
	return ok
}
