package categories

import (
	"fmt"

	"github.com/doctaphred/categories/log"
	"github.com/sirupsen/logrus"
)

// Category represents a membership test. Contains must not panic;
// categories built by this package never do.
type Category interface {
	fmt.Stringer
	Contains(v interface{}) bool
}

// Contains returns true if v is a member of c. Unlike c.Contains(v) it
// is safe to call with a nil c or a third-party Category that panics.
func Contains(c Category, v interface{}) (ok bool) {
	if c == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			logFailure(c, v, "recovered from panic: %v", r)
			ok = false
		}
	}()
	return c.Contains(v)
}

// logFailure logs a swallowed failure at debug. Nothing is formatted
// unless debug logging is enabled, so v's String method is not called
// otherwise.
func logFailure(c Category, v interface{}, format string, args ...interface{}) {
	if !log.IsDebug() {
		return
	}
	log.WithFields(logrus.Fields{
		"category": describe(c),
		"value":    fmt.Sprintf("%v", v),
	}).Debugf(format, args...)
}

// describe is c.String() guarded against nil and panicking categories.
func describe(c Category) (str string) {
	if c == nil {
		return "<nil>"
	}
	defer func() {
		if r := recover(); r != nil {
			str = fmt.Sprintf("%T", c)
		}
	}()
	return c.String()
}

var _ = Category(&Predicate{})
var _ = Category(&Fold{})
