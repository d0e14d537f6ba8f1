package categories

import "github.com/doctaphred/categories/internal/errz"

// ErrNotImplemented can be returned (or wrapped) by a Func that cannot
// decide for the given value. Contains treats it like any other error,
// as "not a member".
var ErrNotImplemented error = errz.NotImplementedf("not implemented")

// IsNotImplemented returns true if err is, or wraps, a not-implemented
// error.
func IsNotImplemented(err error) bool {
	return errz.IsNotImplemented(err)
}
