package categories

import (
	"reflect"

	"github.com/pkg/errors"
)

// IsInstance is a Func matching values whose dynamic type is one of
// the reflect.Type arguments, or implements one that is an interface.
func IsInstance(v interface{}, args []interface{}, _ *Kwargs) (bool, error) {
	if v == nil {
		return false, nil
	}
	vt := reflect.TypeOf(v)
	for i, arg := range args {
		t, ok := arg.(reflect.Type)
		if !ok {
			return false, errors.Errorf("isinstance: argument %v is a %T, not a reflect.Type", i, arg)
		}
		if vt == t || (t.Kind() == reflect.Interface && vt.Implements(t)) {
			return true, nil
		}
	}
	return false, nil
}

// Instance returns a Predicate matching values of any of types.
func Instance(types ...reflect.Type) *Predicate {
	args := make([]interface{}, len(types))
	for i, t := range types {
		args[i] = t
	}
	return New("isinstance", IsInstance, args...)
}

// Type returns a Predicate matching values of type T. If T is an
// interface, it matches values implementing T.
func Type[T any]() *Predicate {
	return Instance(reflect.TypeOf((*T)(nil)).Elem())
}
