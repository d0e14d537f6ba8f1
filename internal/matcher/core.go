package matcher

import "reflect"

// Matcher contains some useful helpers meant to make probing a value's
// capabilities easy. Every Matcher must tolerate the zero reflect.Value,
// which represents a nil interface.

type Matcher = func(reflect.Value) bool

// Kind matches values whose kind is one of kinds. Pointers to arrays
// are treated like arrays since the builtins accept them too.
func Kind(kinds ...reflect.Kind) Matcher {
	return func(v reflect.Value) bool {
		if !v.IsValid() {
			return false
		}
		k := v.Kind()
		if k == reflect.Ptr && v.Type().Elem().Kind() == reflect.Array {
			if v.IsNil() {
				return false
			}
			k = reflect.Array
		}
		for _, kind := range kinds {
			if k == kind {
				return true
			}
		}
		return false
	}
}

// ChanDir matches channels whose direction permits dir.
func ChanDir(dir reflect.ChanDir) Matcher {
	return func(v reflect.Value) bool {
		return v.IsValid() && v.Kind() == reflect.Chan && v.Type().ChanDir()&dir != 0
	}
}

// Comparable matches values whose dynamic type supports ==.
func Comparable() Matcher {
	return func(v reflect.Value) bool {
		return v.IsValid() && v.Type().Comparable()
	}
}

// Method matches values whose method set contains an exported method
// called name.
func Method(name string) Matcher {
	return func(v reflect.Value) bool {
		if !v.IsValid() {
			return false
		}
		_, ok := v.Type().MethodByName(name)
		return ok
	}
}

// Field matches structs, or non-nil pointers to structs, with an
// exported field called name. Promoted fields count.
func Field(name string) Matcher {
	return func(v reflect.Value) bool {
		v = indirect(v)
		if !v.IsValid() || v.Kind() != reflect.Struct {
			return false
		}
		f, ok := v.Type().FieldByName(name)
		return ok && f.PkgPath == ""
	}
}

// MapKey matches maps with string keys that contain name.
func MapKey(name string) Matcher {
	return func(v reflect.Value) bool {
		v = indirect(v)
		if !v.IsValid() || v.Kind() != reflect.Map || v.Type().Key().Kind() != reflect.String {
			return false
		}
		return v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key())).IsValid()
	}
}

// Any matches a value if at least one of ms does.
func Any(ms ...Matcher) Matcher {
	return func(v reflect.Value) bool {
		for _, m := range ms {
			if m(v) {
				return true
			}
		}
		return false
	}
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}
