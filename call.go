package categories

import (
	"fmt"
	"reflect"
	"regexp"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Call returns a Predicate that calls fn(v, args...) for each tested
// value v, appending the *Kwargs when keyword arguments are bound. fn
// may be any function. Its first result is coerced with Truthy, and a
// non-nil trailing error result means "not a member". If fn is not a
// function, or does not accept the arguments, nothing is a member.
//
// The predicate is labelled with fn's name where it can be found.
func Call(fn interface{}, args ...interface{}) *Predicate {
	return New(funcName(fn), callFunc(fn), args...)
}

func callFunc(fn interface{}) Func {
	return func(v interface{}, args []interface{}, kwargs *Kwargs) (bool, error) {
		f := reflect.ValueOf(fn)
		if f.Kind() != reflect.Func || f.IsNil() {
			return false, errors.Errorf("%v is not a function", fn)
		}
		in := make([]interface{}, 0, len(args)+2)
		in = append(in, v)
		in = append(in, args...)
		if kwargs.Len() > 0 {
			in = append(in, kwargs)
		}
		values, err := callArgs(f.Type(), in)
		if err != nil {
			return false, err
		}
		out := f.Call(values)
		if len(out) == 0 {
			return false, errors.Errorf("%v returns nothing", funcName(fn))
		}
		if last := out[len(out)-1]; last.Type() == errorType && !last.IsNil() {
			return false, last.Interface().(error)
		}
		if out[0].Type() == errorType {
			return false, nil
		}
		return Truthy(out[0].Interface()), nil
	}
}

// callArgs converts in to fn's parameter types, expanding variadic
// parameters. A nil argument is only accepted by nillable parameters.
func callArgs(fn reflect.Type, in []interface{}) ([]reflect.Value, error) {
	numIn := fn.NumIn()
	if fn.IsVariadic() {
		if len(in) < numIn-1 {
			return nil, errors.Errorf("expected at least %v arguments, got %v", numIn-1, len(in))
		}
	} else if len(in) != numIn {
		return nil, errors.Errorf("expected %v arguments, got %v", numIn, len(in))
	}
	values := make([]reflect.Value, len(in))
	for i, arg := range in {
		var t reflect.Type
		if fn.IsVariadic() && i >= numIn-1 {
			t = fn.In(numIn - 1).Elem()
		} else {
			t = fn.In(i)
		}
		if arg == nil {
			if !nillable(t) {
				return nil, errors.Errorf("argument %v: nil is not assignable to %v", i, t)
			}
			values[i] = reflect.Zero(t)
			continue
		}
		value := reflect.ValueOf(arg)
		if !value.Type().AssignableTo(t) {
			return nil, errors.Errorf("argument %v: %T is not assignable to %v", i, arg, t)
		}
		values[i] = value
	}
	return values, nil
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// funcName returns the name of fn without its package path, or fn's
// string form if it is not a function.
func funcName(fn interface{}) string {
	f := reflect.ValueOf(fn)
	if f.Kind() != reflect.Func || f.IsNil() {
		return fmt.Sprintf("%v", fn)
	}
	rf := runtime.FuncForPC(f.Pointer())
	if rf == nil {
		return fmt.Sprintf("%v", fn)
	}
	return trimPackage(rf.Name())
}

var versionElem = regexp.MustCompile(`^v[0-9]+$`)

// trimPackage strips the package path from a runtime symbol name. The
// last path element may itself contain a dot, either escaped (%2e) or in
// the gopkg.in form name.vN; other dotted elements are not recognized.
func trimPackage(symbol string) string {
	name := symbol
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.Replace(name, "%2e", ".", -1)
	i := strings.Index(name, ".")
	if i < 0 {
		return name
	}
	name = name[i+1:]
	if j := strings.Index(name, "."); j >= 0 && versionElem.MatchString(name[:j]) {
		name = name[j+1:]
	}
	return name
}
