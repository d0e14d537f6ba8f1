// Package compare implements the value comparisons behind the Values
// category factory. Numbers compare by value regardless of their Go
// type, strings compare lexically, and types with a Compare or Cmp
// method (time.Time, *big.Int, ...) compare through it.
package compare

import (
	"math"
	"reflect"
	"strings"

	"github.com/doctaphred/categories/internal/errz"
	"github.com/doctaphred/categories/munge"
	"github.com/pkg/errors"
)

// Equal returns true if a and b are equal. Values of unrelated types
// are never equal. NaN is not equal to anything, itself included.
func Equal(a interface{}, b interface{}) (eq bool) {
	defer func() {
		if r := recover(); r != nil {
			eq = false
		}
	}()
	if munge.IsNumber(a) && munge.IsNumber(b) {
		cmp, err := numbers(a, b)
		return err == nil && cmp == 0
	}
	if isString(a) && isString(b) {
		return reflect.ValueOf(a).String() == reflect.ValueOf(b).String()
	}
	if cmp, ok := comparator(a, b); ok {
		return cmp == 0
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// Order returns -1, 0 or +1 depending on whether a is less than, equal
// to, or greater than b. It returns an errz.NotImplementedError when a
// and b have no natural ordering. Slices, arrays, maps and structs are
// unordered even against values of the same type.
func Order(a interface{}, b interface{}) (cmp int, err error) {
	defer func() {
		if r := recover(); r != nil {
			cmp, err = 0, errors.Errorf("failed to order %T against %T: %v", a, b, r)
		}
	}()
	if munge.IsNumber(a) && munge.IsNumber(b) {
		return numbers(a, b)
	}
	if isString(a) && isString(b) {
		return strings.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String()), nil
	}
	if c, ok := comparator(a, b); ok {
		return c, nil
	}
	return 0, errz.NotImplementedf("cannot order %T against %T", a, b)
}

func numbers(a interface{}, b interface{}) (int, error) {
	if munge.IsFinite(a) && munge.IsFinite(b) {
		da, err := munge.ToDecimal(a)
		if err != nil {
			return 0, err
		}
		db, err := munge.ToDecimal(b)
		if err != nil {
			return 0, err
		}
		return da.Cmp(db), nil
	}
	// At least one of a and b is NaN or ±Inf, which decimal cannot
	// represent.
	fa, err := munge.ToFloat(a)
	if err != nil {
		return 0, err
	}
	fb, err := munge.ToFloat(b)
	if err != nil {
		return 0, err
	}
	switch {
	case math.IsNaN(fa) || math.IsNaN(fb):
		return 0, errz.NotImplementedf("NaN is unordered")
	case fa < fb:
		return -1, nil
	case fa > fb:
		return 1, nil
	default:
		return 0, nil
	}
}

func isString(v interface{}) bool {
	return v != nil && reflect.ValueOf(v).Kind() == reflect.String
}

var comparatorMethods = []string{"Compare", "Cmp"}

// comparator invokes a's Compare(b) int or Cmp(b) int method, if a has
// one that accepts b.
func comparator(a interface{}, b interface{}) (int, bool) {
	if a == nil || b == nil {
		return 0, false
	}
	va := reflect.ValueOf(a)
	tb := reflect.TypeOf(b)
	for _, name := range comparatorMethods {
		m := va.MethodByName(name)
		if !m.IsValid() {
			continue
		}
		mt := m.Type()
		if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.IsVariadic() {
			continue
		}
		if mt.Out(0).Kind() != reflect.Int || !tb.AssignableTo(mt.In(0)) {
			continue
		}
		result := m.Call([]reflect.Value{reflect.ValueOf(b)})[0].Int()
		switch {
		case result < 0:
			return -1, true
		case result > 0:
			return 1, true
		default:
			return 0, true
		}
	}
	return 0, false
}
