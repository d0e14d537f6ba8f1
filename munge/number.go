package munge

import (
	"fmt"
	"math"
	"math/big"
	"reflect"

	"github.com/shopspring/decimal"
)

// IsNumber returns true if v is a Go number. Named numeric types count;
// bools and numeric strings do not.
func IsNumber(v interface{}) bool {
	switch v.(type) {
	case decimal.Decimal, *big.Int, *big.Float:
		return true
	}
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// ToFloat converts a number to a float64. Precision may be lost for
// very large integers.
func ToFloat(v interface{}) (float64, error) {
	switch t := v.(type) {
	case decimal.Decimal:
		f, _ := t.Float64()
		return f, nil
	case *big.Int:
		if t == nil {
			return 0, fmt.Errorf("the provided number is a nil *big.Int")
		}
		f, _ := new(big.Float).SetInt(t).Float64()
		return f, nil
	case *big.Float:
		if t == nil {
			return 0, fmt.Errorf("the provided number is a nil *big.Float")
		}
		f, _ := t.Float64()
		return f, nil
	}
	if !IsNumber(v) {
		return 0, fmt.Errorf("%v (%T) is not a number", v, v)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	default:
		return float64(rv.Int()), nil
	}
}

// IsFinite returns true if v is a number other than NaN or ±Inf.
func IsFinite(v interface{}) bool {
	switch t := v.(type) {
	case decimal.Decimal:
		return true
	case *big.Int:
		return t != nil
	case *big.Float:
		return t != nil && !t.IsInf()
	}
	f, err := ToFloat(v)
	if err != nil {
		return false
	}
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ToDecimal converts a finite number to a decimal.Decimal. The decimal
// type lets us compare arbitrarily large numbers of differing Go types
// without losing precision.
func ToDecimal(v interface{}) (decimal.Decimal, error) {
	switch t := v.(type) {
	case decimal.Decimal:
		return t, nil
	case *big.Int:
		if t == nil {
			return decimal.Zero, fmt.Errorf("the provided number is a nil *big.Int")
		}
		return decimal.NewFromBigInt(t, 0), nil
	case *big.Float:
		if t == nil || t.IsInf() {
			return decimal.Zero, fmt.Errorf("%v is not a finite number", v)
		}
		d, err := decimal.NewFromString(t.Text('g', -1))
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to parse %v as a number: %v", t, err)
		}
		return d, nil
	}
	if !IsNumber(v) {
		return decimal.Zero, fmt.Errorf("%v (%T) is not a number", v, v)
	}
	if !IsFinite(v) {
		return decimal.Zero, fmt.Errorf("%v is not a finite number", v)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32:
		return decimal.NewFromFloat32(float32(rv.Float())), nil
	case reflect.Float64:
		return decimal.NewFromFloat(rv.Float()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(rv.Uint()), 0), nil
	default:
		return decimal.New(rv.Int(), 0), nil
	}
}
