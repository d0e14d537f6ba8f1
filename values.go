package categories

import (
	"reflect"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

// Values builds categories of values that compare a certain way against
// a reference value. Values.Lt(10) contains every value v for which
// v < 10. See ComparisonOp.Eval for the comparison rules; values that
// cannot be compared against the reference are not members.
var Values Comparisons

// Comparisons is the type of Values.
type Comparisons struct{}

// Compare returns a Predicate matching values v for which "v op ref".
func (Comparisons) Compare(op ComparisonOp, ref interface{}) *Predicate {
	return New(op.Name(), comparisonFunc(op), ref)
}

// Eq returns a Predicate matching values equal to ref.
func (c Comparisons) Eq(ref interface{}) *Predicate {
	return c.Compare(EQL, ref)
}

// Ne returns a Predicate matching values not equal to ref.
func (c Comparisons) Ne(ref interface{}) *Predicate {
	return c.Compare(NEQL, ref)
}

// Lt returns a Predicate matching values less than ref.
func (c Comparisons) Lt(ref interface{}) *Predicate {
	return c.Compare(LT, ref)
}

// Gt returns a Predicate matching values greater than ref.
func (c Comparisons) Gt(ref interface{}) *Predicate {
	return c.Compare(GT, ref)
}

// Le returns a Predicate matching values less than or equal to ref.
func (c Comparisons) Le(ref interface{}) *Predicate {
	return c.Compare(LTE, ref)
}

// Ge returns a Predicate matching values greater than or equal to ref.
func (c Comparisons) Ge(ref interface{}) *Predicate {
	return c.Compare(GTE, ref)
}

// Glob returns a Predicate matching strings that match the glob
// pattern. An invalid pattern matches nothing.
func (Comparisons) Glob(pattern string) *Predicate {
	g, err := glob.Compile(pattern)
	if err != nil {
		err = errors.Wrapf(err, "invalid glob %q", pattern)
	}
	return New("glob", func(v interface{}, _ []interface{}, _ *Kwargs) (bool, error) {
		if err != nil {
			return false, err
		}
		if v == nil || reflect.ValueOf(v).Kind() != reflect.String {
			return false, errors.Errorf("%T is not a string", v)
		}
		return g.Match(reflect.ValueOf(v).String()), nil
	}, pattern)
}

func comparisonFunc(op ComparisonOp) Func {
	return func(v interface{}, args []interface{}, _ *Kwargs) (bool, error) {
		if len(args) != 1 {
			return false, errors.Errorf("%v expects 1 reference value, got %v", op.Name(), len(args))
		}
		return op.Eval(v, args[0])
	}
}
