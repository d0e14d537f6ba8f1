/*
Package categories is a small predicate algebra. A Category is a
membership test over arbitrary values. Categories are built from test
functions (New, Call, Type, Instance) or from the Has and Values
factories, and combined with And, Or, Xor and Invert into new
categories. Nothing is evaluated until Contains is called.

	isInt := categories.Type[int]()
	lt10 := categories.Values.Lt(10)
	small := isInt.And(lt10)

	small.Contains(2)   // true
	small.Contains(2.0) // false, 2.0 is a float64
	small.String()      // all({isinstance(value, int), lt(value, 10)})

Contains never panics. A test function that returns an error (including
ErrNotImplemented) or panics simply reports "not a member", so probes
that only make sense for some types can be combined freely.

Universal contains every value and Nothing contains none.
*/
package categories
