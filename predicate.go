package categories

import (
	"fmt"
	"strings"
)

// Func is a membership test. args and kwargs are the arguments bound
// when the Predicate was created; a Func must not modify them. Returning
// an error means "not a member".
type Func func(v interface{}, args []interface{}, kwargs *Kwargs) (bool, error)

// defaultName labels predicates created without a name.
const defaultName = "predicate"

// Predicate is a Category backed by a test function and its bound
// arguments.
type Predicate struct {
	name   string
	fn     Func
	args   []interface{}
	kwargs *Kwargs
}

// New returns a Predicate that tests values with fn. Kwarg arguments
// (see Kw) are bound as keyword arguments; everything else is bound
// positionally, in order. name labels the predicate in String. fn is
// not validated here; a nil fn never matches.
func New(name string, fn Func, args ...interface{}) *Predicate {
	if name == "" {
		name = defaultName
	}
	positional, kwargs := splitArgs(args)
	return &Predicate{
		name:   name,
		fn:     fn,
		args:   positional,
		kwargs: kwargs,
	}
}

// Name returns p's label.
func (p *Predicate) Name() string {
	return p.name
}

// Args returns a copy of p's positional arguments.
func (p *Predicate) Args() []interface{} {
	return append([]interface{}(nil), p.args...)
}

// Kwargs returns p's keyword arguments. It is nil when there are none.
func (p *Predicate) Kwargs() *Kwargs {
	return p.kwargs
}

// Contains returns true if v is a member of p. It returns false if p's
// function returns an error or panics.
func (p *Predicate) Contains(v interface{}) (ok bool) {
	if p == nil || p.fn == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			logFailure(p, v, "recovered from panic: %v", r)
			ok = false
		}
	}()
	result, err := p.fn(v, p.args, p.kwargs)
	if err != nil {
		logFailure(p, v, "%v: %v", p.name, err)
		return false
	}
	return result
}

// And returns a Fold matching values in both p and other.
func (p *Predicate) And(other Category) *Fold {
	return NewFold(All, p, other)
}

// Or returns a Fold matching values in p, other, or both.
func (p *Predicate) Or(other Category) *Fold {
	return NewFold(Any, p, other)
}

// Xor returns a Fold matching values that are not in both p and other.
// It uses the NotAll reducer, so a value in neither matches too.
func (p *Predicate) Xor(other Category) *Fold {
	return NewFold(NotAll, p, other)
}

// Invert returns a Fold matching values not in p.
func (p *Predicate) Invert() *Fold {
	return NewFold(NotAny, p)
}

// String renders p as name(value, args..., k=v...).
func (p *Predicate) String() string {
	if p == nil {
		return "<nil>"
	}
	strs := make([]string, 0, len(p.args)+p.kwargs.Len())
	for _, arg := range p.args {
		strs = append(strs, fmt.Sprintf("%v", arg))
	}
	if p.kwargs.Len() > 0 {
		strs = append(strs, p.kwargs.String())
	}
	if len(strs) == 0 {
		return fmt.Sprintf("%v(value)", p.name)
	}
	return fmt.Sprintf("%v(value, %v)", p.name, strings.Join(strs, ", "))
}
