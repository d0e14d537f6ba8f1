package categories

import (
	"fmt"
	"strings"
)

// Fold is a Category that combines its members' membership results
// with a Reducer.
type Fold struct {
	members []Category
	reducer Reducer
}

// NewFold returns a Fold of members under r.
//
// With two or more members, a member that is itself a Fold with the
// same associative reducer (All or Any) is replaced by its members, so
// chains like a.And(b).And(c) stay one level deep. NotAll and NotAny
// are never flattened since that would change the result.
func NewFold(r Reducer, members ...Category) *Fold {
	f := &Fold{reducer: r}
	if len(members) < 2 || !r.associative() {
		f.members = append([]Category(nil), members...)
		return f
	}
	for _, m := range members {
		if sub, ok := m.(*Fold); ok && sub != nil && sub.reducer == r {
			f.members = append(f.members, sub.members...)
			continue
		}
		f.members = append(f.members, m)
	}
	return f
}

// Reducer returns f's reducer.
func (f *Fold) Reducer() Reducer {
	return f.reducer
}

// Members returns a copy of f's members.
func (f *Fold) Members() []Category {
	return append([]Category(nil), f.members...)
}

// Contains returns true if f's reducer holds for the members' results
// on v. Members are evaluated in order, and only as far as needed.
func (f *Fold) Contains(v interface{}) bool {
	if f == nil {
		return false
	}
	return f.reducer.Reduce(len(f.members), func(i int) bool {
		return Contains(f.members[i], v)
	})
}

// And returns a Fold matching values in both f and other.
func (f *Fold) And(other Category) *Fold {
	return NewFold(All, f, other)
}

// Or returns a Fold matching values in f, other, or both.
func (f *Fold) Or(other Category) *Fold {
	return NewFold(Any, f, other)
}

// Xor returns a Fold matching values that are not in both f and other.
func (f *Fold) Xor(other Category) *Fold {
	return NewFold(NotAll, f, other)
}

// Invert returns a Fold matching values not in f.
func (f *Fold) Invert() *Fold {
	return NewFold(NotAny, f)
}

// String renders f as reducer({member1, member2}).
func (f *Fold) String() string {
	if f == nil {
		return "<nil>"
	}
	strs := make([]string, len(f.members))
	for i, m := range f.members {
		strs[i] = describe(m)
	}
	return fmt.Sprintf("%v({%v})", f.reducer, strings.Join(strs, ", "))
}
