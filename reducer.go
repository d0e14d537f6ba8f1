package categories

import "fmt"

// Reducer is the rule a Fold uses to combine its members' results.
type Reducer int

const (
	// All is true iff every result is true. All of nothing is true.
	All Reducer = iota
	// Any is true iff at least one result is true. Any of nothing is false.
	Any
	// NotAll is true iff at least one result is false. NotAll of nothing
	// is false.
	NotAll
	// NotAny is true iff every result is false. NotAny of nothing is true.
	NotAny
)

var reducerNames = map[Reducer]string{
	All:    "all",
	Any:    "any",
	NotAll: "not_all",
	NotAny: "not_any",
}

func (r Reducer) String() string {
	if name, ok := reducerNames[r]; ok {
		return name
	}
	return fmt.Sprintf("reducer(%d)", int(r))
}

// Valid returns true if r is one of the four reducers.
func (r Reducer) Valid() bool {
	_, ok := reducerNames[r]
	return ok
}

// associative reducers can splice same-reducer sub-folds into their
// member list without changing the result.
func (r Reducer) associative() bool {
	return r == All || r == Any
}

// Reduce applies r to the n results produced by result, in order. It
// stops calling result as soon as the outcome is known. An invalid
// reducer is always false.
func (r Reducer) Reduce(n int, result func(i int) bool) bool {
	switch r {
	case All:
		return allOf(n, result)
	case Any:
		return anyOf(n, result)
	case NotAll:
		return !allOf(n, result)
	case NotAny:
		return !anyOf(n, result)
	default:
		return false
	}
}

// Of applies r to results.
func (r Reducer) Of(results ...bool) bool {
	return r.Reduce(len(results), func(i int) bool {
		return results[i]
	})
}

func allOf(n int, result func(int) bool) bool {
	for i := 0; i < n; i++ {
		if !result(i) {
			return false
		}
	}
	return true
}

func anyOf(n int, result func(int) bool) bool {
	for i := 0; i < n; i++ {
		if result(i) {
			return true
		}
	}
	return false
}
