package categories

import (
	"reflect"

	"github.com/doctaphred/categories/internal/matcher"
	"github.com/pkg/errors"
)

// Has builds categories of values that have an attribute. An attribute
// is either one of the built-in capabilities below, an exported method
// in the value's method set, an exported struct field (through
// pointers), or a key of a map with string keys.
//
// The built-in capabilities are lowercase so they never collide with
// exported methods and fields:
//
//	len      the value can be passed to len
//	cap      the value can be passed to cap
//	range    the value can be ranged over
//	index    the value can be indexed, v[i] or v[k]
//	slice    the value can be sliced, v[i:j]
//	send     the value is a channel that can be sent to
//	recv     the value is a channel that can be received from
//	close    the value is a channel that can be closed
//	call     the value is a function
//	compare  the value's type supports ==
//	deref    the value is a pointer
var Has Attributes

// Attributes is the type of Has.
type Attributes struct{}

// Attr returns a Predicate matching values that have the attribute name.
func (Attributes) Attr(name string) *Predicate {
	return New("hasattr", HasAttr, name)
}

// All returns a Fold matching values that have every one of names.
func (a Attributes) All(names ...string) *Fold {
	return a.Fold(All, names...)
}

// Fold returns a Fold of one Attr predicate per name under r.
func (a Attributes) Fold(r Reducer, names ...string) *Fold {
	members := make([]Category, len(names))
	for i, name := range names {
		members[i] = a.Attr(name)
	}
	return NewFold(r, members...)
}

var capabilities = map[string]matcher.Matcher{
	"len":     matcher.Kind(reflect.Array, reflect.Chan, reflect.Map, reflect.Slice, reflect.String),
	"cap":     matcher.Kind(reflect.Array, reflect.Chan, reflect.Slice),
	"range":   matcher.Kind(reflect.Array, reflect.Chan, reflect.Map, reflect.Slice, reflect.String),
	"index":   matcher.Kind(reflect.Array, reflect.Map, reflect.Slice, reflect.String),
	"slice":   matcher.Kind(reflect.Slice, reflect.String),
	"send":    matcher.ChanDir(reflect.SendDir),
	"recv":    matcher.ChanDir(reflect.RecvDir),
	"close":   matcher.ChanDir(reflect.SendDir),
	"call":    matcher.Kind(reflect.Func),
	"compare": matcher.Comparable(),
	"deref": func(v reflect.Value) bool {
		return v.IsValid() && v.Kind() == reflect.Ptr
	},
}

// HasAttr is the Func behind Has.Attr. It expects the attribute name as
// its only positional argument.
func HasAttr(v interface{}, args []interface{}, _ *Kwargs) (bool, error) {
	if len(args) != 1 {
		return false, errors.Errorf("hasattr expects 1 attribute name, got %v", len(args))
	}
	name, ok := args[0].(string)
	if !ok {
		return false, errors.Errorf("hasattr: attribute name %v is a %T, not a string", args[0], args[0])
	}
	rv := reflect.ValueOf(v)
	if capability, ok := capabilities[name]; ok {
		return capability(rv), nil
	}
	return matcher.Any(
		matcher.Method(name),
		matcher.Field(name),
		matcher.MapKey(name),
	)(rv), nil
}
