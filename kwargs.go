package categories

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// Kwarg is a keyword argument. Pass it to New or Call alongside the
// positional arguments.
type Kwarg struct {
	Name  string
	Value interface{}
}

// Kw returns a keyword argument.
func Kw(name string, value interface{}) Kwarg {
	return Kwarg{Name: name, Value: value}
}

// Kwargs holds a predicate's keyword arguments in the order they were
// bound. A nil *Kwargs is empty and all of its methods are safe to call.
type Kwargs struct {
	m *linkedhashmap.Map
}

// NewKwargs returns Kwargs holding kws. A repeated name keeps its first
// position and its last value.
func NewKwargs(kws ...Kwarg) *Kwargs {
	kwargs := &Kwargs{m: linkedhashmap.New()}
	for _, kw := range kws {
		kwargs.m.Put(kw.Name, kw.Value)
	}
	return kwargs
}

// Len returns the number of keyword arguments.
func (kw *Kwargs) Len() int {
	if kw == nil || kw.m == nil {
		return 0
	}
	return kw.m.Size()
}

// Get returns the value bound to name.
func (kw *Kwargs) Get(name string) (interface{}, bool) {
	if kw.Len() == 0 {
		return nil, false
	}
	return kw.m.Get(name)
}

// Keys returns the names in binding order.
func (kw *Kwargs) Keys() []string {
	keys := make([]string, 0, kw.Len())
	kw.Each(func(name string, _ interface{}) {
		keys = append(keys, name)
	})
	return keys
}

// Each calls f for every keyword argument, in binding order.
func (kw *Kwargs) Each(f func(name string, value interface{})) {
	if kw.Len() == 0 {
		return
	}
	kw.m.Each(func(key interface{}, value interface{}) {
		f(key.(string), value)
	})
}

// Map returns a copy of the keyword arguments as a map.
func (kw *Kwargs) Map() map[string]interface{} {
	m := make(map[string]interface{}, kw.Len())
	kw.Each(func(name string, value interface{}) {
		m[name] = value
	})
	return m
}

// Decode decodes the keyword arguments into out, which should be a
// pointer to a struct or map. Field names are matched case-insensitively;
// use `mapstructure` struct tags to rename them.
func (kw *Kwargs) Decode(out interface{}) error {
	if err := mapstructure.Decode(kw.Map(), out); err != nil {
		return errors.Wrap(err, "failed to decode keyword arguments")
	}
	return nil
}

// String renders the keyword arguments as "k1=v1, k2=v2".
func (kw *Kwargs) String() string {
	strs := make([]string, 0, kw.Len())
	kw.Each(func(name string, value interface{}) {
		strs = append(strs, fmt.Sprintf("%v=%v", name, value))
	})
	return strings.Join(strs, ", ")
}

// splitArgs separates keyword arguments from positional ones. kwargs
// is nil when there are none.
func splitArgs(args []interface{}) ([]interface{}, *Kwargs) {
	var positional []interface{}
	var kwargs *Kwargs
	for _, arg := range args {
		kw, ok := arg.(Kwarg)
		if !ok {
			positional = append(positional, arg)
			continue
		}
		if kwargs == nil {
			kwargs = NewKwargs()
		}
		kwargs.m.Put(kw.Name, kw.Value)
	}
	return positional, kwargs
}
