package categories

import (
	"github.com/doctaphred/categories/internal/compare"
	"github.com/pkg/errors"
)

// ComparisonOp is a comparison operator understood by Values.Compare.
type ComparisonOp string

const (
	LT   ComparisonOp = "<"
	LTE  ComparisonOp = "<="
	GT   ComparisonOp = ">"
	GTE  ComparisonOp = ">="
	EQL  ComparisonOp = "=="
	NEQL ComparisonOp = "!="
)

var comparisonOpNames = map[ComparisonOp]string{
	LT:   "lt",
	LTE:  "le",
	GT:   "gt",
	GTE:  "ge",
	EQL:  "eq",
	NEQL: "ne",
}

// Name returns the label used for predicates built from op, e.g. "lt".
func (op ComparisonOp) Name() string {
	if name, ok := comparisonOpNames[op]; ok {
		return name
	}
	return string(op)
}

// Valid returns true if op is one of the six comparison operators.
func (op ComparisonOp) Valid() bool {
	_, ok := comparisonOpNames[op]
	return ok
}

// Eval returns the result of "a op b". It returns an error when a and
// b cannot be ordered (for the ordering operators) or op is invalid.
func (op ComparisonOp) Eval(a interface{}, b interface{}) (bool, error) {
	switch op {
	case EQL:
		return compare.Equal(a, b), nil
	case NEQL:
		return !compare.Equal(a, b), nil
	}
	if !op.Valid() {
		return false, errors.Errorf("%q is not a valid comparison operator", string(op))
	}
	cmp, err := compare.Order(a, b)
	if err != nil {
		return false, err
	}
	switch op {
	case LT:
		return cmp < 0, nil
	case LTE:
		return cmp <= 0, nil
	case GT:
		return cmp > 0, nil
	default:
		return cmp >= 0, nil
	}
}
