package categories

// And returns a Fold matching values in every one of cs.
func And(cs ...Category) *Fold {
	return NewFold(All, cs...)
}

// Or returns a Fold matching values in at least one of cs.
func Or(cs ...Category) *Fold {
	return NewFold(Any, cs...)
}

// Xor returns a Fold matching values missing from at least one of cs.
// This generalizes two-operand XOR as "not every operand matches", not
// as parity.
func Xor(cs ...Category) *Fold {
	return NewFold(NotAll, cs...)
}

// Not returns a Fold matching values not in c.
func Not(c Category) *Fold {
	return NewFold(NotAny, c)
}
