// Package bounds provides a generic range membership test with selectable boundary inclusion.
package bounds

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

// Between returns true if value lies between the lower and the upper bound. The optional mode selects which of the two
// bounds contain their boundary value - omitting it tests the closed range [lower .. upper].
//
// If lower is bigger than upper, the tested range contains no values and Between returns false for every value and
// every mode.
func Between[T constraints.Ordered](value, lower, upper T, mode ...BoundMode) bool {
	return withinBounds(lo.Comparator(value, lower), lo.Comparator(value, upper), optionalMode(mode))
}

// BetweenBool behaves like Between with the mode reduced to a single flag: omitted or true tests the closed range
// [lower .. upper], false the open range (lower .. upper). It exists for call sites that predate BoundMode.
func BetweenBool[T constraints.Ordered](value, lower, upper T, inclusive ...bool) bool {
	if len(inclusive) == 0 || inclusive[0] {
		return Between(value, lower, upper, BoundModeInclusive)
	}

	return Between(value, lower, upper, BoundModeExclusive)
}

// BetweenComparable is the counterpart of Between for types that define their own order through a Compare method.
func BetweenComparable[T constraints.Comparable[T]](value, lower, upper T, mode ...BoundMode) bool {
	return withinBounds(value.Compare(lower), value.Compare(upper), optionalMode(mode))
}

// BetweenPtr is the counterpart of Between for operands that may be absent. It returns an ErrInvalidArgument if any of
// the operands is nil, since an absent operand has no position in the order.
func BetweenPtr[T constraints.Ordered](value, lower, upper *T, mode ...BoundMode) (bool, error) {
	switch {
	case value == nil:
		return false, ierrors.Wrap(ErrInvalidArgument, "value must not be nil")
	case lower == nil:
		return false, ierrors.Wrap(ErrInvalidArgument, "lower must not be nil")
	case upper == nil:
		return false, ierrors.Wrap(ErrInvalidArgument, "upper must not be nil")
	}

	return Between(*value, *lower, *upper, optionalMode(mode)), nil
}

// withinBounds evaluates the two bound tests selected by mode against the comparison results of the value with the
// lower and the upper bound. Unknown modes evaluate like BoundModeInclusive instead of panicking.
func withinBounds(cmpLower, cmpUpper int, mode BoundMode) bool {
	switch mode {
	case BoundModeExclusive:
		return cmpLower > 0 && cmpUpper < 0
	case BoundModeExcludeLower:
		return cmpLower > 0 && cmpUpper <= 0
	case BoundModeExcludeUpper:
		return cmpLower >= 0 && cmpUpper < 0
	default:
		return cmpLower >= 0 && cmpUpper <= 0
	}
}

// optionalMode unwraps the optional trailing BoundMode argument of the exported predicates.
func optionalMode(mode []BoundMode) BoundMode {
	if len(mode) == 0 {
		return BoundModeInclusive
	}

	return mode[0]
}
