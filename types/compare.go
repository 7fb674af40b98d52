// SPDX-License-Identifier: MIT
package types

import (
	"golang.org/x/exp/constraints"
)

// Equality over Option & Result is structural: `Some`/`Ok` values are equal
// iff their payloads are, `None` only equals `None`. For comparable payloads
// the types themselves are comparable & `==` applies; the helpers below exist
// for call sites holding type parameters.

// EqualOptions reports structural equality of two [Option]s.
func EqualOptions[T comparable](a, b Option[T]) bool { return a == b }

// EqualResults reports structural equality of two [Result]s.
func EqualResults[T, E comparable](a, b Result[T, E]) bool { return a == b }

// CompareOptions orders two [Option]s: `None` before any `Some`, occupied
// values by their natural ordering.
func CompareOptions[T constraints.Ordered](a, b Option[T]) int {
	switch {
	case a.some && b.some:
		return compareOrdered(a.value, b.value)
	case a.some:
		return 1
	case b.some:
		return -1
	default:
		return 0
	}
}

// CompareResults orders two [Result]s: any `Ok` before any `Err`, same
// variants by their payload's natural ordering.
func CompareResults[T, E constraints.Ordered](a, b Result[T, E]) int {
	switch {
	case a.ok && b.ok:
		return compareOrdered(a.value, b.value)
	case !a.ok && !b.ok:
		return compareOrdered(a.err, b.err)
	case a.ok:
		return -1
	default:
		return 1
	}
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
