// SPDX-License-Identifier: MIT
package types

import (
	"errors"
	"fmt"
)

type (
	// Option wraps an optional value: either `Some(value)` or `None`.
	//
	// The zero value is `None`. Option is a plain value type; copying with
	// ordinary assignment is the intended lifecycle.
	Option[T any] struct {
		value T
		some  bool
	}

	// Pair couples two values, used by the zip operations.
	Pair[A, B any] struct {
		First  A
		Second B
	}
)

// Unwrap errors.
//
// These surface through panic; absence of a value is a contract violation,
// not a recoverable condition.
var (
	ErrNoValue = errors.New("unwrap of an empty Option")
)

// Some wraps value in an occupied [Option].
func Some[T any](value T) Option[T] { return Option[T]{value: value, some: true} }

// None obtains the empty [Option].
func None[T any]() Option[T] { return Option[T]{} }

// SomePtr wraps a pointer in an [Option], normalizing nil to `None`.
func SomePtr[T any](value *T) Option[*T] {
	if value == nil {
		return None[*T]()
	}

	return Some(value)
}

// IsSome reports whether the [Option] holds a value.
func (o Option[T]) IsSome() bool { return o.some }

// IsNone reports whether the [Option] is empty.
func (o Option[T]) IsNone() bool { return !o.some }

// Get retrieves the contained value & its presence.
func (o Option[T]) Get() (value T, ok bool) { return o.value, o.some }

// Unwrap retrieves the contained value.
//
// Panics with [ErrNoValue] on an empty [Option].
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(ErrNoValue)
	}

	return o.value
}

// Expect retrieves the contained value, panicking with message on an empty
// [Option].
func (o Option[T]) Expect(message string) T {
	if !o.some {
		panic(fmt.Errorf("%s: %w", message, ErrNoValue))
	}

	return o.value
}

// UnwrapOr retrieves the contained value, falling back to def.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.some {
		return def
	}

	return o.value
}

// UnwrapOrElse retrieves the contained value, falling back to the factory's
// output.
func (o Option[T]) UnwrapOrElse(factory func() T) T {
	if !o.some {
		return factory()
	}

	return o.value
}

// Filter retains the value only if predicate holds for it.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if !o.some || !predicate(o.value) {
		return None[T]()
	}

	return o
}

// And obtains other if the [Option] holds a value, `None` otherwise.
func (o Option[T]) And(other Option[T]) Option[T] {
	if !o.some {
		return None[T]()
	}

	return other
}

// Or obtains the [Option] if it holds a value, other otherwise.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}

	return other
}

// Xor obtains whichever [Option] holds a value, `None` when both or neither
// do.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	switch {
	case o.some && !other.some:
		return o
	case !o.some && other.some:
		return other
	default:
		return None[T]()
	}
}

// MapOption transforms the contained value.
//
// `None` maps to `None`.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}

	return Some(fn(o.value))
}

// BindOption chains an Option-producing transformation (flat map).
func BindOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}

	return fn(o.value)
}

// MatchOption folds over both variants.
func MatchOption[T, U any](o Option[T], some func(T) U, none func() U) U {
	if !o.some {
		return none()
	}

	return some(o.value)
}

// ZipOptions couples two occupied [Option]s into one; `None` if either is
// empty.
func ZipOptions[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	if !a.some || !b.some {
		return None[Pair[A, B]]()
	}

	return Some(Pair[A, B]{First: a.value, Second: b.value})
}

// ZipWith combines two occupied [Option]s through fn; `None` if either is
// empty.
func ZipWith[A, B, C any](a Option[A], b Option[B], fn func(A, B) C) Option[C] {
	if !a.some || !b.some {
		return None[C]()
	}

	return Some(fn(a.value, b.value))
}

// Flatten removes one level of [Option] nesting.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if !o.some {
		return None[T]()
	}

	return o.value
}

// OkOr bridges an [Option] to a [Result], substituting err for `None`.
func OkOr[T, E any](o Option[T], err E) Result[T, E] {
	if !o.some {
		return Err[T](err)
	}

	return Ok[T, E](o.value)
}

// OkOrElse bridges an [Option] to a [Result], substituting the factory's
// error for `None`.
func OkOrElse[T, E any](o Option[T], factory func() E) Result[T, E] {
	if !o.some {
		return Err[T](factory())
	}

	return Ok[T, E](o.value)
}
