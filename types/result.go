// SPDX-License-Identifier: MIT
package types

import (
	"errors"
	"fmt"
	"reflect"
)

type (
	// Result wraps a fallible value: either `Ok(value)` or `Err(error)`.
	//
	// Exactly one payload is logically active. The error payload is generic;
	// it need not implement the `error` interface.
	Result[T, E any] struct {
		value T
		err   E
		ok    bool
	}
)

// Construction & unwrap errors, surfaced through panic (contract
// violations).
var (
	ErrNilPayload = errors.New("nil Result payload")
	ErrNotOk      = errors.New("unwrap of an Err Result")
	ErrNotErr     = errors.New("error-unwrap of an Ok Result")
)

// Ok wraps value in a successful [Result].
//
// Panics with [ErrNilPayload] on a nil-valued payload.
func Ok[T, E any](value T) Result[T, E] {
	assertPayload(value)
	return Result[T, E]{value: value, ok: true}
}

// Err wraps err in a failed [Result].
//
// Panics with [ErrNilPayload] on a nil-valued payload.
func Err[T, E any](err E) Result[T, E] {
	assertPayload(err)
	return Result[T, E]{err: err}
}

// assertPayload fails fast on nil-able payloads holding nil.
func assertPayload(payload any) {
	if payload == nil {
		panic(ErrNilPayload)
	}

	v := reflect.ValueOf(payload)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			panic(fmt.Errorf("%w: %v", ErrNilPayload, v.Type()))
		}
	default:
	}
}

// IsOk reports whether the [Result] is successful.
func (r Result[T, E]) IsOk() bool { return r.ok }

// IsErr reports whether the [Result] is failed.
func (r Result[T, E]) IsErr() bool { return !r.ok }

// Get retrieves the success value & its presence.
func (r Result[T, E]) Get() (value T, ok bool) { return r.value, r.ok }

// GetErr retrieves the error value & its presence.
func (r Result[T, E]) GetErr() (err E, ok bool) { return r.err, !r.ok }

// Unwrap retrieves the success value.
//
// Panics with [ErrNotOk] on a failed [Result].
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(fmt.Errorf("%w: %v", ErrNotOk, r.err))
	}

	return r.value
}

// UnwrapErr retrieves the error value.
//
// Panics with [ErrNotErr] on a successful [Result].
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(ErrNotErr)
	}

	return r.err
}

// UnwrapOr retrieves the success value, falling back to def.
func (r Result[T, E]) UnwrapOr(def T) T {
	if !r.ok {
		return def
	}

	return r.value
}

// Expect retrieves the success value, panicking with message on a failed
// [Result].
func (r Result[T, E]) Expect(message string) T {
	if !r.ok {
		panic(fmt.Errorf("%s: %w: %v", message, ErrNotOk, r.err))
	}

	return r.value
}

// OkOption bridges the success variant to an [Option].
func (r Result[T, E]) OkOption() Option[T] {
	if !r.ok {
		return None[T]()
	}

	return Some(r.value)
}

// ErrOption bridges the error variant to an [Option].
func (r Result[T, E]) ErrOption() Option[E] {
	if r.ok {
		return None[E]()
	}

	return Some(r.err)
}

// MapResult transforms the success value, passing errors through.
func MapResult[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}

	return Ok[U, E](fn(r.value))
}

// MapErr transforms the error value, passing successes through.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}

	return Err[T](fn(r.err))
}

// BindResult chains a Result-producing transformation (flat map).
func BindResult[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}

	return fn(r.value)
}

// MatchResult folds over both variants.
func MatchResult[T, E, U any](r Result[T, E], ok func(T) U, fail func(E) U) U {
	if !r.ok {
		return fail(r.err)
	}

	return ok(r.value)
}

// Transpose swaps an [Option] of [Result] into a [Result] of [Option].
//
// `None` maps to `Ok(None)`.
func Transpose[T, E any](o Option[Result[T, E]]) Result[Option[T], E] {
	if !o.some {
		return Ok[Option[T], E](None[T]())
	}
	if !o.value.ok {
		return Err[Option[T]](o.value.err)
	}

	return Ok[Option[T], E](Some(o.value.value))
}

// TransposeResult swaps a [Result] of [Option] into an [Option] of [Result].
//
// `Ok(None)` maps to `None`.
func TransposeResult[T, E any](r Result[Option[T], E]) Option[Result[T, E]] {
	if !r.ok {
		return Some(Err[T](r.err))
	}
	if !r.value.some {
		return None[Result[T, E]]()
	}

	return Some(Ok[T, E](r.value.value))
}
