// SPDX-License-Identifier: MIT

// Package parse wraps the strconv text-to-value primitives in
// Option-returning form, for composing with split fragments.
package parse

import (
	"strconv"
	"time"

	"gitlab.com/fisherprime/textspan/types"
)

// Int parses a base-10 integer.
func Int(s string) types.Option[int] {
	val, err := strconv.Atoi(s)
	if err != nil {
		return types.None[int]()
	}

	return types.Some(val)
}

// Int64 parses a base-10 64-bit integer.
func Int64(s string) types.Option[int64] {
	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return types.None[int64]()
	}

	return types.Some(val)
}

// Uint parses a base-10 unsigned integer.
func Uint(s string) types.Option[uint] {
	val, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return types.None[uint]()
	}

	return types.Some(uint(val))
}

// Float64 parses a floating-point number.
func Float64(s string) types.Option[float64] {
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return types.None[float64]()
	}

	return types.Some(val)
}

// Bool parses a boolean per strconv.ParseBool.
func Bool(s string) types.Option[bool] {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return types.None[bool]()
	}

	return types.Some(val)
}

// Duration parses a time.Duration.
func Duration(s string) types.Option[time.Duration] {
	val, err := time.ParseDuration(s)
	if err != nil {
		return types.None[time.Duration]()
	}

	return types.Some(val)
}

// MapFragments applies parser to each fragment, collecting successful values
// in order & dropping failures.
func MapFragments[T any](fragments []string, parser func(string) types.Option[T]) (values []T) {
	for index := range fragments {
		if val, ok := parser(fragments[index]).Get(); ok {
			values = append(values, val)
		}
	}

	return
}
