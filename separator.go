// SPDX-License-Identifier: MIT
package textspan

import (
	"golang.org/x/exp/slices"
)

type (
	// Separator defines the rule used to decide where a buffer splits.
	//
	// The zero value never matches; buffers split with it are yielded whole.
	Separator[T comparable] struct {
		// set holds the any-of separator elements; a position matches when its
		// element equals any member.
		set []T

		// word holds the exact-subsequence separator; a position matches when
		// the contiguous run starting there equals word in order.
		word []T

		// zeroWidth marks an empty word as a zero-width separator that splits
		// the buffer element-by-element instead of never matching.
		zeroWidth bool

		isWord bool
	}
)

// AnyOf builds a [Separator] matching any single listed element.
//
// An empty set never matches.
func AnyOf[T comparable](seps ...T) Separator[T] { return Separator[T]{set: seps} }

// Sequence builds a [Separator] matching an exact contiguous subsequence.
//
// An empty word is treated as a zero-width separator: the buffer splits into
// single-element fragments.
func Sequence[T comparable](word []T) Separator[T] {
	return Separator[T]{word: word, isWord: true, zeroWidth: true}
}

// WholeSequence builds an exact-subsequence [Separator] whose empty form never
// matches, yielding the buffer whole.
func WholeSequence[T comparable](word []T) Separator[T] {
	return Separator[T]{word: word, isWord: true}
}

// locate finds the leftmost match within remaining.
//
// It reports the match offset & the matched separator length; width is 0 only
// for the zero-width empty-word form, which still guarantees forward progress
// by matching after the leading element.
func (sep Separator[T]) locate(remaining []T) (index, width int, ok bool) {
	if sep.isWord {
		lenWord := len(sep.word)
		if lenWord < 1 {
			if !sep.zeroWidth || len(remaining) < 2 {
				return
			}

			// Split off the leading element; the final element carries no
			// trailing match so the last fragment is never empty.
			return 1, 0, true
		}

		limit := len(remaining) - lenWord
		for i := 0; i <= limit; i++ {
			if slices.Equal(remaining[i:i+lenWord], sep.word) {
				return i, lenWord, true
			}
		}

		return
	}

	if len(sep.set) < 1 {
		return
	}

	for i := range remaining {
		if slices.Contains(sep.set, remaining[i]) {
			return i, 1, true
		}
	}

	return
}
