// SPDX-License-Identifier: MIT
package textspan

import "fmt"

type (
	// Span is a half-open offset range [Start, End) into some source buffer.
	//
	// A Span never owns buffer storage; it only indexes the buffer it was
	// produced from.
	Span struct {
		Start int
		End   int
	}
)

// EmptyAt obtains a zero-length [Span] positioned at offset.
func EmptyAt(offset int) Span { return Span{Start: offset, End: offset} }

// Len obtains the number of elements covered by the [Span].
func (s Span) Len() int { return s.End - s.Start }

// IsEmpty reports whether the [Span] covers no elements.
func (s Span) IsEmpty() bool { return s.End <= s.Start }

// Of obtains the subslice of src covered by the [Span].
//
// The result aliases src; no copy is made.
func Of[T comparable](s Span, src []T) []T { return src[s.Start:s.End] }

// OfString obtains the substring of src covered by the [Span].
func (s Span) OfString(src string) string { return src[s.Start:s.End] }

// String is the `fmt.Stringer` interface implementation for [Span].
func (s Span) String() string { return fmt.Sprintf("[%d,%d)", s.Start, s.End) }
