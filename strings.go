// SPDX-License-Identifier: MIT
package textspan

import (
	"strings"
)

// REF: zero-copy string iteration over a shrinking suffix; fragments are
// substrings of the original input, never copies.

type (
	// StringSplitter is the string specialization of [Splitter], matching
	// byte-wise & yielding zero-copy substring fragments.
	StringSplitter struct {
		source string

		// seps holds the any-of separator bytes; word the exact-subsequence
		// separator. Exactly one form is active.
		seps   string
		word   string
		isWord bool

		policy Policy

		pos     int
		current Span
		fresh   bool
		pending bool
		done    bool
	}
)

// defSplitter is the separator substituted when none is supplied.
const defSplitter = ' '

// NewStringSplitter instantiates a [StringSplitter] splitting src on any of
// the bytes in seps.
//
// An empty seps never matches; src is yielded whole. The policy defaults to
// [KeepEmpty].
func NewStringSplitter(src, seps string, policy ...Policy) StringSplitter {
	s := StringSplitter{source: src, seps: seps, fresh: true}
	if len(policy) > 0 {
		s.policy = policy[0]
	}

	return s
}

// NewStringWordSplitter instantiates a [StringSplitter] splitting src on an
// exact substring.
//
// An empty word never matches; src is yielded whole. The policy defaults to
// [KeepEmpty].
func NewStringWordSplitter(src, word string, policy ...Policy) StringSplitter {
	s := StringSplitter{source: src, word: word, isWord: true, fresh: true}
	if len(policy) > 0 {
		s.policy = policy[0]
	}

	return s
}

// Policy retrieves the [StringSplitter]'s emission policy.
func (s *StringSplitter) Policy() Policy { return s.policy }

// Source retrieves the borrowed source string.
func (s *StringSplitter) Source() string { return s.source }

// Current retrieves the most recently produced fragment's [Span].
//
// Valid only after a Next call that returned true.
func (s *StringSplitter) Current() Span { return s.current }

// Fragment retrieves the most recently produced fragment as a substring of
// the source.
func (s *StringSplitter) Fragment() string { return s.current.OfString(s.source) }

// Reset restores the [StringSplitter] to its pre-iteration state.
func (s *StringSplitter) Reset() {
	s.pos = 0
	s.current = Span{}
	s.fresh = true
	s.pending = false
	s.done = false
}

// locate finds the leftmost separator match within the unconsumed suffix.
func (s *StringSplitter) locate(remaining string) (index, width int, ok bool) {
	if s.isWord {
		if len(s.word) < 1 {
			return
		}
		if index = strings.Index(remaining, s.word); index < 0 {
			return
		}

		return index, len(s.word), true
	}

	switch len(s.seps) {
	case 0:
		return
	case 1:
		if index = strings.IndexByte(remaining, s.seps[0]); index < 0 {
			return
		}

		return index, 1, true
	default:
		for i := 0; i < len(remaining); i++ {
			if strings.IndexByte(s.seps, remaining[i]) >= 0 {
				return i, 1, true
			}
		}

		return
	}
}

// Next advances to the next fragment, reporting whether one is available.
//
// Once false, Next is false forever.
func (s *StringSplitter) Next() bool {
	switch {
	case s.done:
		return false
	case s.pending:
		s.pending = false
		s.current = EmptyAt(s.pos)

		return true
	}

	fresh := s.fresh
	s.fresh = false

	for {
		remaining := s.source[s.pos:]
		if len(remaining) < 1 {
			if fresh && s.policy == KeepEmpty {
				s.current = EmptyAt(s.pos)
				s.done = true

				return true
			}

			s.done = true

			return false
		}
		fresh = false

		index, width, ok := s.locate(remaining)
		if !ok {
			s.current = Span{Start: s.pos, End: len(s.source)}
			s.pos = len(s.source)

			return true
		}

		start, end := s.pos, s.pos+index
		s.pos = end + width

		if s.policy == RemoveEmpty && end <= start {
			continue
		}

		s.current = Span{Start: start, End: end}
		if s.pos >= len(s.source) && s.policy == KeepEmpty {
			s.pending = true
		}

		return true
	}
}

// FirstTwo runs the iteration, capturing the first two fragments.
//
// Slots left unfilled by an exhausted iteration are empty [Span]s at the
// string's end.
func (s *StringSplitter) FirstTwo() (first, second Span) {
	end := EmptyAt(len(s.source))
	first, second = end, end

	if s.Next() {
		first = s.current
	}
	if s.Next() {
		second = s.current
	}

	return
}

// FirstThree runs the iteration, capturing the first three fragments.
func (s *StringSplitter) FirstThree() (first, second, third Span) {
	end := EmptyAt(len(s.source))
	first, second, third = end, end, end

	if s.Next() {
		first = s.current
	}
	if s.Next() {
		second = s.current
	}
	if s.Next() {
		third = s.current
	}

	return
}

// Split collects the fragments of s split on any of the listed separator
// bytes, keeping empty fragments.
//
// With no separator supplied a single space is substituted.
func Split(s string, seps ...byte) []string {
	if len(seps) < 1 {
		seps = []byte{defSplitter}
	}

	return drainStrings(NewStringSplitter(s, string(seps)))
}

// SplitRemoveEmpty collects the non-empty fragments of s split on any of the
// listed separator bytes.
//
// With no separator supplied a single space is substituted.
func SplitRemoveEmpty(s string, seps ...byte) []string {
	if len(seps) < 1 {
		seps = []byte{defSplitter}
	}

	return drainStrings(NewStringSplitter(s, string(seps), RemoveEmpty))
}

// SplitWord collects the fragments of s split on an exact substring, keeping
// empty fragments.
//
// An empty word never matches; the result is s whole.
func SplitWord(s, word string) []string {
	return drainStrings(NewStringWordSplitter(s, word))
}

// drainStrings exhausts a [StringSplitter] into a fragment slice.
func drainStrings(s StringSplitter) (fragments []string) {
	for s.Next() {
		fragments = append(fragments, s.Fragment())
	}

	return
}

// Split2 captures the first two non-empty fragments of s split on any of the
// listed separator bytes, discarding the rest.
//
// Unfilled slots are empty substrings at the string's end.
func Split2(s string, seps ...byte) (first, second string) {
	sp := NewStringSplitter(s, string(seps), RemoveEmpty)
	a, b := sp.FirstTwo()

	return a.OfString(s), b.OfString(s)
}

// Split3 captures the first three non-empty fragments of s split on any of
// the listed separator bytes, discarding the rest.
//
// Unfilled slots are empty substrings at the string's end.
func Split3(s string, seps ...byte) (first, second, third string) {
	sp := NewStringSplitter(s, string(seps), RemoveEmpty)
	a, b, c := sp.FirstThree()

	return a.OfString(s), b.OfString(s), c.OfString(s)
}

// SplitString2 splits s once around the leftmost occurrence of sep without
// allocating, returning both halves & the fragment count.
//
// An absent or empty sep yields s whole with a count of 1.
func SplitString2(s, sep string) (first, second string, count int) {
	if sep == "" {
		return s, "", 1
	}

	pos := strings.Index(s, sep)
	if pos < 0 {
		return s, "", 1
	}

	return s[:pos], s[pos+len(sep):], 2
}
