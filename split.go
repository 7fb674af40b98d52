// SPDX-License-Identifier: MIT
package textspan

import (
	"github.com/davecgh/go-spew/spew"
)

// SplitAll collects every fragment [Span] produced by splitting src on any of
// the listed separator elements.
//
// An empty separator list never matches; the result is the whole buffer as
// one fragment (or none under [RemoveEmpty] on an empty buffer).
func SplitAll[T comparable](src []T, policy Policy, seps ...T) (spans []Span) {
	s := New(src, AnyOf(seps...), policy)
	return appendSpans(&s, spans)
}

// SplitAllSequence collects every fragment [Span] produced by splitting src on
// an exact contiguous subsequence.
//
// Unlike [BySequence], an empty word never matches here; the buffer is
// returned whole.
func SplitAllSequence[T comparable](src, word []T, policy Policy) (spans []Span) {
	s := New(src, WholeSequence(word), policy)
	return appendSpans(&s, spans)
}

// appendSpans drains a [Splitter] into spans.
func appendSpans[T comparable](s *Splitter[T], spans []Span) []Span {
	for s.Next() {
		spans = append(spans, s.Current())
	}

	return spans
}

// Collect copies every fragment produced by splitting src with sep.
//
// The fragments are freshly allocated; use [SplitAll] for the
// allocation-free offset form.
func Collect[T comparable](src []T, sep Separator[T], policy Policy, options ...Option) (fragments [][]T) {
	cfg := defConfig
	if len(options) > 0 {
		cfg = &Config{}
		for _, opt := range options {
			opt(cfg)
		}
		cfg.Validate()
	}

	s := New(src, sep, policy)
	for s.Next() {
		fragment := make([]T, s.current.Len())
		copy(fragment, s.Fragment())
		fragments = append(fragments, fragment)
	}

	if cfg.Debug {
		// Skip expensive operation if not debug.
		cfg.Logger.Debugf("collected fragments: %s", spew.Sprint(fragments))
	}

	return
}
