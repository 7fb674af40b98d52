// SPDX-License-Identifier: MIT
package textspan

// REF: https://dave.cheney.net/high-performance-json.html
// REF: strings.FieldsFunc's span-collecting pass.

type (
	// Policy governs whether zero-length fragments are emitted.
	Policy int

	// Splitter is a restartable, single-pass iterator partitioning a source
	// buffer into [Span] fragments delimited by a [Separator].
	//
	// The source buffer is borrowed, never copied; every produced [Span]
	// indexes it directly, so the buffer must outlive the Splitter & any
	// fragment derived from it. Advancing mutates the Splitter's own offsets
	// in place & is not synchronized; a shared instance requires external
	// locking.
	Splitter[T comparable] struct {
		source []T
		sep    Separator[T]
		policy Policy

		// pos is the start offset of the unconsumed suffix.
		pos int

		// current is the most recently produced fragment.
		current Span

		// fresh is true before the first advance; an originally-empty buffer
		// owes exactly one empty fragment under [KeepEmpty].
		fresh bool

		// pending records that the buffer ended exactly on a separator & one
		// final empty fragment is owed.
		pending bool

		done bool
	}
)

const (
	// KeepEmpty emits zero-length fragments.
	KeepEmpty Policy = iota

	// RemoveEmpty drops zero-length fragments, leading & trailing included.
	RemoveEmpty
)

// New instantiates a [Splitter] over src.
//
// Construction is constant time; src is not scanned. The policy defaults to
// [KeepEmpty].
func New[T comparable](src []T, sep Separator[T], policy ...Policy) Splitter[T] {
	s := Splitter[T]{source: src, sep: sep, fresh: true}
	if len(policy) > 0 {
		s.policy = policy[0]
	}

	return s
}

// ByAny instantiates a [Splitter] splitting src on any of the listed
// separator elements.
//
// An empty separator list never matches; src is yielded whole.
func ByAny[T comparable](src []T, seps ...T) Splitter[T] { return New(src, AnyOf(seps...)) }

// BySequence instantiates a [Splitter] splitting src on an exact contiguous
// subsequence.
//
// An empty word acts as a zero-width separator, yielding single-element
// fragments.
func BySequence[T comparable](src, word []T) Splitter[T] { return New(src, Sequence(word)) }

// Policy retrieves the [Splitter]'s emission policy.
func (s *Splitter[T]) Policy() Policy { return s.policy }

// Source retrieves the borrowed source buffer.
func (s *Splitter[T]) Source() []T { return s.source }

// Current retrieves the most recently produced fragment's [Span].
//
// Valid only after a Next call that returned true.
func (s *Splitter[T]) Current() Span { return s.current }

// Fragment retrieves the most recently produced fragment as a subslice of the
// source buffer.
func (s *Splitter[T]) Fragment() []T { return Of(s.current, s.source) }

// Reset restores the [Splitter] to its pre-iteration state.
func (s *Splitter[T]) Reset() {
	s.pos = 0
	s.current = Span{}
	s.fresh = true
	s.pending = false
	s.done = false
}

// Next advances to the next fragment, reporting whether one is available.
//
// Once false, Next is false forever. Next performs no heap allocation; only
// the Splitter's scalar offsets mutate.
func (s *Splitter[T]) Next() bool {
	switch {
	case s.done:
		return false
	case s.pending:
		// The buffer ended exactly on a separator; emit the owed trailing
		// empty fragment.
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

		index, width, ok := s.sep.locate(remaining)
		if !ok {
			// No further separators; the rest of the buffer is the final
			// fragment.
			s.current = Span{Start: s.pos, End: len(s.source)}
			s.pos = len(s.source)

			return true
		}

		// A zero-width match reports its offset past the leading element, so
		// the advance below still makes forward progress.
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
// buffer's end.
func (s *Splitter[T]) FirstTwo() (first, second Span) {
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
//
// Slots left unfilled by an exhausted iteration are empty [Span]s at the
// buffer's end.
func (s *Splitter[T]) FirstThree() (first, second, third Span) {
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
