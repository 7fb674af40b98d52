// SPDX-License-Identifier: MIT

// Package textspan provides allocation-free splitting primitives over
// contiguous buffers.
//
// A [Splitter] partitions a borrowed `[]T` into [Span] offset ranges around a
// [Separator] (any-of elements or an exact subsequence) without copying
// buffer storage; [StringSplitter] is the byte-wise string specialization.
// Zero-length fragments are kept or dropped per [Policy].
//
// The subpackages supply the surrounding toolkit: `types` holds the
// Option/Result value wrappers, `parse` the Option-returning text-to-value
// helpers & `pool` a bounded worker pool for isolating blocking calls.
package textspan
