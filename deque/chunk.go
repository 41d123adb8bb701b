// Package deque implements a segmented double-ended queue: a growable
// outer array of fixed-capacity chunks, giving O(1) amortized push/pop
// at both ends and O(1) random-access indexing without the full-buffer
// copy a single flat ring buffer needs to grow.
package deque

import "unsafe"

// minChunkCapacity is the floor on how many elements a chunk holds,
// regardless of how large T is; this keeps pathologically large T
// (bigger than targetChunkBytes itself) from producing a one-element
// chunk, which would degrade indexing to effectively the same cost as
// a plain slice of pointers.
const minChunkCapacity = 4

// targetChunkBytes bounds how many bytes of T a single chunk holds,
// mirroring original_source/src/deque/deque_constants.h's fixed
// per-chunk byte budget.
const targetChunkBytes = 512

// chunkCapacity computes how many T elements fit in one chunk, lazily
// from unsafe.Sizeof(T) the first time a Deque[T] is used — the same
// "zero value is ready to use" idiom as the teacher's ring-buffer
// Deque (internal/teacherref/collections/deque.go), just sizing a
// chunk instead of a flat buffer.
func chunkCapacity[T any]() int {
	var zero T
	sz := int(unsafe.Sizeof(zero))
	if sz == 0 {
		return targetChunkBytes
	}
	c := targetChunkBytes / sz
	if c < minChunkCapacity {
		return minChunkCapacity
	}
	return c
}

// chunk is one fixed-capacity segment of the deque's backing storage.
type chunk[T any] struct {
	data []T
}

func newChunk[T any](cap int) *chunk[T] {
	return &chunk[T]{data: make([]T, cap)}
}
