package deque

// Iterator is a random-access iterator over a Deque's elements,
// storing a position as a plain element index rather than the
// source's (outer_ptr, inner_ptr) pair — Go's bounds-checked slices
// make an index-based scheme equally O(1) without needing to track
// chunk-boundary arithmetic in the iterator itself; that arithmetic
// lives once, in Deque.locate, instead of being duplicated here.
type Iterator[T any] struct {
	d   *Deque[T]
	idx int
}

// Begin returns an iterator to the first element.
func Begin[T any](d *Deque[T]) Iterator[T] { return Iterator[T]{d: d, idx: 0} }

// End returns the past-the-end iterator.
func End[T any](d *Deque[T]) Iterator[T] { return Iterator[T]{d: d, idx: d.count} }

// Valid reports whether it refers to a real element.
func (it Iterator[T]) Valid() bool { return it.idx >= 0 && it.idx < it.d.count }

// Get returns the element it refers to.
func (it Iterator[T]) Get() T { return it.d.At(it.idx) }

// Set overwrites the element it refers to.
func (it Iterator[T]) Set(v T) { it.d.Set(it.idx, v) }

// Next returns the iterator one position forward.
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{d: it.d, idx: it.idx + 1} }

// Prev returns the iterator one position back.
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{d: it.d, idx: it.idx - 1} }

// Add returns the iterator n positions forward (n may be negative).
func (it Iterator[T]) Add(n int) Iterator[T] { return Iterator[T]{d: it.d, idx: it.idx + n} }

// Sub returns the signed distance from other to it.
func (it Iterator[T]) Sub(other Iterator[T]) int { return it.idx - other.idx }

// Equal reports whether it and other refer to the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.idx == other.idx }

// Less reports whether it precedes other.
func (it Iterator[T]) Less(other Iterator[T]) bool { return it.idx < other.idx }

// ReverseIterator walks a Deque back to front, sharing the same
// underlying position arithmetic as Iterator with Next/Prev flipped.
type ReverseIterator[T any] struct {
	it Iterator[T]
}

// RBegin returns a reverse iterator to the last element.
func RBegin[T any](d *Deque[T]) ReverseIterator[T] {
	return ReverseIterator[T]{it: Iterator[T]{d: d, idx: d.count - 1}}
}

// REnd returns the reverse past-the-end iterator.
func REnd[T any](d *Deque[T]) ReverseIterator[T] {
	return ReverseIterator[T]{it: Iterator[T]{d: d, idx: -1}}
}

func (r ReverseIterator[T]) Valid() bool { return r.it.Valid() }
func (r ReverseIterator[T]) Get() T      { return r.it.Get() }
func (r ReverseIterator[T]) Set(v T)     { r.it.Set(v) }

func (r ReverseIterator[T]) Next() ReverseIterator[T] { return ReverseIterator[T]{it: r.it.Prev()} }
func (r ReverseIterator[T]) Prev() ReverseIterator[T] { return ReverseIterator[T]{it: r.it.Next()} }
func (r ReverseIterator[T]) Add(n int) ReverseIterator[T] {
	return ReverseIterator[T]{it: r.it.Add(-n)}
}
func (r ReverseIterator[T]) Sub(other ReverseIterator[T]) int { return other.it.Sub(r.it) }
func (r ReverseIterator[T]) Equal(other ReverseIterator[T]) bool {
	return r.it.Equal(other.it)
}
