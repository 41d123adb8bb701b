package tree

// Iterator is a bidirectional iterator over a Tree's in-order sequence.
// The zero value is not valid; obtain one from Tree's Begin/End/Find/
// LowerBound/UpperBound or from Insert/EraseIter.
type Iterator[K any, V any] struct {
	t *Tree[K, V]
	n *node[K, V]
}

// Valid reports whether it refers to a real element (false for End()).
func (it Iterator[K, V]) Valid() bool { return it.n != nil && it.n != it.t.sentinel }

// Key returns the key at it. Calling Key on an invalid iterator panics,
// same as dereferencing end() is undefined behavior in the source.
func (it Iterator[K, V]) Key() K {
	if !it.Valid() {
		panic("tree: Key called on an invalid iterator")
	}
	return it.n.key
}

// Value returns the value at it.
func (it Iterator[K, V]) Value() V { return it.n.val }

// SetValue overwrites the value at it in place, without touching the
// tree's structure or invalidating any other iterator.
func (it Iterator[K, V]) SetValue(v V) { it.n.val = v }

// Next returns the iterator to the in-order successor of it.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	return Iterator[K, V]{t: it.t, n: next(it.n, it.t.sentinel)}
}

// Prev returns the iterator to the in-order predecessor of it.
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	return Iterator[K, V]{t: it.t, n: prev(it.n, it.t.sentinel)}
}

// Equal reports whether it and other refer to the same position.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool { return it.n == other.n }

// ReverseIterator shares the same underlying storage as Iterator, with
// Next/Prev sign-flipped, matching how the source's reverse iterators
// wrap the forward ones instead of duplicating the walk logic.
type ReverseIterator[K any, V any] struct {
	it Iterator[K, V]
}

// Valid reports whether r refers to a real element. REnd wraps Begin,
// so r is invalid exactly when its underlying forward position is the
// tree's begin-cache.
func (r ReverseIterator[K, V]) Valid() bool { return r.it.n != r.it.t.begin }

func (r ReverseIterator[K, V]) Key() K   { return r.it.Prev().n.key }
func (r ReverseIterator[K, V]) Value() V { return r.it.Prev().n.val }

func (r ReverseIterator[K, V]) Next() ReverseIterator[K, V] {
	return ReverseIterator[K, V]{it: r.it.Prev()}
}

func (r ReverseIterator[K, V]) Prev() ReverseIterator[K, V] {
	return ReverseIterator[K, V]{it: r.it.Next()}
}
