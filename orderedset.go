package ordcol

import "github.com/orizon-lang/ordcol/tree"

// OrderedSet is a set built on top of OrderedMap[T, struct{}], the
// same layering the teacher uses for its hash Set over Map
// (internal/teacherref/collections/set.go), generalized from a Go map
// to an ordered tree so that Union/Intersection/Difference can run the
// join-based bulk algorithms in the tree package instead of a
// linear scan.
type OrderedSet[T any] struct {
	m *OrderedMap[T, struct{}]
}

// NewOrderedSet constructs an empty OrderedSet ordered by cmp.
func NewOrderedSet[T any](cmp func(T, T) int) *OrderedSet[T] {
	return &OrderedSet[T]{m: NewOrderedMap[T, struct{}](cmp)}
}

// NewOrderedSetFrom constructs an OrderedSet containing xs.
func NewOrderedSetFrom[T any](cmp func(T, T) int, xs ...T) *OrderedSet[T] {
	s := NewOrderedSet[T](cmp)
	for _, x := range xs {
		s.Add(x)
	}
	return s
}

// Len returns the number of elements.
func (s *OrderedSet[T]) Len() int { return s.m.Len() }

// IsEmpty reports whether the set is empty.
func (s *OrderedSet[T]) IsEmpty() bool { return s.m.IsEmpty() }

// Has reports whether x is in the set.
func (s *OrderedSet[T]) Has(x T) bool { return s.m.Has(x) }

// Add inserts x, returning false if it was already present.
func (s *OrderedSet[T]) Add(x T) bool {
	_, replaced := s.m.Put(x, struct{}{})
	return !replaced
}

// AddAll inserts every value in xs, returning the count newly added.
func (s *OrderedSet[T]) AddAll(xs ...T) int {
	added := 0
	for _, x := range xs {
		if s.Add(x) {
			added++
		}
	}
	return added
}

// Remove deletes x, returning true if it existed.
func (s *OrderedSet[T]) Remove(x T) bool {
	_, existed := s.m.Delete(x)
	return existed
}

// Clear removes all elements.
func (s *OrderedSet[T]) Clear() { s.m.Clear() }

// Clone returns a deep, independent copy.
func (s *OrderedSet[T]) Clone() *OrderedSet[T] {
	return &OrderedSet[T]{m: s.m.Clone()}
}

// Swap exchanges the contents of s and other in O(1).
func (s *OrderedSet[T]) Swap(other *OrderedSet[T]) {
	s.m.Swap(other.m)
}

// ToSlice returns a snapshot slice of elements in ascending order.
func (s *OrderedSet[T]) ToSlice() []T { return s.m.Keys() }

// ForEach iterates elements in ascending order.
func (s *OrderedSet[T]) ForEach(fn func(T)) {
	s.m.ForEach(func(k T, _ struct{}) { fn(k) })
}

// Tree exposes the underlying ordered tree.
func (s *OrderedSet[T]) Tree() *tree.Tree[T, struct{}] { return s.m.Tree() }

func fromTree[T any](t *tree.Tree[T, struct{}]) *OrderedSet[T] {
	return &OrderedSet[T]{m: &OrderedMap[T, struct{}]{t: t}}
}
