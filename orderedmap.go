// Package ordcol provides ordered, iterator-stable containers: an
// AVL-backed OrderedMap/OrderedSet pair and a segmented Deque, plus
// join-based bulk set operations (Union/Intersection/Difference) over
// the ordered containers.
package ordcol

import (
	"fmt"

	"github.com/orizon-lang/ordcol/tree"
)

// OrderedMap is an associative container that keeps entries sorted by
// key, unlike the teacher's hash-backed Map
// (internal/teacherref/collections/map.go). It exposes the same
// forwarding-method shape — Get/Put/Delete/Has/Keys/Values/Clone/
// ForEach — generalized from a plain Go map to an AVL tree so that
// iteration order, range queries, and bulk set operations are
// possible.
type OrderedMap[K any, V any] struct {
	t *tree.Tree[K, V]
}

// NewOrderedMap constructs an empty OrderedMap ordered by cmp.
func NewOrderedMap[K any, V any](cmp func(K, K) int) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{t: tree.New[K, V](cmp)}
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int { return m.t.Len() }

// IsEmpty reports whether the map has no entries.
func (m *OrderedMap[K, V]) IsEmpty() bool { return m.t.Empty() }

// Has reports whether key exists.
func (m *OrderedMap[K, V]) Has(k K) bool { return m.t.Contains(k) }

// Get returns the value for key and whether it was present.
func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	it := m.t.Find(k)
	if !it.Valid() {
		var zero V
		return zero, false
	}
	return it.Value(), true
}

// GetOrDefault returns the value for key, or def if absent.
func (m *OrderedMap[K, V]) GetOrDefault(k K, def V) V {
	if v, ok := m.Get(k); ok {
		return v
	}
	return def
}

// At returns the value for key, panicking with ErrOutOfRange if key is
// absent.
func (m *OrderedMap[K, V]) At(k K) V {
	v, ok := m.Get(k)
	if !ok {
		panic(ErrOutOfRange(fmt.Sprintf("key %v not found", k)))
	}
	return v
}

// Put inserts or overwrites key with value, returning the previous
// value and whether it existed.
func (m *OrderedMap[K, V]) Put(k K, v V) (prev V, replaced bool) {
	it, inserted := m.t.Insert(k, v)
	if inserted {
		return prev, false
	}
	if !it.Valid() {
		panic(ErrInvariant("insert reported an existing key but returned an invalid iterator"))
	}
	prev = it.Value()
	it.SetValue(v)
	return prev, true
}

// GetOrInsert returns the current value for key if present; otherwise
// it inserts fn() and returns that.
func (m *OrderedMap[K, V]) GetOrInsert(k K, fn func() V) V {
	var zero V
	it, inserted := m.t.Insert(k, zero)
	if inserted {
		v := fn()
		it.SetValue(v)
		return v
	}
	return it.Value()
}

// Delete removes key, returning its previous value and whether it
// existed.
func (m *OrderedMap[K, V]) Delete(k K) (prev V, existed bool) {
	it := m.t.Find(k)
	if !it.Valid() {
		return prev, false
	}
	prev = it.Value()
	m.t.EraseIter(it)
	return prev, true
}

// Clear removes all entries.
func (m *OrderedMap[K, V]) Clear() { m.t.Clear() }

// Keys returns a snapshot of keys in ascending order.
func (m *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.t.Len())
	for it := m.t.Begin(); it.Valid(); it = it.Next() {
		keys = append(keys, it.Key())
	}
	return keys
}

// Values returns a snapshot of values in key-ascending order.
func (m *OrderedMap[K, V]) Values() []V {
	vals := make([]V, 0, m.t.Len())
	for it := m.t.Begin(); it.Valid(); it = it.Next() {
		vals = append(vals, it.Value())
	}
	return vals
}

// Clone returns a deep, independent copy.
func (m *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{t: m.t.Clone()}
}

// Swap exchanges the contents of m and other in O(1).
func (m *OrderedMap[K, V]) Swap(other *OrderedMap[K, V]) {
	m.t, other.t = other.t, m.t
}

// ForEach iterates entries in ascending key order.
func (m *OrderedMap[K, V]) ForEach(fn func(k K, v V)) {
	for it := m.t.Begin(); it.Valid(); it = it.Next() {
		fn(it.Key(), it.Value())
	}
}

// Begin returns an iterator to the minimum entry.
func (m *OrderedMap[K, V]) Begin() tree.Iterator[K, V] { return m.t.Begin() }

// End returns the past-the-end iterator.
func (m *OrderedMap[K, V]) End() tree.Iterator[K, V] { return m.t.End() }

// LowerBound returns an iterator to the first entry with key >= k.
func (m *OrderedMap[K, V]) LowerBound(k K) tree.Iterator[K, V] { return m.t.LowerBound(k) }

// UpperBound returns an iterator to the first entry with key > k.
func (m *OrderedMap[K, V]) UpperBound(k K) tree.Iterator[K, V] { return m.t.UpperBound(k) }

// Tree exposes the underlying ordered tree, for callers that need
// direct access to bulk set operations or custom iteration.
func (m *OrderedMap[K, V]) Tree() *tree.Tree[K, V] { return m.t }
