package tree

// Tree is an AVL-balanced binary search tree keyed by K with values V.
// The zero value is not usable; construct with New.
type Tree[K any, V any] struct {
	sentinel *node[K, V]
	begin    *node[K, V] // leftmost non-sentinel node, or sentinel when empty
	cmp      func(K, K) int
}

// New constructs an empty Tree ordered by cmp, which must implement a
// strict weak ordering (cmp(a,b) < 0 iff a < b, 0 iff equivalent).
func New[K any, V any](cmp func(K, K) int) *Tree[K, V] {
	t := &Tree[K, V]{sentinel: newSentinel[K, V](), cmp: cmp}
	t.begin = t.sentinel
	return t
}

// wrap builds a Tree around an already-assembled bare subtree (used by
// Union/Intersection/Difference, which build their result via join
// without ever going through Insert).
func wrap[K any, V any](root *node[K, V], cmp func(K, K) int) *Tree[K, V] {
	t := New[K, V](cmp)
	t.sentinel.left = root
	if root != nil {
		root.parent = t.sentinel
		t.begin = leftmost(root)
	}
	return t
}

func (t *Tree[K, V]) root() *node[K, V] { return t.sentinel.left }

// Len returns the number of elements in O(1), using the size
// augmentation maintained alongside height.
func (t *Tree[K, V]) Len() int { return size(t.root()) }

// Empty reports whether the tree has no elements.
func (t *Tree[K, V]) Empty() bool { return t.root() == nil }

// Clear removes every element.
func (t *Tree[K, V]) Clear() {
	t.sentinel.left = nil
	t.begin = t.sentinel
}

// KeyCompare returns the comparator this tree was constructed with.
func (t *Tree[K, V]) KeyCompare() func(K, K) int { return t.cmp }

// Begin returns an iterator to the minimum element, or End() if empty.
func (t *Tree[K, V]) Begin() Iterator[K, V] { return Iterator[K, V]{t: t, n: t.begin} }

// End returns the sentinel past-the-end iterator.
func (t *Tree[K, V]) End() Iterator[K, V] { return Iterator[K, V]{t: t, n: t.sentinel} }

// RBegin returns a reverse iterator to the maximum element.
func (t *Tree[K, V]) RBegin() ReverseIterator[K, V] { return ReverseIterator[K, V]{it: t.End()} }

// REnd returns the reverse past-the-end iterator.
func (t *Tree[K, V]) REnd() ReverseIterator[K, V] { return ReverseIterator[K, V]{it: t.Begin()} }

// LowerBound returns an iterator to the first element not less than k.
func (t *Tree[K, V]) LowerBound(k K) Iterator[K, V] {
	n := t.root()
	res := t.sentinel
	for n != nil {
		if t.cmp(k, n.key) <= 0 {
			res = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return Iterator[K, V]{t: t, n: res}
}

// UpperBound returns an iterator to the first element strictly
// greater than k.
func (t *Tree[K, V]) UpperBound(k K) Iterator[K, V] {
	n := t.root()
	res := t.sentinel
	for n != nil {
		if t.cmp(k, n.key) < 0 {
			res = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return Iterator[K, V]{t: t, n: res}
}

// Find returns an iterator to the element with key k, or End() if
// absent.
func (t *Tree[K, V]) Find(k K) Iterator[K, V] {
	it := t.LowerBound(k)
	if it.n != t.sentinel && t.cmp(k, it.n.key) == 0 {
		return it
	}
	return t.End()
}

// Contains reports whether k is present.
func (t *Tree[K, V]) Contains(k K) bool { return t.Find(k).Valid() }

// insertNode descends from n looking for k's slot, inserting a new
// node holding (k, v) if absent. It returns the new subtree root, the
// node at k (new or pre-existing), and whether an insertion happened.
func insertNode[K any, V any](n *node[K, V], k K, v V, cmp func(K, K) int) (*node[K, V], *node[K, V], bool) {
	if n == nil {
		nn := newNode(k, v)
		return nn, nn, true
	}
	c := cmp(k, n.key)
	switch {
	case c < 0:
		left, hit, ok := insertNode(n.left, k, v, cmp)
		n.left = left
		left.parent = n
		if !ok {
			return n, hit, false
		}
		return rebalance(n), hit, true
	case c > 0:
		right, hit, ok := insertNode(n.right, k, v, cmp)
		n.right = right
		right.parent = n
		if !ok {
			return n, hit, false
		}
		return rebalance(n), hit, true
	default:
		return n, n, false
	}
}

// Insert adds (k, v) if k is absent, returning (iterator-to-existing,
// false) otherwise. Never invalidates existing iterators.
func (t *Tree[K, V]) Insert(k K, v V) (Iterator[K, V], bool) {
	newRoot, hit, inserted := insertNode(t.root(), k, v, t.cmp)
	t.sentinel.left = newRoot
	newRoot.parent = t.sentinel
	if inserted {
		if t.begin == t.sentinel || t.cmp(k, t.begin.key) < 0 {
			t.begin = hit
		}
	}
	return Iterator[K, V]{t: t, n: hit}, inserted
}

// InsertHint behaves like Insert, but first checks whether hint is
// adjacent to k's correct position (hint's predecessor < k <= hint, or
// hint <= k < hint's successor); a valid hint skips the descent from
// the root. The new node is still linked under the hint's neighbour
// and every ancestor up to the root is rebalanced, so each insertion
// costs O(log n), sorted input included.
func (t *Tree[K, V]) InsertHint(hint Iterator[K, V], k K, v V) (Iterator[K, V], bool) {
	if hint.n == nil || hint.n == t.sentinel {
		if t.begin != t.sentinel && t.cmp(k, t.begin.key) < 0 {
			return t.insertAsLeftmost(k, v)
		}
		return t.Insert(k, v)
	}
	if t.cmp(k, hint.n.key) == 0 {
		return hint, false
	}
	if t.cmp(k, hint.n.key) < 0 {
		p := prev(hint.n, t.sentinel)
		if p == t.sentinel || t.cmp(p.key, k) < 0 {
			return t.insertBefore(hint.n, k, v)
		}
	} else {
		nx := next(hint.n, t.sentinel)
		if nx == t.sentinel || t.cmp(k, nx.key) < 0 {
			return t.insertAfter(hint.n, k, v)
		}
	}
	return t.Insert(k, v)
}

func (t *Tree[K, V]) insertAsLeftmost(k K, v V) (Iterator[K, V], bool) {
	if t.begin == t.sentinel {
		return t.Insert(k, v)
	}
	return t.insertBefore(t.begin, k, v)
}

// insertBefore attaches a new node holding (k,v) as the in-order
// predecessor slot of at: at's left child if free, else the rightmost
// descendant of at's left subtree.
func (t *Tree[K, V]) insertBefore(at *node[K, V], k K, v V) (Iterator[K, V], bool) {
	nn := newNode(k, v)
	var parent *node[K, V]
	if at.left == nil {
		parent = at
		at.left = nn
	} else {
		parent = rightmost(at.left)
		parent.right = nn
	}
	nn.parent = parent
	t.rebalanceUp(parent)
	if t.begin == t.sentinel || t.cmp(k, t.begin.key) < 0 {
		t.begin = nn
	}
	return Iterator[K, V]{t: t, n: nn}, true
}

func (t *Tree[K, V]) insertAfter(at *node[K, V], k K, v V) (Iterator[K, V], bool) {
	nn := newNode(k, v)
	var parent *node[K, V]
	if at.right == nil {
		parent = at
		at.right = nn
	} else {
		parent = leftmost(at.right)
		parent.left = nn
	}
	nn.parent = parent
	t.rebalanceUp(parent)
	return Iterator[K, V]{t: t, n: nn}, true
}

// rebalanceUp walks from n up to the root, recomputing height/size and
// rotating as needed at each level, re-linking the (possibly new)
// subtree root into its parent's child slot at every step.
func (t *Tree[K, V]) rebalanceUp(n *node[K, V]) {
	for n != nil && n != t.sentinel {
		parent := n.parent
		isLeft := parent != t.sentinel && parent.left == n
		newRoot := rebalance(n)
		newRoot.parent = parent
		if parent == t.sentinel {
			t.sentinel.left = newRoot
		} else if isLeft {
			parent.left = newRoot
		} else {
			parent.right = newRoot
		}
		n = parent
	}
}

func (t *Tree[K, V]) transplant(u, v *node[K, V]) {
	p := u.parent
	if p == t.sentinel {
		t.sentinel.left = v
	} else if p.left == u {
		p.left = v
	} else {
		p.right = v
	}
	if v != nil {
		v.parent = p
	}
}

// EraseKey removes the element with key k, if present, returning the
// number removed (0 or 1).
func (t *Tree[K, V]) EraseKey(k K) int {
	it := t.Find(k)
	if !it.Valid() {
		return 0
	}
	t.EraseIter(it)
	return 1
}

// EraseIter removes the element at it and returns an iterator to its
// in-order successor. Invalidates only the iterator to the erased
// element (spec.md §6); z's node object is discarded, while the
// successor used to plug the hole left by a two-child deletion keeps
// its own identity and key/value, so any other live iterator remains
// valid.
func (t *Tree[K, V]) EraseIter(it Iterator[K, V]) Iterator[K, V] {
	z := it.n
	succIt := it.Next()
	wasBegin := z == t.begin

	var rebalanceFrom *node[K, V]
	switch {
	case z.left == nil:
		rebalanceFrom = z.parent
		t.transplant(z, z.right)
	case z.right == nil:
		rebalanceFrom = z.parent
		t.transplant(z, z.left)
	default:
		y := leftmost(z.right)
		if y.parent == z {
			rebalanceFrom = y
		} else {
			rebalanceFrom = y.parent
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
	}

	if rebalanceFrom != nil {
		t.rebalanceUp(rebalanceFrom)
	}

	if wasBegin {
		t.begin = succIt.n
	}
	z.left, z.right, z.parent = nil, nil, nil
	return succIt
}

// EraseRange removes every element in [first, last).
func (t *Tree[K, V]) EraseRange(first, last Iterator[K, V]) {
	for first.n != last.n {
		first = t.EraseIter(first)
	}
}

// Clone returns a deep, independent copy of t.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	return wrap[K, V](cloneSubtree(t.root()), t.cmp)
}
