package tree

// join assembles a new subtree holding everything in l, then m, then r
// (l < m < r must already hold), consuming m as the splice point. It
// is height-driven: whichever side is taller, descend along its spine
// until a subtree of comparable height to the other side is found,
// splice m in there, and rebalance back up — the same approach as the
// AVL join in original_source/src/tree/avl_tree.h.
func join[K any, V any](l *node[K, V], m *node[K, V], r *node[K, V]) *node[K, V] {
	m = detach(m)
	switch {
	case l == nil && r == nil:
		return m
	case l == nil:
		return insertLeftmost(r, m)
	case r == nil:
		return insertRightmost(l, m)
	}

	lh, rh := height(l), height(r)
	switch {
	case lh > rh+1:
		newRight := joinRightSpine(l, m, r, int(lh)-int(rh))
		return newRight
	case rh > lh+1:
		newLeft := joinLeftSpine(l, m, r, int(rh)-int(lh))
		return newLeft
	default:
		m.left, m.right = l, r
		l.parent, r.parent = m, m
		updateMeta(m)
		return m
	}
}

// joinRightSpine handles the l-taller case: descend l's right spine
// until a node whose height is within one of r's, splice (that
// subtree, m, r) there, then rebalance upward through l.
func joinRightSpine[K any, V any](l *node[K, V], m *node[K, V], r *node[K, V], _ int) *node[K, V] {
	type frame struct {
		n      *node[K, V]
		isLeft bool
	}
	var stack []frame
	cur := l
	for height(cur) > height(r)+1 {
		stack = append(stack, frame{cur, false})
		cur = cur.right
	}
	spliced := join(cur, m, r)
	for i := len(stack) - 1; i >= 0; i-- {
		p := stack[i].n
		p.right = spliced
		spliced.parent = p
		spliced = rebalance(p)
	}
	spliced.parent = nil
	return spliced
}

// joinLeftSpine mirrors joinRightSpine for the r-taller case.
func joinLeftSpine[K any, V any](l *node[K, V], m *node[K, V], r *node[K, V], _ int) *node[K, V] {
	type frame struct {
		n *node[K, V]
	}
	var stack []frame
	cur := r
	for height(cur) > height(l)+1 {
		stack = append(stack, frame{cur})
		cur = cur.left
	}
	spliced := join(l, m, cur)
	for i := len(stack) - 1; i >= 0; i-- {
		p := stack[i].n
		p.left = spliced
		spliced.parent = p
		spliced = rebalance(p)
	}
	spliced.parent = nil
	return spliced
}

func insertLeftmost[K any, V any](n *node[K, V], m *node[K, V]) *node[K, V] {
	if n == nil {
		return m
	}
	n.left = insertLeftmost(n.left, m)
	n.left.parent = n
	return rebalance(n)
}

func insertRightmost[K any, V any](n *node[K, V], m *node[K, V]) *node[K, V] {
	if n == nil {
		return m
	}
	n.right = insertRightmost(n.right, m)
	n.right.parent = n
	return rebalance(n)
}

// join2 concatenates l and r with no middle element, by pulling the
// rightmost node out of l (or leftmost of r, if l is empty) to serve
// as the splice point.
func join2[K any, V any](l, r *node[K, V]) *node[K, V] {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	lRest, m := removeMax(l)
	return join(lRest, m, r)
}

// removeMax detaches and returns the maximum-key node of the subtree
// rooted at n (n must be non-nil), along with the rebalanced subtree
// that remains. Recursive rather than parent-pointer-walking, so every
// step is a plain "recurse right, rebalance on the way back up" — the
// same shape as a normal AVL erase but specialized to the known-no-
// right-child case and without needing a sentinel.
func removeMax[K any, V any](n *node[K, V]) (*node[K, V], *node[K, V]) {
	if n.right == nil {
		left := n.left
		if left != nil {
			left.parent = nil
		}
		return left, detach(n)
	}
	rest, m := removeMax(n.right)
	n.right = rest
	if rest != nil {
		rest.parent = n
	}
	return rebalance(n), m
}

// split partitions the subtree rooted at n into (left, hit, right)
// where left holds every key < k, right holds every key > k, and hit
// is the node equal to k (nil if absent). Each recursive call consumes
// one node as a join splice point, yielding the same O(log n) bound as
// original_source/src/tree/binary_tree_base.h's split.
func split[K any, V any](n *node[K, V], k K, cmp func(K, K) int) (*node[K, V], *node[K, V], *node[K, V]) {
	if n == nil {
		return nil, nil, nil
	}
	c := cmp(k, n.key)
	switch {
	case c == 0:
		left, right := n.left, n.right
		if left != nil {
			left.parent = nil
		}
		if right != nil {
			right.parent = nil
		}
		return left, detach(n), right
	case c < 0:
		ll, hit, lr := split(n.left, k, cmp)
		right := join(lr, n, n.right)
		return ll, hit, right
	default:
		rl, hit, rr := split(n.right, k, cmp)
		left := join(n.left, n, rl)
		return left, hit, rr
	}
}
