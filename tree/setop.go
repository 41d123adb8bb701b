package tree

import (
	"sync"

	"github.com/orizon-lang/ordcol/executor"
)

// parallelThreshold is the minimum combined subtree size below which a
// set operation never bothers trying to hand work to another
// goroutine; the dispatch overhead would dwarf the work itself.
const parallelThreshold = 2048

// resolveFn decides what to keep when a key appears in one or both
// operands of a set operation: Keep false drops the pair, Keep true
// keeps a node holding the given value.
type resolveFn[K any, V any] func(k K, a, b V) (V, bool)

// Resolver picks the surviving value when a key is present in both
// operands of Union or Intersection, as spec.md's "union_of(a, b,
// resolver?)" names it. A nil Resolver keeps b's value, matching
// the existing default.
type Resolver[V any] func(a, b V) V

// resolverOrDefault wraps resolve (or the b-wins default when resolve
// is nil) as the resolveFn setop's inBoth slot expects.
func resolverOrDefault[K any, V any](resolve Resolver[V]) resolveFn[K, V] {
	if resolve == nil {
		return func(_ K, _, b V) (V, bool) { return b, true }
	}
	return func(_ K, a, b V) (V, bool) { return resolve(a, b), true }
}

// setop computes the combined tree described by present{InA,InB,InBoth}
// from a and b (both may be nil), using cmp for ordering and resolve
// to settle keys present in both. It is the single recursive engine
// behind Union/Intersection/Difference, following the divide-and-
// conquer shape of original_source/src/tree/binary_tree_base.h's
// set_operation: split b around a's root, recurse on the two halves,
// then join the (possibly filtered) pieces back together.
func setop[K any, V any](
	a, b *node[K, V],
	cmp func(K, K) int,
	inA, inB, inBoth resolveFn[K, V],
	ex executor.Executor,
) *node[K, V] {
	if a == nil {
		return filterKeep(b, inB)
	}
	if b == nil {
		return filterKeep(a, inA)
	}

	bl, hit, br := split(b, a.key, cmp)

	var left, right *node[K, V]
	combined := size(a) + size(b)
	if ex != nil && combined >= parallelThreshold {
		var wg sync.WaitGroup
		wg.Add(1)
		if err := ex.Go(func() error {
			defer wg.Done()
			left = setop(a.left, bl, cmp, inA, inB, inBoth, ex)
			return nil
		}); err != nil {
			// Pool declined the task (saturated); run it here instead,
			// undoing the Add since no goroutine will call Done.
			wg.Done()
			left = setop(a.left, bl, cmp, inA, inB, inBoth, ex)
		}
		right = setop(a.right, br, cmp, inA, inB, inBoth, ex)
		wg.Wait()
	} else {
		left = setop(a.left, bl, cmp, inA, inB, inBoth, ex)
		right = setop(a.right, br, cmp, inA, inB, inBoth, ex)
	}

	root := detach(a)
	var keepVal V
	keep := false
	if hit != nil {
		keepVal, keep = inBoth(a.key, a.val, hit.val)
	} else {
		keepVal, keep = inA(a.key, a.val, a.val)
	}
	if keep {
		root.val = keepVal
		return join(left, root, right)
	}
	return join2(left, right)
}

// filterKeep walks n applying resolve to every node (passing the node's
// own value as both operands, since filterKeep is only ever used on a
// lone operand with no counterpart), rebuilding via join2 around
// dropped nodes.
func filterKeep[K any, V any](n *node[K, V], resolve resolveFn[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	left := filterKeep(n.left, resolve)
	right := filterKeep(n.right, resolve)
	v, keep := resolve(n.key, n.val, n.val)
	root := detach(n)
	if keep {
		root.val = v
		return join(left, root, right)
	}
	return join2(left, right)
}

func keepA[K any, V any](_ K, a, _ V) (V, bool)    { return a, true }
func dropNode[K any, V any](_ K, a, _ V) (V, bool) { return a, false }

// shouldParallelize reports whether a and b are large enough combined
// to be worth offering to an Executor at all.
func shouldParallelize[K any, V any](a, b *node[K, V]) bool {
	return size(a)+size(b) >= parallelThreshold
}

// Union returns a new Tree holding every key present in a or b. When a
// key is present in both, resolve picks the surviving value; a nil
// resolve keeps b's value. a and b are left unchanged: setop runs on
// copies of their nodes, so Union, Intersection and Difference cost
// time linear in the combined size of the operands.
func Union[K any, V any](a, b *Tree[K, V], resolve Resolver[V], ex executor.Executor) *Tree[K, V] {
	cmp := a.cmp
	pool := ex
	if !shouldParallelize(a.root(), b.root()) {
		pool = nil
	}
	inBoth := resolverOrDefault[K, V](resolve)
	root := setop(cloneSubtree(a.root()), cloneSubtree(b.root()), cmp, keepA[K, V], keepA[K, V], inBoth, pool)
	return wrap[K, V](root, cmp)
}

// Intersection returns a new Tree holding every key present in both a
// and b, with resolve picking the surviving value; a nil resolve keeps
// b's value.
func Intersection[K any, V any](a, b *Tree[K, V], resolve Resolver[V], ex executor.Executor) *Tree[K, V] {
	cmp := a.cmp
	pool := ex
	if !shouldParallelize(a.root(), b.root()) {
		pool = nil
	}
	inBoth := resolverOrDefault[K, V](resolve)
	root := setop(cloneSubtree(a.root()), cloneSubtree(b.root()), cmp, dropNode[K, V], dropNode[K, V], inBoth, pool)
	return wrap[K, V](root, cmp)
}

// Difference returns a new Tree holding every key present in a but
// not in b.
func Difference[K any, V any](a, b *Tree[K, V], ex executor.Executor) *Tree[K, V] {
	cmp := a.cmp
	pool := ex
	if !shouldParallelize(a.root(), b.root()) {
		pool = nil
	}
	root := setop(cloneSubtree(a.root()), cloneSubtree(b.root()), cmp, keepA[K, V], dropNode[K, V], dropNode[K, V], pool)
	return wrap[K, V](root, cmp)
}
