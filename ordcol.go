package ordcol

import (
	"context"

	"github.com/orizon-lang/ordcol/executor"
	"github.com/orizon-lang/ordcol/tree"
)

// Option configures a bulk set operation.
type Option func(*setOpConfig)

type setOpConfig struct {
	ex       executor.Executor
	resolver any
}

// WithExecutor enables parallel dispatch for a bulk set operation on
// operands large enough to be worth it. Without this option, Union/
// Intersection/Difference always run single-threaded.
func WithExecutor(ex executor.Executor) Option {
	return func(c *setOpConfig) { c.ex = ex }
}

// WithPool is a convenience over WithExecutor that builds an
// executor.Pool bounded by parallelism (<=0 means GOMAXPROCS).
func WithPool(ctx context.Context, parallelism int) Option {
	return WithExecutor(executor.New(ctx, parallelism))
}

// WithResolver supplies the conflict resolver UnionOf/IntersectionOf
// use when a key is present in both operands; fn(a, b) receives the
// left and right values and returns the one to keep. Without this
// option, b's value wins (spec.md's union_of/intersection_of
// "resolver?" default). DifferenceOf never consults a resolver: a key
// present on both sides is always dropped.
func WithResolver[V any](fn func(a, b V) V) Option {
	return func(c *setOpConfig) { c.resolver = fn }
}

func resolve(opts []Option) *setOpConfig {
	cfg := &setOpConfig{}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

func resolverFor[V any](cfg *setOpConfig) tree.Resolver[V] {
	fn, ok := cfg.resolver.(func(V, V) V)
	if !ok {
		return nil
	}
	return tree.Resolver[V](fn)
}

// UnionOf returns a new OrderedMap holding every key present in a or
// b; on a shared key, WithResolver's function picks the surviving
// value (default: b's value wins).
func UnionOf[K any, V any](a, b *OrderedMap[K, V], opts ...Option) *OrderedMap[K, V] {
	cfg := resolve(opts)
	return &OrderedMap[K, V]{t: tree.Union(a.t, b.t, resolverFor[V](cfg), cfg.ex)}
}

// IntersectionOf returns a new OrderedMap holding every key present in
// both a and b; WithResolver's function picks the surviving value on
// the shared keys (default: b's value wins).
func IntersectionOf[K any, V any](a, b *OrderedMap[K, V], opts ...Option) *OrderedMap[K, V] {
	cfg := resolve(opts)
	return &OrderedMap[K, V]{t: tree.Intersection(a.t, b.t, resolverFor[V](cfg), cfg.ex)}
}

// DifferenceOf returns a new OrderedMap holding every key present in a
// but not in b.
func DifferenceOf[K any, V any](a, b *OrderedMap[K, V], opts ...Option) *OrderedMap[K, V] {
	cfg := resolve(opts)
	return &OrderedMap[K, V]{t: tree.Difference(a.t, b.t, cfg.ex)}
}

// UnionSet returns a new OrderedSet holding every element of a or b.
func UnionSet[T any](a, b *OrderedSet[T], opts ...Option) *OrderedSet[T] {
	cfg := resolve(opts)
	return fromTree(tree.Union(a.Tree(), b.Tree(), resolverFor[struct{}](cfg), cfg.ex))
}

// IntersectionSet returns a new OrderedSet holding every element
// common to a and b.
func IntersectionSet[T any](a, b *OrderedSet[T], opts ...Option) *OrderedSet[T] {
	cfg := resolve(opts)
	return fromTree(tree.Intersection(a.Tree(), b.Tree(), resolverFor[struct{}](cfg), cfg.ex))
}

// DifferenceSet returns a new OrderedSet holding every element of a
// not present in b.
func DifferenceSet[T any](a, b *OrderedSet[T], opts ...Option) *OrderedSet[T] {
	cfg := resolve(opts)
	return fromTree(tree.Difference(a.Tree(), b.Tree(), cfg.ex))
}
