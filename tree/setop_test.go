package tree

import (
	"context"
	"testing"

	"github.com/orizon-lang/ordcol/executor"
)

func buildFromRange(lo, hi int) *Tree[int, int] {
	tr := New[int, int](intCmp)
	for i := lo; i < hi; i++ {
		tr.Insert(i, i)
	}
	return tr
}

func keysOf(tr *Tree[int, int]) []int {
	var out []int
	for it := tr.Begin(); it.Valid(); it = it.Next() {
		out = append(out, it.Key())
	}
	return out
}

func sliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestUnionIntersectionDifference(t *testing.T) {
	a := buildFromRange(0, 10)
	b := buildFromRange(5, 15)

	u := Union[int, int](a, b, nil, nil)
	if want := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}; !sliceEqual(keysOf(u), want) {
		t.Fatalf("Union got %v want %v", keysOf(u), want)
	}
	checkAVL[int, int](t, u.root())

	i := Intersection[int, int](a, b, nil, nil)
	if want := []int{5, 6, 7, 8, 9}; !sliceEqual(keysOf(i), want) {
		t.Fatalf("Intersection got %v want %v", keysOf(i), want)
	}
	checkAVL[int, int](t, i.root())

	d := Difference[int, int](a, b, nil)
	if want := []int{0, 1, 2, 3, 4}; !sliceEqual(keysOf(d), want) {
		t.Fatalf("Difference got %v want %v", keysOf(d), want)
	}
	checkAVL[int, int](t, d.root())
}

func TestUnionValueConflictBWins(t *testing.T) {
	a := New[int, string](intCmp)
	a.Insert(1, "a")
	b := New[int, string](intCmp)
	b.Insert(1, "b")
	u := Union[int, string](a, b, nil, nil)
	it := u.Find(1)
	if !it.Valid() || it.Value() != "b" {
		t.Fatalf("expected b's value to win on key collision with a nil resolver")
	}
}

func TestUnionCustomResolver(t *testing.T) {
	a := New[int, string](intCmp)
	a.Insert(1, "a")
	a.Insert(2, "b")
	b := New[int, string](intCmp)
	b.Insert(2, "X")
	b.Insert(3, "Y")

	pickSecond := func(_, second string) string { return second }
	u := Union[int, string](a, b, pickSecond, nil)
	want := map[int]string{1: "a", 2: "X", 3: "Y"}
	for k, v := range want {
		it := u.Find(k)
		if !it.Valid() || it.Value() != v {
			t.Fatalf("key %d: got %v want %v", k, it.Value(), v)
		}
	}
	if u.Len() != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), u.Len())
	}
}

func TestIntersectionCustomResolver(t *testing.T) {
	a := New[int, string](intCmp)
	a.Insert(1, "a")
	a.Insert(2, "b")
	b := New[int, string](intCmp)
	b.Insert(2, "X")
	b.Insert(3, "Y")

	pickFirst := func(first, _ string) string { return first }
	i := Intersection[int, string](a, b, pickFirst, nil)
	it := i.Find(2)
	if !it.Valid() || it.Value() != "b" {
		t.Fatalf("expected first's value \"b\" to survive, got %v", it.Value())
	}
	if i.Len() != 1 {
		t.Fatalf("expected a single shared key, got %d", i.Len())
	}
}

func TestSetOpsWithDisjointOperands(t *testing.T) {
	a := buildFromRange(0, 5)
	b := buildFromRange(100, 105)
	if !sliceEqual(keysOf(Intersection[int, int](a, b, nil, nil)), nil) {
		t.Fatalf("disjoint intersection should be empty")
	}
	want := append(keysOf(a), keysOf(b)...)
	if !sliceEqual(keysOf(Union[int, int](a, b, nil, nil)), want) {
		t.Fatalf("disjoint union mismatch")
	}
}

func TestSetOpsWithEmptyOperand(t *testing.T) {
	a := buildFromRange(0, 5)
	empty := New[int, int](intCmp)
	if !sliceEqual(keysOf(Union[int, int](a, empty, nil, nil)), keysOf(a)) {
		t.Fatalf("union with empty should equal the non-empty operand")
	}
	if !sliceEqual(keysOf(Intersection[int, int](a, empty, nil, nil)), nil) {
		t.Fatalf("intersection with empty should be empty")
	}
	if !sliceEqual(keysOf(Difference[int, int](a, empty, nil)), keysOf(a)) {
		t.Fatalf("difference from empty should equal a")
	}
}

func TestParallelAndSequentialSetOpsAgree(t *testing.T) {
	a := buildFromRange(0, 5000)
	b := buildFromRange(2500, 7500)

	pool := executor.New(context.Background(), 4)
	seqUnion := Union[int, int](a, b, nil, nil)
	parUnion := Union[int, int](a, b, nil, pool)
	if err := pool.Wait(); err != nil {
		t.Fatalf("pool wait: %v", err)
	}
	if !sliceEqual(keysOf(seqUnion), keysOf(parUnion)) {
		t.Fatalf("parallel union disagrees with sequential union")
	}
	checkAVL[int, int](t, parUnion.root())
}

// TestParallelUnionManyTimesUnderRace exercises the submit-then-wait
// path in setop repeatedly; under `go test -race` any unsynchronized
// read of the goroutine-computed left subtree would be flagged.
func TestParallelUnionManyTimesUnderRace(t *testing.T) {
	pool := executor.New(context.Background(), 4)
	for round := 0; round < 20; round++ {
		a := buildFromRange(0, 4000)
		b := buildFromRange(1000, 6000)
		u := Union[int, int](a, b, nil, pool)
		want := append(keysOf(buildFromRange(0, 1000)), keysOf(buildFromRange(1000, 6000))...)
		if !sliceEqual(keysOf(u), want) {
			t.Fatalf("round %d: parallel union result diverged", round)
		}
	}
	if err := pool.Wait(); err != nil {
		t.Fatalf("pool wait: %v", err)
	}
}

func TestSplitJoinRoundTrip(t *testing.T) {
	tr := buildFromRange(0, 100)
	left, hit, right := split(tr.root(), 50, intCmp)
	if hit == nil || hit.key != 50 {
		t.Fatalf("split should find key 50")
	}
	var leftKeys, rightKeys []int
	var collect func(n *node[int, int], out *[]int)
	collect = func(n *node[int, int], out *[]int) {
		if n == nil {
			return
		}
		collect(n.left, out)
		*out = append(*out, n.key)
		collect(n.right, out)
	}
	collect(left, &leftKeys)
	collect(right, &rightKeys)
	for _, k := range leftKeys {
		if k >= 50 {
			t.Fatalf("left partition has key >= 50: %d", k)
		}
	}
	for _, k := range rightKeys {
		if k <= 50 {
			t.Fatalf("right partition has key <= 50: %d", k)
		}
	}

	rejoined := join(left, hit, right)
	var all []int
	collect(rejoined, &all)
	for i, k := range all {
		if k != i {
			t.Fatalf("rejoined tree lost ordering at %d: got %d", i, k)
		}
	}
	checkAVL[int, int](t, rejoined)
}
