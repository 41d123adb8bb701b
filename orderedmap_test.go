package ordcol

import (
	"sort"
	"testing"
)

func intCmp(a, b int) int { return a - b }

func TestOrderedMapPutGetDelete(t *testing.T) {
	m := NewOrderedMap[int, string](intCmp)
	if _, replaced := m.Put(1, "one"); replaced {
		t.Fatalf("first Put should not report a replacement")
	}
	if prev, replaced := m.Put(1, "ONE"); !replaced || prev != "one" {
		t.Fatalf("second Put should report replacement of %q, got %q replaced=%v", "one", prev, replaced)
	}
	v, ok := m.Get(1)
	if !ok || v != "ONE" {
		t.Fatalf("expected updated value ONE, got %q ok=%v", v, ok)
	}
	if _, ok := m.Get(2); ok {
		t.Fatalf("key 2 should not exist")
	}
	prev, existed := m.Delete(1)
	if !existed || prev != "ONE" {
		t.Fatalf("Delete should report the removed value")
	}
	if m.Len() != 0 {
		t.Fatalf("expected empty map after delete")
	}
}

func TestOrderedMapKeysAreSorted(t *testing.T) {
	m := NewOrderedMap[int, int](intCmp)
	for _, k := range []int{5, 1, 4, 2, 3} {
		m.Put(k, k*10)
	}
	keys := m.Keys()
	if !sort.IntsAreSorted(keys) {
		t.Fatalf("expected sorted keys, got %v", keys)
	}
}

func TestOrderedMapGetOrInsert(t *testing.T) {
	m := NewOrderedMap[string, int](func(a, b string) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
	calls := 0
	fn := func() int { calls++; return 42 }
	v := m.GetOrInsert("a", fn)
	if v != 42 || calls != 1 {
		t.Fatalf("expected fn to be called once, got v=%d calls=%d", v, calls)
	}
	v = m.GetOrInsert("a", fn)
	if v != 42 || calls != 1 {
		t.Fatalf("expected fn not called again for existing key, calls=%d", calls)
	}
}

func TestOrderedMapClone(t *testing.T) {
	m := NewOrderedMap[int, int](intCmp)
	m.Put(1, 1)
	m.Put(2, 2)
	clone := m.Clone()
	clone.Put(3, 3)
	if m.Has(3) {
		t.Fatalf("mutating clone should not affect original")
	}
	if !clone.Has(1) || !clone.Has(2) {
		t.Fatalf("clone should retain original entries")
	}
}

func TestOrderedMapAt(t *testing.T) {
	m := NewOrderedMap[int, string](intCmp)
	m.Put(1, "one")
	if got := m.At(1); got != "one" {
		t.Fatalf("At(1) = %q, want %q", got, "one")
	}
}

func TestOrderedMapAtPanicsOnMissingKey(t *testing.T) {
	m := NewOrderedMap[int, string](intCmp)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected At on a missing key to panic")
		}
		if _, ok := r.(*Error); !ok {
			t.Fatalf("expected panic value to be *Error, got %T", r)
		}
	}()
	m.At(42)
}

func TestOrderedMapSwap(t *testing.T) {
	a := NewOrderedMap[int, string](intCmp)
	a.Put(1, "a")
	b := NewOrderedMap[int, string](intCmp)
	b.Put(2, "b")

	a.Swap(b)

	if !a.Has(2) || a.Has(1) {
		t.Fatalf("expected a to hold b's entries after Swap")
	}
	if !b.Has(1) || b.Has(2) {
		t.Fatalf("expected b to hold a's entries after Swap")
	}
}

func TestUnionOfWithResolver(t *testing.T) {
	a := NewOrderedMap[int, string](intCmp)
	a.Put(1, "a")
	a.Put(2, "b")
	b := NewOrderedMap[int, string](intCmp)
	b.Put(2, "X")
	b.Put(3, "Y")

	pickSecond := func(_, second string) string { return second }
	u := UnionOf(a, b, WithResolver(pickSecond))
	want := map[int]string{1: "a", 2: "X", 3: "Y"}
	for k, v := range want {
		got, ok := u.Get(k)
		if !ok || got != v {
			t.Fatalf("key %d: got %v want %v", k, got, v)
		}
	}
	if u.Len() != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), u.Len())
	}
}

func TestUnionOfDefaultResolverKeepsBsValue(t *testing.T) {
	a := NewOrderedMap[int, string](intCmp)
	a.Put(1, "a")
	b := NewOrderedMap[int, string](intCmp)
	b.Put(1, "b")

	u := UnionOf(a, b)
	got, ok := u.Get(1)
	if !ok || got != "b" {
		t.Fatalf("expected default resolver to keep b's value, got %v", got)
	}
}
