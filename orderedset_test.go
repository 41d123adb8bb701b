package ordcol

import "testing"

func TestOrderedSetAddRemove(t *testing.T) {
	s := NewOrderedSet[int](intCmp)
	if !s.Add(1) {
		t.Fatalf("first Add should return true")
	}
	if s.Add(1) {
		t.Fatalf("duplicate Add should return false")
	}
	if s.Len() != 1 {
		t.Fatalf("expected length 1, got %d", s.Len())
	}
	if !s.Remove(1) {
		t.Fatalf("Remove should report removal of existing element")
	}
	if s.Remove(1) {
		t.Fatalf("second Remove of the same element should report false")
	}
}

func TestOrderedSetToSliceIsSorted(t *testing.T) {
	s := NewOrderedSetFrom[int](intCmp, 5, 1, 4, 2, 3, 3, 3)
	got := s.ToSlice()
	want := []int{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("expected %d unique elements, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("mismatch at %d: got %d want %d", i, got[i], want[i])
		}
	}
}

func TestOrderedSetSwap(t *testing.T) {
	a := NewOrderedSetFrom[int](intCmp, 1, 2)
	b := NewOrderedSetFrom[int](intCmp, 3, 4, 5)

	a.Swap(b)

	if a.Len() != 3 || a.Has(1) || !a.Has(3) {
		t.Fatalf("expected a to hold b's elements after Swap, got %v", a.ToSlice())
	}
	if b.Len() != 2 || !b.Has(1) || b.Has(3) {
		t.Fatalf("expected b to hold a's elements after Swap, got %v", b.ToSlice())
	}
}

func TestSetOpsViaBulkFunctions(t *testing.T) {
	a := NewOrderedSetFrom[int](intCmp, 1, 2, 3, 4)
	b := NewOrderedSetFrom[int](intCmp, 3, 4, 5, 6)

	u := UnionSet(a, b)
	if u.Len() != 6 {
		t.Fatalf("expected union of size 6, got %d", u.Len())
	}

	i := IntersectionSet(a, b)
	if got := i.ToSlice(); len(got) != 2 || got[0] != 3 || got[1] != 4 {
		t.Fatalf("expected intersection {3,4}, got %v", got)
	}

	d := DifferenceSet(a, b)
	if got := d.ToSlice(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("expected difference {1,2}, got %v", got)
	}
}
