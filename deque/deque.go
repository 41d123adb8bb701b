package deque

import (
	"fmt"

	"github.com/orizon-lang/ordcol"
)

// Deque is a segmented double-ended queue: a growable outer array of
// chunk pointers with an active window that can extend at either end
// without copying existing elements, giving amortized O(1) push/pop at
// both ends and O(1) random access. The zero value is ready to use,
// matching the teacher's ring-buffer Deque convention
// (internal/teacherref/collections/deque.go).
type Deque[T any] struct {
	outer       []*chunk[T]
	headChunk   int
	headOffset  int
	count       int
	chunkCap    int
}

func (d *Deque[T]) ensureInit() {
	if d.chunkCap == 0 {
		d.chunkCap = chunkCapacity[T]()
	}
	if len(d.outer) == 0 {
		d.outer = make([]*chunk[T], 1)
		d.headChunk = 0
		d.headOffset = 0
	}
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int { return d.count }

// IsEmpty reports whether the deque has no elements.
func (d *Deque[T]) IsEmpty() bool { return d.count == 0 }

// Clear removes every element, discarding all chunks.
func (d *Deque[T]) Clear() {
	d.outer = nil
	d.headChunk, d.headOffset, d.count = 0, 0, 0
}

// activeSpan returns the inclusive [first, last] range of outer-array
// slots the current elements occupy, treating a single (possibly
// unallocated) slot at headChunk as the active span when empty.
func (d *Deque[T]) activeSpan() (first, last int) {
	if d.count == 0 {
		return d.headChunk, d.headChunk
	}
	lastAbs := d.headOffset + d.count - 1
	return d.headChunk, d.headChunk + lastAbs/d.chunkCap
}

// ensureRoom guarantees that the outer array has at least needBefore
// free slots before the active span and needAfter free slots after
// it, rearranging the existing outer array in place when the active
// span occupies at most a third of it (cheap: only chunk pointers
// move, not elements), otherwise allocating a new, generously sized
// outer array (spec's make_room_end "rearrange vs reallocate" choice,
// applied uniformly to both ends).
func (d *Deque[T]) ensureRoom(needBefore, needAfter int) {
	first, last := d.activeSpan()
	if first-needBefore >= 0 && last+needAfter < len(d.outer) {
		return
	}
	active := last - first + 1
	required := active + needBefore + needAfter
	if required*3 <= len(d.outer) {
		d.rearrange(first, last)
	} else {
		d.reallocate(first, last, required)
	}
}

func (d *Deque[T]) rearrange(first, last int) {
	active := last - first + 1
	newFirst := (len(d.outer) - active) / 2
	delta := newFirst - first
	if delta == 0 {
		return
	}
	if delta > 0 {
		for i := last; i >= first; i-- {
			d.outer[i+delta] = d.outer[i]
			d.outer[i] = nil
		}
	} else {
		for i := first; i <= last; i++ {
			d.outer[i+delta] = d.outer[i]
			d.outer[i] = nil
		}
	}
	d.headChunk += delta
}

func (d *Deque[T]) reallocate(first, last, required int) {
	active := last - first + 1
	newCap := 3*required + 2
	newOuter := make([]*chunk[T], newCap)
	newFirst := (newCap - active) / 2
	copy(newOuter[newFirst:newFirst+active], d.outer[first:last+1])
	d.headChunk = newFirst + (d.headChunk - first)
	d.outer = newOuter
}

func (d *Deque[T]) locate(absoluteIndex int) (chunkIdx, offset int) {
	chunkIdx = d.headChunk + (d.headOffset+absoluteIndex)/d.chunkCap
	offset = (d.headOffset + absoluteIndex) % d.chunkCap
	return
}

// At returns the element at position i (0-based from the front),
// panicking with ordcol.ErrOutOfRange if i is outside [0, Len()).
func (d *Deque[T]) At(i int) T {
	if i < 0 || i >= d.count {
		panic(ordcol.ErrOutOfRange(fmt.Sprintf("index %d out of range for length %d", i, d.count)))
	}
	c, o := d.locate(i)
	return d.outer[c].data[o]
}

// Set overwrites the element at position i, panicking with
// ordcol.ErrOutOfRange if i is outside [0, Len()).
func (d *Deque[T]) Set(i int, v T) {
	if i < 0 || i >= d.count {
		panic(ordcol.ErrOutOfRange(fmt.Sprintf("index %d out of range for length %d", i, d.count)))
	}
	c, o := d.locate(i)
	d.outer[c].data[o] = v
}

// Front returns the first element. ok is false when the deque is
// empty.
func (d *Deque[T]) Front() (out T, ok bool) {
	if d.count == 0 {
		return out, false
	}
	return d.outer[d.headChunk].data[d.headOffset], true
}

// Back returns the last element. ok is false when the deque is empty.
func (d *Deque[T]) Back() (out T, ok bool) {
	if d.count == 0 {
		return out, false
	}
	return d.At(d.count - 1), true
}

// PushBack appends v at the back.
func (d *Deque[T]) PushBack(v T) {
	d.ensureInit()
	absolute := d.headOffset + d.count
	chunkIdx := d.headChunk + absolute/d.chunkCap
	if chunkIdx >= len(d.outer) {
		d.ensureRoom(0, chunkIdx-len(d.outer)+1)
		chunkIdx = d.headChunk + absolute/d.chunkCap
	}
	offset := absolute % d.chunkCap
	if d.outer[chunkIdx] == nil {
		d.outer[chunkIdx] = newChunk[T](d.chunkCap)
	}
	d.outer[chunkIdx].data[offset] = v
	d.count++
}

// PushFront inserts v at the front.
func (d *Deque[T]) PushFront(v T) {
	d.ensureInit()
	if d.headOffset == 0 {
		if d.headChunk == 0 {
			d.ensureRoom(1, 0)
		}
		d.headChunk--
		d.headOffset = d.chunkCap
	}
	d.headOffset--
	if d.outer[d.headChunk] == nil {
		d.outer[d.headChunk] = newChunk[T](d.chunkCap)
	}
	d.outer[d.headChunk].data[d.headOffset] = v
	d.count++
}

// PopBack removes and returns the back element. ok is false when the
// deque is empty.
func (d *Deque[T]) PopBack() (out T, ok bool) {
	if d.count == 0 {
		return out, false
	}
	absolute := d.headOffset + d.count - 1
	chunkIdx := d.headChunk + absolute/d.chunkCap
	offset := absolute % d.chunkCap
	c := d.outer[chunkIdx]
	out = c.data[offset]
	var zero T
	c.data[offset] = zero
	if offset == 0 {
		d.outer[chunkIdx] = nil
	}
	d.count--
	return out, true
}

// PopFront removes and returns the front element. ok is false when
// the deque is empty.
func (d *Deque[T]) PopFront() (out T, ok bool) {
	if d.count == 0 {
		return out, false
	}
	c := d.outer[d.headChunk]
	out = c.data[d.headOffset]
	var zero T
	c.data[d.headOffset] = zero
	if d.headOffset+1 == d.chunkCap {
		d.outer[d.headChunk] = nil
		d.headChunk++
		d.headOffset = 0
	} else {
		d.headOffset++
	}
	d.count--
	if d.count == 0 && d.headChunk == len(d.outer) {
		// Drained past the last outer slot: step back onto it so the
		// next push starts inside the outer array.
		d.headChunk--
	}
	return out, true
}

// Insert places v at position i, shifting whichever side (front or
// back partition) is shorter. This is a deliberate simplification of
// the source's uninitialized/initialized sub-range distinction
// (original_source/src/deque/deque.h insert), which Go's lack of an
// uninitialized-vs-constructed split makes unnecessary: push the
// boundary element to make room, shift the shorter partition by one
// via Set, then overwrite the vacated slot. Still O(min(i, n-i)).
func (d *Deque[T]) Insert(i int, v T) {
	n := d.count
	switch {
	case i == n:
		d.PushBack(v)
		return
	case i == 0:
		d.PushFront(v)
		return
	case i <= n-i:
		d.PushFront(d.At(0))
		for j := 0; j < i; j++ {
			d.Set(j, d.At(j+1))
		}
		d.Set(i, v)
	default:
		d.PushBack(d.At(n - 1))
		for j := n; j > i; j-- {
			d.Set(j, d.At(j-1))
		}
		d.Set(i, v)
	}
}

// Erase removes the element at position i, shifting whichever side is
// shorter and then popping the now-duplicated boundary element.
func (d *Deque[T]) Erase(i int) {
	n := d.count
	if i <= n-1-i {
		for j := i; j >= 1; j-- {
			d.Set(j, d.At(j-1))
		}
		d.PopFront()
	} else {
		for j := i; j <= n-2; j++ {
			d.Set(j, d.At(j+1))
		}
		d.PopBack()
	}
}

// Resize grows or shrinks the deque to n elements, padding new
// trailing slots with fill or discarding from the back. It panics
// with ordcol.ErrLength if n is negative.
func (d *Deque[T]) Resize(n int, fill T) {
	if n < 0 {
		panic(ordcol.ErrLength(fmt.Sprintf("resize to negative length %d", n)))
	}
	for d.count > n {
		d.PopBack()
	}
	for d.count < n {
		d.PushBack(fill)
	}
}

// Clone returns an independent copy of d. Per the open question on
// whether a copy should preserve the source's front/back padding or
// recenter, Clone recenters: it rebuilds a fresh outer array via
// PushBack rather than mirroring the source's chunk layout, since
// nothing in this package's iterator-stability guarantees promises
// cross-copy equivalence.
func (d *Deque[T]) Clone() *Deque[T] {
	out := &Deque[T]{}
	out.ensureInit()
	for i := 0; i < d.count; i++ {
		out.PushBack(d.At(i))
	}
	return out
}

// Swap exchanges the contents of d and other in O(1).
func (d *Deque[T]) Swap(other *Deque[T]) {
	*d, *other = *other, *d
}

// ForEach iterates front to back.
func (d *Deque[T]) ForEach(fn func(T)) {
	for i := 0; i < d.count; i++ {
		fn(d.At(i))
	}
}
