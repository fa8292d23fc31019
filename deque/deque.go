// File: deque/deque.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Growable double-ended ring buffer with wrapping uint64 counters and
// power-of-two capacity. Single-threaded; hot paths validate
// preconditions at the public boundary and panic on misuse.

package deque

import (
	"iter"
	"math/bits"
	"unsafe"

	"github.com/momentics/hioload-deque/api"
)

// Ensure compile-time interface compliance.
var _ api.Deque[any] = (*Deque[any])(nil)

// NotFound is returned by IndexOfPointer for pointers that do not
// address a live element.
const NotFound = api.NotFound

// MaxCapacity is the largest capacity NormalizeCapacity will produce.
// Beyond it the masking contract (capacity-1+capacity must not
// overflow the counter width) can no longer hold on every platform.
const MaxCapacity = 1 << 62

// Panic messages. Stable so misuse reports stay greppable.
const (
	msgIndexOutOfRange  = "deque: index out of range"
	msgPopOutOfBounds   = "deque: pop count out of bounds"
	msgEmptyDeque       = "deque: empty deque"
	msgCapacityOverflow = "deque: capacity overflow"
	msgNegativeCapacity = "deque: negative capacity"
)

// Deque is a double-ended growable circular buffer.
//
// storage always holds capacity slots where capacity is 0 or a power
// of two. front and afterBack are wrapping counters; only
// afterBack-front (the element count) and their masked values (the
// physical slots) are meaningful. Slots outside the live range hold
// the zero value so the collector never sees stale references.
type Deque[T any] struct {
	storage   []T
	mask      uint64 // capacity-1; all-ones sentinel when capacity is 0
	front     uint64
	afterBack uint64
}

// New returns a deque with capacity for at least `capacity` elements
// (rounded up to a power of two; 0 allocates nothing).
func New[T any](capacity int) *Deque[T] {
	c := NormalizeCapacity(capacity)
	d := &Deque[T]{mask: uint64(c) - 1}
	if c > 0 {
		d.storage = make([]T, c)
	}
	return d
}

// Of returns a deque holding the given values in order, front first.
func Of[T any](values ...T) *Deque[T] {
	d := New[T](len(values))
	for _, v := range values {
		d.PushBack(v)
	}
	return d
}

// NormalizeCapacity maps a requested capacity to the allocation size:
// 0 stays 0, anything else rounds up to the next power of two.
// Panics on negative requests and on requests past MaxCapacity.
func NormalizeCapacity(requested int) int {
	switch {
	case requested < 0:
		panic(msgNegativeCapacity)
	case requested == 0:
		return 0
	case requested > MaxCapacity:
		panic(msgCapacityOverflow)
	}
	return 1 << bits.Len64(uint64(requested-1))
}

// Len returns the number of live elements.
func (d *Deque[T]) Len() int {
	return int(d.afterBack - d.front)
}

// Cap returns the current capacity (0 or a power of two).
func (d *Deque[T]) Cap() int {
	return len(d.storage)
}

// IsEmpty reports whether the deque holds no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.afterBack == d.front
}

// phys maps a counter to its physical slot.
func (d *Deque[T]) phys(ctr uint64) int {
	return int(ctr & d.mask)
}

// PushBack appends a value, growing if at capacity. Returns the logical
// index of the new element, always Len()-1.
func (d *Deque[T]) PushBack(v T) int {
	if d.Len() == len(d.storage) {
		d.reallocate(NormalizeCapacity(d.Len() + 1))
	}
	d.storage[d.phys(d.afterBack)] = v
	d.afterBack++
	return d.Len() - 1
}

// PushFront prepends a value, growing if at capacity. Returns the
// logical index of the new element, always 0.
func (d *Deque[T]) PushFront(v T) int {
	if d.Len() == len(d.storage) {
		d.reallocate(NormalizeCapacity(d.Len() + 1))
	}
	d.front--
	d.storage[d.phys(d.front)] = v
	return 0
}

// DropFront removes n elements from the front. Panics if n is negative
// or exceeds Len(). Dropped slots are zeroed for the collector.
func (d *Deque[T]) DropFront(n int) {
	if n < 0 || n > d.Len() {
		panic(msgPopOutOfBounds)
	}
	var zero T
	for ; n > 0; n-- {
		d.storage[d.phys(d.front)] = zero
		d.front++
	}
}

// DropBack removes n elements from the back. Panics if n is negative
// or exceeds Len().
func (d *Deque[T]) DropBack(n int) {
	if n < 0 || n > d.Len() {
		panic(msgPopOutOfBounds)
	}
	var zero T
	for ; n > 0; n-- {
		d.afterBack--
		d.storage[d.phys(d.afterBack)] = zero
	}
}

// PopFront removes and returns the front element. Panics if empty.
func (d *Deque[T]) PopFront() T {
	if d.IsEmpty() {
		panic(msgEmptyDeque)
	}
	slot := d.phys(d.front)
	v := d.storage[slot]
	var zero T
	d.storage[slot] = zero
	d.front++
	return v
}

// PopBack removes and returns the back element. Panics if empty.
func (d *Deque[T]) PopBack() T {
	if d.IsEmpty() {
		panic(msgEmptyDeque)
	}
	d.afterBack--
	slot := d.phys(d.afterBack)
	v := d.storage[slot]
	var zero T
	d.storage[slot] = zero
	return v
}

// At returns a pointer to the element at logical index i, valid until
// the next mutating call. Panics if i is out of range.
func (d *Deque[T]) At(i int) *T {
	if i < 0 || i >= d.Len() {
		panic(msgIndexOutOfRange)
	}
	return &d.storage[d.phys(d.front+uint64(i))]
}

// Set replaces the element at logical index i.
func (d *Deque[T]) Set(i int, v T) {
	*d.At(i) = v
}

// First returns a pointer to the front element. Panics if empty.
func (d *Deque[T]) First() *T {
	if d.IsEmpty() {
		panic(msgEmptyDeque)
	}
	return &d.storage[d.phys(d.front)]
}

// Last returns a pointer to the back element. Panics if empty.
func (d *Deque[T]) Last() *T {
	if d.IsEmpty() {
		panic(msgEmptyDeque)
	}
	return &d.storage[d.phys(d.afterBack-1)]
}

// ShiftToFront moves the element at logical index i into the front
// position, shifting every element before it one slot toward the back.
// O(i) element moves.
func (d *Deque[T]) ShiftToFront(i int) {
	if i < 0 || i >= d.Len() {
		panic(msgIndexOutOfRange)
	}
	pos := d.front + uint64(i)
	saved := d.storage[d.phys(pos)]
	for ; pos != d.front; pos-- {
		d.storage[d.phys(pos)] = d.storage[d.phys(pos-1)]
	}
	d.storage[d.phys(d.front)] = saved
}

// ShiftToBack moves the element at logical index i into the back
// position, shifting every element after it one slot toward the front.
// O(Len()-1-i) element moves.
func (d *Deque[T]) ShiftToBack(i int) {
	if i < 0 || i >= d.Len() {
		panic(msgIndexOutOfRange)
	}
	pos := d.front + uint64(i)
	last := d.afterBack - 1
	saved := d.storage[d.phys(pos)]
	for ; pos != last; pos++ {
		d.storage[d.phys(pos)] = d.storage[d.phys(pos+1)]
	}
	d.storage[d.phys(last)] = saved
}

// RemoveAt removes the element at logical index i by shifting the
// cheaper side: the distances to front and back are compared and the
// shorter run of elements moves to fill the gap. Ties take the front
// branch. O(min(i, Len()-1-i)).
func (d *Deque[T]) RemoveAt(i int) {
	if i < 0 || i >= d.Len() {
		panic(msgIndexOutOfRange)
	}
	if i <= d.Len()-1-i {
		d.ShiftToFront(i)
		d.DropFront(1)
	} else {
		d.ShiftToBack(i)
		d.DropBack(1)
	}
}

// RemoveFunc removes every element for which pred returns true,
// keeping the relative order of survivors. Single forward pass with a
// write cursor; vacated tail slots are zeroed. Returns the number
// removed.
//
// If pred panics mid-scan the deque stays structurally valid but an
// unspecified subset of matching elements may remain.
func (d *Deque[T]) RemoveFunc(pred func(T) bool) int {
	write := d.front
	for read := d.front; read != d.afterBack; read++ {
		v := d.storage[d.phys(read)]
		if pred(v) {
			continue
		}
		if write != read {
			d.storage[d.phys(write)] = v
		}
		write++
	}
	removed := int(d.afterBack - write)
	var zero T
	for ctr := write; ctr != d.afterBack; ctr++ {
		d.storage[d.phys(ctr)] = zero
	}
	d.afterBack = write
	return removed
}

// Reserve grows capacity so at least n elements fit without
// reallocation. Never shrinks; logical indices are preserved.
func (d *Deque[T]) Reserve(n int) {
	if c := NormalizeCapacity(n); c > len(d.storage) {
		d.reallocate(c)
	}
}

// Trim shrinks capacity to the smallest power of two >= Len().
// Idempotent once minimal.
func (d *Deque[T]) Trim() {
	if c := NormalizeCapacity(d.Len()); c < len(d.storage) {
		d.reallocate(c)
	}
}

// Reset removes all elements but retains the backing storage.
func (d *Deque[T]) Reset() {
	var zero T
	for ctr := d.front; ctr != d.afterBack; ctr++ {
		d.storage[d.phys(ctr)] = zero
	}
	d.front = 0
	d.afterBack = 0
}

// Empty removes all elements and resizes the backing storage to hold
// newCapacity elements (rounded up to a power of two; 0 frees it).
func (d *Deque[T]) Empty(newCapacity int) {
	d.Reset()
	if c := NormalizeCapacity(newCapacity); c != len(d.storage) {
		d.reallocate(c)
	}
}

// Compact ensures the live range is physically contiguous and returns
// it as a flat slice, valid until the next mutating call. Reallocates
// only if the range currently wraps the end of storage.
func (d *Deque[T]) Compact() []T {
	n := d.Len()
	if n == 0 {
		return nil
	}
	mf := d.phys(d.front)
	if mf+n <= len(d.storage) {
		return d.storage[mf : mf+n]
	}
	d.reallocate(len(d.storage))
	return d.storage[:n]
}

// Values iterates elements in logical front-to-back order. Mutating
// the deque during iteration is undefined.
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for ctr := d.front; ctr != d.afterBack; ctr++ {
			if !yield(d.storage[d.phys(ctr)]) {
				return
			}
		}
	}
}

// All iterates (logical index, element) pairs front-to-back.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for ctr := d.front; ctr != d.afterBack; ctr++ {
			if !yield(i, d.storage[d.phys(ctr)]) {
				return
			}
			i++
		}
	}
}

// IndexOfPointer maps a pointer into the backing storage to the
// logical index of the live element it addresses. Returns NotFound for
// pointers outside the storage, into dead slots, or (because every
// element shares one address) for zero-sized element types.
func (d *Deque[T]) IndexOfPointer(p *T) int {
	if p == nil || len(d.storage) == 0 {
		return NotFound
	}
	size := unsafe.Sizeof(*p)
	if size == 0 {
		return NotFound
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(d.storage)))
	addr := uintptr(unsafe.Pointer(p))
	if addr < base {
		return NotFound
	}
	off := addr - base
	if off%size != 0 {
		return NotFound
	}
	slot := uint64(off / size)
	if slot >= uint64(len(d.storage)) {
		return NotFound
	}
	logical := (slot - d.front) & d.mask
	if logical >= uint64(d.Len()) {
		return NotFound
	}
	return int(logical)
}

// reallocate swaps the backing storage for one of newCapacity slots,
// moving the live range to physical offset 0 in logical order. The
// range may wrap the old storage end, in which case it is copied as
// two spans. newCapacity must be normalized and >= Len().
func (d *Deque[T]) reallocate(newCapacity int) {
	n := d.Len()
	var ns []T
	if newCapacity > 0 {
		ns = make([]T, newCapacity)
	}
	if n > 0 {
		mf := d.phys(d.front)
		first := min(n, len(d.storage)-mf)
		copy(ns, d.storage[mf:mf+first])
		copy(ns[first:], d.storage[:n-first])
	}
	d.storage = ns
	d.mask = uint64(newCapacity) - 1 // all-ones sentinel when newCapacity is 0
	d.front = 0
	d.afterBack = uint64(n)
}
