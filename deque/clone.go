// File: deque/clone.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ownership transfer, deep copy and equality. Go has no copy or move
// constructors; Clone and TakeFrom are their explicit counterparts.

package deque

// Clone returns a deep copy with independent storage of the same
// capacity. The copy is linearized: its front element sits at physical
// offset 0 regardless of the source's rotation.
func (d *Deque[T]) Clone() *Deque[T] {
	c := New[T](0)
	if d.storage == nil {
		return c
	}
	n := d.Len()
	c.storage = make([]T, len(d.storage))
	c.mask = d.mask
	c.afterBack = uint64(n)
	if n > 0 {
		mf := d.phys(d.front)
		first := min(n, len(d.storage)-mf)
		copy(c.storage, d.storage[mf:mf+first])
		copy(c.storage[first:], d.storage[:n-first])
	}
	return c
}

// TakeFrom transfers src's storage and contents into d, discarding
// whatever d held. src is left empty with capacity 0. A self-transfer
// is a no-op.
func (d *Deque[T]) TakeFrom(src *Deque[T]) {
	if d == src {
		return
	}
	d.storage = src.storage
	d.mask = src.mask
	d.front = src.front
	d.afterBack = src.afterBack
	src.storage = nil
	src.mask = ^uint64(0)
	src.front = 0
	src.afterBack = 0
}

// Equal reports whether a and b hold the same elements in the same
// logical order. Capacity and physical rotation do not participate.
func Equal[T comparable](a, b *Deque[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if *a.At(i) != *b.At(i) {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *Deque[T], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !eq(*a.At(i), *b.At(i)) {
			return false
		}
	}
	return true
}

// Remove removes every element equal to value and returns the number
// removed.
func Remove[T comparable](d *Deque[T], value T) int {
	return d.RemoveFunc(func(v T) bool { return v == value })
}
