// File: api/deque.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contract for the growable double-ended ring buffer.

package api

import "iter"

// Deque is a double-ended, index-addressable growable ring buffer.
//
// Implementations are single-threaded: callers must serialize all
// access (reads included) when sharing an instance across goroutines.
// Precondition violations panic; there is no soft error path.
type Deque[T any] interface {
	// Len returns the number of live elements.
	Len() int
	// Cap returns the current capacity (0 or a power of two).
	Cap() int
	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool

	// PushBack appends a value and returns its logical index (Len()-1).
	PushBack(v T) int
	// PushFront prepends a value and returns its logical index (always 0).
	PushFront(v T) int
	// PopBack removes and returns the last element. Panics if empty.
	PopBack() T
	// PopFront removes and returns the first element. Panics if empty.
	PopFront() T
	// DropBack removes n elements from the back. Panics if n > Len().
	DropBack(n int)
	// DropFront removes n elements from the front. Panics if n > Len().
	DropFront(n int)

	// At returns a pointer to the element at logical index i,
	// valid until the next mutating call. Panics if out of range.
	At(i int) *T
	// Set replaces the element at logical index i.
	Set(i int, v T)
	// First returns a pointer to the front element. Panics if empty.
	First() *T
	// Last returns a pointer to the back element. Panics if empty.
	Last() *T

	// RemoveAt removes the element at logical index i, shifting the
	// cheaper of the two sides to fill the gap.
	RemoveAt(i int)
	// RemoveFunc removes every element for which pred returns true,
	// preserving the relative order of kept elements. Returns the
	// number removed.
	RemoveFunc(pred func(T) bool) int

	// Reserve grows capacity to hold at least n elements. Never shrinks.
	Reserve(n int)
	// Trim shrinks capacity to the smallest power of two >= Len().
	Trim()
	// Reset removes all elements, retaining the backing storage.
	Reset()
	// Empty removes all elements and resizes storage to hold newCapacity
	// elements (0 frees the backing storage).
	Empty(newCapacity int)
	// Compact linearizes the live range and returns it as a flat slice,
	// valid until the next mutating call.
	Compact() []T

	// Values iterates elements in logical front-to-back order.
	Values() iter.Seq[T]
	// All iterates (logical index, element) pairs front-to-back.
	All() iter.Seq2[int, T]

	// IndexOfPointer maps a pointer into the backing storage to the
	// logical index of the live element it addresses, or NotFound.
	IndexOfPointer(p *T) int
}

// NotFound is returned by IndexOfPointer for pointers that do not
// address a live element.
const NotFound = -1
