// File: internal/concurrency/ring.go
// Package concurrency implements the bounded lock-free ring.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingBuffer is a fixed-capacity circular buffer with atomic head and
// tail counters, padded to prevent false sharing. Safe for one
// producer and one consumer goroutine. Implements api.Ring.
//
// Unlike deque.Deque it never grows: the dispatch layer uses it as the
// bounded fast path and falls back to dropping or backpressure when
// full.

package concurrency

import (
	"sync/atomic"

	"github.com/momentics/hioload-deque/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*RingBuffer[any])(nil)

// RingBuffer is a lock-free ring buffer (single-producer,
// single-consumer safe).
type RingBuffer[T any] struct {
	data []T
	mask uint64
	head atomic.Uint64
	_    [64]byte // Padding for hot/cold separation
	tail atomic.Uint64
	_    [64]byte // Padding to separate tail from other data
}

// NewRingBuffer allocates a ring buffer holding at least size items,
// rounded up to a power of two (minimum 2).
func NewRingBuffer[T any](size uint64) *RingBuffer[T] {
	if size < 2 {
		size = 2
	}
	if size&(size-1) != 0 {
		n := size - 1
		n |= n >> 1
		n |= n >> 2
		n |= n >> 4
		n |= n >> 8
		n |= n >> 16
		n |= n >> 32
		size = n + 1
	}
	return &RingBuffer[T]{
		data: make([]T, size),
		mask: size - 1,
	}
}

// Enqueue adds item; returns false if full.
func (r *RingBuffer[T]) Enqueue(item T) bool {
	head := r.head.Load()
	tail := r.tail.Load()
	if tail-head >= uint64(len(r.data)) {
		return false
	}
	r.data[tail&r.mask] = item
	r.tail.Store(tail + 1)
	return true
}

// Dequeue removes and returns the oldest item; ok false if empty.
func (r *RingBuffer[T]) Dequeue() (T, bool) {
	head := r.head.Load()
	tail := r.tail.Load()
	if head >= tail {
		var zero T
		return zero, false
	}
	slot := head & r.mask
	item := r.data[slot]
	var zero T
	r.data[slot] = zero
	r.head.Store(head + 1)
	return item, true
}

// Len returns the number of items currently buffered.
func (r *RingBuffer[T]) Len() int {
	return int(r.tail.Load() - r.head.Load())
}

// Cap returns the fixed buffer capacity.
func (r *RingBuffer[T]) Cap() int {
	return len(r.data)
}
