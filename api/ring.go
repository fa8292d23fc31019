// File: api/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contract for bounded lock-free ring buffers.

package api

// Ring is a fixed-capacity lock-free ring buffer contract.
type Ring[T any] interface {
	// Enqueue adds an item, returns false if full.
	Enqueue(item T) bool
	// Dequeue removes the oldest item, returns false if empty.
	Dequeue() (T, bool)
	// Len returns the current number of items.
	Len() int
	// Cap returns the fixed buffer capacity.
	Cap() int
}
