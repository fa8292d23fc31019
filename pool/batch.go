// File: pool/batch.go — zero-alloc batching without locks.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Batch accumulates items for bulk processing. NOT thread-safe and
// avoids mutex in hot-path.

package pool

import "github.com/momentics/hioload-deque/deque"

// Batch is a minimal zero-alloc batch of items.
type Batch[T any] struct {
	items []T
}

// NewBatch creates a new batch with given capacity.
func NewBatch[T any](capacity int) *Batch[T] {
	return &Batch[T]{
		items: make([]T, 0, capacity),
	}
}

// Append adds an item to the batch.
func (b *Batch[T]) Append(item T) {
	b.items = append(b.items, item)
}

// DrainFrom pops up to n items from the front of d into the batch and
// returns the number moved.
func (b *Batch[T]) DrainFrom(d *deque.Deque[T], n int) int {
	moved := 0
	for ; moved < n && !d.IsEmpty(); moved++ {
		b.items = append(b.items, d.PopFront())
	}
	return moved
}

// Len returns number of items in the batch.
func (b *Batch[T]) Len() int {
	return len(b.items)
}

// Get retrieves item at index.
func (b *Batch[T]) Get(idx int) T {
	return b.items[idx]
}

// Slice returns zero-copy sub-batch [start:end).
func (b *Batch[T]) Slice(start, end int) *Batch[T] {
	return &Batch[T]{items: b.items[start:end]}
}

// Underlying returns the underlying slice.
func (b *Batch[T]) Underlying() []T {
	return b.items
}

// Split divides the batch at idx into two sub-batches.
func (b *Batch[T]) Split(idx int) (first, second *Batch[T]) {
	return &Batch[T]{items: b.items[:idx]}, &Batch[T]{items: b.items[idx:]}
}

// Reset clears the batch retaining underlying storage.
func (b *Batch[T]) Reset() {
	b.items = b.items[:0]
}
