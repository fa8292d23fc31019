// File: pool/objpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"

	"github.com/momentics/hioload-deque/deque"
)

// ObjectPool is a generic object pool.
type ObjectPool[T any] interface {
	Get() T
	Put(T)
}

// SyncPool wraps sync.Pool for generic usage. Reuse is best-effort:
// the collector may drop pooled objects at any time.
type SyncPool[T any] struct {
	pool *sync.Pool
}

// NewSyncPool creates a new SyncPool with a creator function.
func NewSyncPool[T any](creator func() T) *SyncPool[T] {
	return &SyncPool[T]{
		pool: &sync.Pool{New: func() any { return creator() }},
	}
}

func (sp *SyncPool[T]) Get() T {
	return sp.pool.Get().(T)
}

func (sp *SyncPool[T]) Put(obj T) {
	sp.pool.Put(obj)
}

// FreeList is a bounded LIFO free list backed by a deque. Unlike
// SyncPool its contents survive garbage collection cycles; at most
// limit objects are retained, the rest are dropped on Put. A mutex
// serializes access since the deque itself is single-threaded.
type FreeList[T any] struct {
	mu      sync.Mutex
	items   *deque.Deque[T]
	limit   int
	creator func() T
}

// Ensure compile-time interface compliance.
var _ ObjectPool[any] = (*FreeList[any])(nil)

// NewFreeList creates a free list retaining at most limit objects.
// creator is invoked when Get finds the list empty.
func NewFreeList[T any](limit int, creator func() T) *FreeList[T] {
	if limit < 1 {
		limit = 1
	}
	return &FreeList[T]{
		items:   deque.New[T](min(limit, 64)),
		limit:   limit,
		creator: creator,
	}
}

// Get returns a pooled object, or a freshly created one if none are
// retained.
func (f *FreeList[T]) Get() T {
	f.mu.Lock()
	if !f.items.IsEmpty() {
		v := f.items.PopBack()
		f.mu.Unlock()
		return v
	}
	f.mu.Unlock()
	return f.creator()
}

// Put retains obj for reuse, dropping it if the list is at its limit.
func (f *FreeList[T]) Put(obj T) {
	f.mu.Lock()
	if f.items.Len() < f.limit {
		f.items.PushBack(obj)
	}
	f.mu.Unlock()
}

// Len returns the number of retained objects.
func (f *FreeList[T]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items.Len()
}
