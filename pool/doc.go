// Package pool
// Author: momentics <momentics@gmail.com>
//
// Object pooling built on the deque core: a sync.Pool wrapper for
// GC-managed recycling and a bounded free list for deterministic
// reuse. See objpool.go and batch.go for implementation details.
package pool
