// File: deque/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package deque implements a growable double-ended ring buffer backed
// by a single power-of-two allocation.
//
// The structure keeps two wrapping uint64 counters, front and
// afterBack, and maps them to physical slots with a bitwise AND
// against capacity-1. The counters are allowed to overflow their
// integer width; only their difference and their masked values carry
// meaning, which removes any need for a full-versus-empty sentinel.
// Push and pop at either end are amortized O(1), random access by
// logical index is O(1), and removal at an arbitrary index shifts the
// cheaper of the two sides.
//
// Deque is single-threaded. Callers sharing one across goroutines
// must serialize every access, reads included. For cross-goroutine
// producer/consumer handoff use the bounded rings in
// internal/concurrency or the dispatch package instead.
package deque
