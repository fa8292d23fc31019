// File: dispatch/bounded.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded single-handler dispatch over the lock-free SPSC ring.
// Overflow is reported to the producer instead of buffered, for
// callers that prefer load shedding to unbounded memory.

package dispatch

import (
	"sync"

	"github.com/momentics/hioload-deque/api"
	"github.com/momentics/hioload-deque/internal/concurrency"
)

// Bounded delivers events from one producer goroutine to one handler
// goroutine through a fixed-capacity ring. Dispatch fails with
// api.ErrResourceExhausted when the ring is full.
type Bounded[T any] struct {
	ring    *concurrency.RingBuffer[T]
	handler Handler[T]
	notify  chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
}

// NewBounded creates a bounded dispatcher with the given ring capacity
// (rounded up to a power of two).
func NewBounded[T any](capacity uint64, h Handler[T]) *Bounded[T] {
	return &Bounded[T]{
		ring:    concurrency.NewRingBuffer[T](capacity),
		handler: h,
		notify:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

// Run starts the consumer goroutine.
func (b *Bounded[T]) Run() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.running {
		return api.ErrAlreadyRunning
	}
	b.running = true
	b.wg.Add(1)
	go b.loop()
	return nil
}

// Dispatch enqueues ev for the handler. Single producer only.
func (b *Bounded[T]) Dispatch(ev T) error {
	b.mu.Lock()
	running := b.running
	b.mu.Unlock()
	if !running {
		return api.ErrNotRunning
	}
	if !b.ring.Enqueue(ev) {
		return api.ErrResourceExhausted
	}
	select {
	case b.notify <- struct{}{}:
	default:
	}
	return nil
}

// Stop drains the ring through the handler and waits for the consumer
// to exit.
func (b *Bounded[T]) Stop() {
	b.mu.Lock()
	if !b.running {
		b.mu.Unlock()
		return
	}
	b.running = false
	b.mu.Unlock()
	close(b.done)
	b.wg.Wait()
}

func (b *Bounded[T]) loop() {
	defer b.wg.Done()
	for {
		select {
		case <-b.notify:
			b.drain()
		case <-b.done:
			b.drain()
			return
		}
	}
}

func (b *Bounded[T]) drain() {
	for {
		ev, ok := b.ring.Dequeue()
		if !ok {
			return
		}
		b.handler(ev)
	}
}
