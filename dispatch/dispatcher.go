// File: dispatch/dispatcher.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fan-out event dispatch. Each processor decouples the producer from
// its handler with an unbounded deque so a slow handler never blocks
// Dispatch; the deque is touched by exactly one goroutine, honoring
// its single-threaded contract.

package dispatch

import (
	"sync"

	"github.com/momentics/hioload-deque/api"
	"github.com/momentics/hioload-deque/deque"
)

// Handler consumes one dispatched event.
type Handler[T any] func(T)

// Dispatcher fans every dispatched event out to all registered
// processors. Dispatch is safe from multiple goroutines while the
// dispatcher is running, but must not race with Stop.
type Dispatcher[T any] struct {
	mu      sync.Mutex
	procs   []*processor[T]
	running bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// New creates an idle dispatcher. Register processors, then Run.
func New[T any]() *Dispatcher[T] {
	return &Dispatcher[T]{done: make(chan struct{})}
}

// AddProcessor registers a handler with its own pending buffer.
// Fails once the dispatcher is running.
func (d *Dispatcher[T]) AddProcessor(h Handler[T]) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return api.ErrAlreadyRunning
	}
	d.procs = append(d.procs, newProcessor(h))
	return nil
}

// Run starts all processor goroutines and returns.
func (d *Dispatcher[T]) Run() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return api.ErrAlreadyRunning
	}
	d.running = true
	for _, p := range d.procs {
		d.wg.Add(2)
		go p.pump(&d.wg)
		go p.consume(&d.wg)
	}
	return nil
}

// Dispatch delivers ev to every processor. Never blocks on slow
// handlers; buffering is unbounded.
func (d *Dispatcher[T]) Dispatch(ev T) error {
	d.mu.Lock()
	running := d.running
	d.mu.Unlock()
	if !running {
		return api.ErrNotRunning
	}
	select {
	case <-d.done:
		return api.ErrNotRunning
	default:
	}
	for _, p := range d.procs {
		p.addCh <- ev
	}
	return nil
}

// Stop drains all pending events through their handlers and waits for
// the processors to exit. No Dispatch may be in flight or issued after
// Stop begins.
func (d *Dispatcher[T]) Stop() {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return
	}
	d.running = false
	d.mu.Unlock()
	close(d.done)
	for _, p := range d.procs {
		close(p.addCh)
	}
	d.wg.Wait()
}

// processor owns one handler, its channels and its pending deque.
type processor[T any] struct {
	addCh   chan T
	nextCh  chan T
	pending *deque.Deque[T]
	handler Handler[T]
}

func newProcessor[T any](h Handler[T]) *processor[T] {
	return &processor[T]{
		addCh:   make(chan T),
		nextCh:  make(chan T),
		pending: deque.New[T](0),
		handler: h,
	}
}

// pump shuttles events from addCh to nextCh, spilling into the pending
// deque whenever the consumer lags. The nil-channel idiom disables the
// send case while nothing is pending. On shutdown the spill is drained
// before nextCh closes.
func (p *processor[T]) pump(wg *sync.WaitGroup) {
	defer wg.Done()
	defer close(p.nextCh)
	var (
		nextCh  chan T
		current T
		has     bool
	)
	for {
		select {
		case nextCh <- current:
			if p.pending.IsEmpty() {
				var zero T
				current, has, nextCh = zero, false, nil
			} else {
				current = p.pending.PopFront()
			}
		case ev, ok := <-p.addCh:
			if !ok {
				if has {
					p.nextCh <- current
				}
				for !p.pending.IsEmpty() {
					p.nextCh <- p.pending.PopFront()
				}
				return
			}
			if !has {
				current, has, nextCh = ev, true, p.nextCh
			} else {
				p.pending.PushBack(ev)
			}
		}
	}
}

// consume runs the handler over nextCh until it closes.
func (p *processor[T]) consume(wg *sync.WaitGroup) {
	defer wg.Done()
	for ev := range p.nextCh {
		p.handler(ev)
	}
}
