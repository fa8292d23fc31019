// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for hioload-deque components.

package benchmarks

import (
	"testing"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-deque/deque"
	"github.com/momentics/hioload-deque/dispatch"
	"github.com/momentics/hioload-deque/internal/concurrency"
	"github.com/momentics/hioload-deque/pool"
)

// BenchmarkDequePushPopBack measures stack-style use at steady state.
func BenchmarkDequePushPopBack(b *testing.B) {
	d := deque.New[int](1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.PushBack(i)
		d.PopBack()
	}
}

// BenchmarkDequeFIFOSteadyState measures queue-style use without growth.
func BenchmarkDequeFIFOSteadyState(b *testing.B) {
	d := deque.New[int](1024)
	for i := 0; i < 512; i++ {
		d.PushBack(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.PushBack(i)
		d.PopFront()
	}
}

// BenchmarkDequeGrowth measures amortized growth from zero capacity.
func BenchmarkDequeGrowth(b *testing.B) {
	for i := 0; i < b.N; i++ {
		d := deque.New[int](0)
		for j := 0; j < 1024; j++ {
			d.PushBack(j)
		}
	}
}

// BenchmarkDequeRandomAccess measures masked index mapping.
func BenchmarkDequeRandomAccess(b *testing.B) {
	d := deque.New[int](1024)
	for i := 0; i < 1024; i++ {
		d.PushBack(i)
	}
	d.DropFront(512)
	for i := 0; i < 512; i++ {
		d.PushBack(i) // rotate so access spans the seam
	}
	b.ResetTimer()
	sum := 0
	for i := 0; i < b.N; i++ {
		sum += *d.At(i & 1023)
	}
	_ = sum
}

// BenchmarkFIFOComparison races the deque against eapache/queue on the
// same steady-state FIFO workload.
func BenchmarkFIFOComparison(b *testing.B) {
	b.Run("deque", func(b *testing.B) {
		d := deque.New[int](1024)
		for i := 0; i < 512; i++ {
			d.PushBack(i)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			d.PushBack(i)
			d.PopFront()
		}
	})
	b.Run("eapache-queue", func(b *testing.B) {
		q := queue.New()
		for i := 0; i < 512; i++ {
			q.Add(i)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			q.Add(i)
			q.Remove()
		}
	})
}

// BenchmarkSPSCRingThroughput measures the bounded lock-free ring.
func BenchmarkSPSCRingThroughput(b *testing.B) {
	ring := concurrency.NewRingBuffer[int](1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !ring.Enqueue(i) {
			ring.Dequeue()
			ring.Enqueue(i)
		}
	}
}

// BenchmarkFreeList measures pooled Get/Put round trips.
func BenchmarkFreeList(b *testing.B) {
	f := pool.NewFreeList(256, func() *[]byte {
		buf := make([]byte, 0, 4096)
		return &buf
	})
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			f.Put(f.Get())
		}
	})
}

// BenchmarkDispatcherThroughput measures unbounded fan-out to one
// processor.
func BenchmarkDispatcherThroughput(b *testing.B) {
	d := dispatch.New[int]()
	_ = d.AddProcessor(func(int) {})
	_ = d.Run()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.Dispatch(i)
	}
	b.StopTimer()
	d.Stop()
}
