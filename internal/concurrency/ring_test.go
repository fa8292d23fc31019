// File: internal/concurrency/ring_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import "testing"

func TestRingRoundsCapacityUp(t *testing.T) {
	r := NewRingBuffer[int](10)
	if r.Cap() != 16 {
		t.Fatalf("capacity = %d, want 16", r.Cap())
	}
	r = NewRingBuffer[int](0)
	if r.Cap() != 2 {
		t.Fatalf("capacity = %d, want 2", r.Cap())
	}
}

func TestRingRejectsWhenFull(t *testing.T) {
	r := NewRingBuffer[int](4)
	for i := 0; i < 4; i++ {
		if !r.Enqueue(i) {
			t.Fatalf("enqueue %d rejected below capacity", i)
		}
	}
	if r.Enqueue(99) {
		t.Fatal("enqueue accepted at capacity")
	}
	if r.Len() != 4 {
		t.Fatalf("len = %d, want 4", r.Len())
	}
}

func TestRingFIFOOrder(t *testing.T) {
	r := NewRingBuffer[int](8)
	for i := 0; i < 8; i++ {
		r.Enqueue(i)
	}
	for i := 0; i < 8; i++ {
		v, ok := r.Dequeue()
		if !ok || v != i {
			t.Fatalf("dequeue = (%d,%v), want (%d,true)", v, ok, i)
		}
	}
	if _, ok := r.Dequeue(); ok {
		t.Fatal("dequeue succeeded on empty ring")
	}
}

func TestRingSPSCThroughput(t *testing.T) {
	const total = 100000
	r := NewRingBuffer[int](64)
	done := make(chan int)

	go func() {
		sum := 0
		for seen := 0; seen < total; {
			if v, ok := r.Dequeue(); ok {
				sum += v
				seen++
			}
		}
		done <- sum
	}()

	want := 0
	for i := 0; i < total; i++ {
		for !r.Enqueue(i) {
		}
		want += i
	}
	if got := <-done; got != want {
		t.Fatalf("consumer sum = %d, want %d", got, want)
	}
}

func TestRingDequeueReleasesReference(t *testing.T) {
	r := NewRingBuffer[*int](2)
	v := 1
	r.Enqueue(&v)
	r.Dequeue()
	if r.data[0] != nil {
		t.Fatal("dequeued slot retains pointer")
	}
}
