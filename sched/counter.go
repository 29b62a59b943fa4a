// SPDX-License-Identifier: EPL-2.0

package sched

import "sync/atomic"

// SampleCounter is a lock-free frame position shared between the goroutine
// driving playback and any number of reader goroutines (UI, game logic).
// Exactly one writer may call Set or Increment; Get never blocks and never
// observes a torn value, and repeated reads are non-decreasing while the
// writer only increments.
//
// Construct one explicitly and hand the pointer to every component that
// needs cross-thread visibility.
type SampleCounter struct {
	v atomic.Uint64
}

func NewSampleCounter() *SampleCounter {
	return &SampleCounter{}
}

// Get returns the number of completed output frames.
func (c *SampleCounter) Get() uint64 {
	return c.v.Load()
}

func (c *SampleCounter) Set(n uint64) {
	c.v.Store(n)
}

func (c *SampleCounter) Increment() {
	c.v.Add(1)
}
