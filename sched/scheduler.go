// SPDX-License-Identifier: EPL-2.0

package sched

import (
	"fmt"
	"time"

	"github.com/ik5/schedmix/audio"
)

// Scheduler mixes a main stream with any number of scheduled sounds,
// sample by sample, and publishes the number of completed output frames
// through a shared SampleCounter.
//
// The tick path (Next) is allocation-free, lock-free and panic-free; it
// is meant to be driven from a real-time audio callback. Add and Schedule
// are control-path operations: run them before playback starts or
// serialize them with the playback goroutine yourself.
type Scheduler struct {
	input   audio.Source
	sources []*SourceScheduler
	counter *SampleCounter

	sampleRate int
	channels   int

	channelsCounted int
	kernel          Kernel
	scratch         []float32
}

// NewScheduler wraps input, normalized to sampleRate and channels, in a
// mixing engine. counter is the shared frame position handle; pass the
// same pointer to whatever thread needs to observe playback position. A
// nil counter gets a private one.
func NewScheduler(input audio.Source, counter *SampleCounter, sampleRate, channels int) (*Scheduler, error) {
	return NewSchedulerWithCapacity(input, counter, sampleRate, channels, 0)
}

// NewSchedulerWithCapacity pre-sizes the engine for a known number of
// schedulable sounds.
func NewSchedulerWithCapacity(input audio.Source, counter *SampleCounter, sampleRate, channels, capacity int) (*Scheduler, error) {
	uniform, err := audio.NewUniformSource(input, sampleRate, channels)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if counter == nil {
		counter = NewSampleCounter()
	}

	return &Scheduler{
		input:      uniform,
		sources:    make([]*SourceScheduler, 0, capacity),
		counter:    counter,
		sampleRate: sampleRate,
		channels:   channels,
		scratch:    make([]float32, 0, capacity),
	}, nil
}

// Add buffers src as a new schedulable sound and returns its id. Ids are
// stable for the engine's lifetime and never reused. Control path only.
func (s *Scheduler) Add(src audio.Source) (int, error) {
	child, err := NewSourceScheduler(src, s.sampleRate, s.channels)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	child.kernel = s.kernel

	return s.AddScheduler(child), nil
}

// AddScheduler registers a prebuilt SourceScheduler. The child must share
// the engine's sample rate and channel count.
func (s *Scheduler) AddScheduler(child *SourceScheduler) int {
	s.sources = append(s.sources, child)

	// Regrow the mix scratch now so the tick path never allocates.
	s.scratch = make([]float32, 0, len(s.sources))

	return len(s.sources) - 1
}

// Get returns the SourceScheduler behind id for further scheduling. An
// out-of-range id yields false, never a panic.
func (s *Scheduler) Get(id int) (*SourceScheduler, bool) {
	if id < 0 || id >= len(s.sources) {
		return nil, false
	}

	return s.sources[id], true
}

// SetKernel selects the mixing kernel for the engine and every child it
// currently owns; children added later inherit it.
func (s *Scheduler) SetKernel(k Kernel) {
	s.kernel = k
	for _, src := range s.sources {
		src.kernel = k
	}
}

// Counter returns the shared frame position handle.
func (s *Scheduler) Counter() *SampleCounter {
	return s.counter
}

// Next produces one composite sample: the main stream plus every child
// that has ever been scheduled, folded by the kernel. Absent only when
// the main stream has ended and no child has a schedule, which signals
// end of iteration.
func (s *Scheduler) Next() (float32, bool) {
	mainSample, mainOK := s.input.Next()

	s.channelsCounted++
	if s.channelsCounted >= s.channels {
		s.channelsCounted = 0
		s.counter.Increment()
	}

	values := s.scratch[:0]
	for _, src := range s.sources {
		if v, ok := src.Next(); ok {
			values = append(values, v)
		}
	}

	return Mix(s.kernel, values, mainSample, mainOK)
}

func (s *Scheduler) SampleRate() int { return s.sampleRate }
func (s *Scheduler) Channels() int   { return s.channels }

func (s *Scheduler) TotalDuration() (time.Duration, bool) {
	return s.input.TotalDuration()
}

// TrySeek repositions the main stream only. Children keep their own
// positions and are individually seekable through Get.
func (s *Scheduler) TrySeek(pos time.Duration) error {
	if err := s.input.TrySeek(pos); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (s *Scheduler) Close() error {
	err := s.input.Close()

	for _, src := range s.sources {
		if cerr := src.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}

	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
