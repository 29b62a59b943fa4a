// SPDX-License-Identifier: EPL-2.0

package sched

import (
	"fmt"
	"slices"
	"time"

	"github.com/ik5/schedmix/audio"
)

// SourceScheduler owns one fully buffered sound and the sorted list of
// start offsets at which it should play. It is itself an audio.Source:
// each Next call produces the mix of every currently active occurrence of
// the sound for the current tick.
//
// A two-cursor window over the schedule tracks which entries can still
// contribute. Cursor advancement is amortized O(1) per tick; the per-tick
// cost is proportional to the active window, not the whole schedule.
type SourceScheduler struct {
	buf        []float32
	sampleRate int
	channels   int

	// Ascending start offsets in the flattened sample domain.
	schedule  []uint64
	low, high int

	ticks  uint64
	kernel Kernel
}

// NewSourceScheduler materializes src into an immutable buffer at the
// given rate and channel count. Buffering is eager and happens once, so
// the tick path never allocates no matter how often the sound plays.
func NewSourceScheduler(src audio.Source, sampleRate, channels int) (*SourceScheduler, error) {
	uniform, err := audio.NewUniformSource(src, sampleRate, channels)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	buf := make([]float32, 0, 4096)
	for {
		v, ok := uniform.Next()
		if !ok {
			break
		}

		buf = append(buf, v)
	}

	return &SourceScheduler{
		buf:        buf,
		sampleRate: sampleRate,
		channels:   channels,
		schedule:   make([]uint64, 0, 1000),
	}, nil
}

// Schedule registers event for playback, expanding a repeat into one
// schedule entry per cycle. The schedule re-sorts and may grow on every
// call; schedule from the control path, never from the tick path.
func (s *SourceScheduler) Schedule(event PlaybackEvent) {
	cycles := uint64(1)
	period := uint64(0)

	if event.Repeat != nil {
		cycles = event.Repeat.Count
		period = event.Repeat.Period
	}

	for k := uint64(0); k < cycles; k++ {
		start := (event.Timestamp + k*period) * uint64(s.channels)
		s.schedule = append(s.schedule, start)
	}

	slices.Sort(s.schedule)
}

// SetKernel selects the mixing kernel for this source.
func (s *SourceScheduler) SetKernel(k Kernel) {
	s.kernel = k
}

// Next produces one mixed sample for the current tick. The result is
// present whenever anything has ever been scheduled, even if every
// occurrence is silent right now; it is absent only for a schedule that
// never had entries, which lets a parent mixer prune the slot.
func (s *SourceScheduler) Next() (float32, bool) {
	tick := s.ticks
	s.advanceWindow(tick)

	v, ok := RetrieveAndMix(s.kernel, s.buf, s.schedule, s.low, s.high, tick)
	s.ticks++

	if !ok && len(s.schedule) > 0 {
		return 0, true
	}

	return v, ok
}

// advanceWindow slides the cursors up to tick. high passes entries that
// have started; low then passes entries whose longest possible
// contribution has fully elapsed, against the fresh high bound. Neither
// cursor ever regresses.
func (s *SourceScheduler) advanceWindow(tick uint64) {
	if len(s.schedule) == 0 {
		return
	}

	var maxOffset uint64
	if len(s.buf) > 0 {
		maxOffset = uint64(len(s.buf)) - 1
	}

	for s.high < len(s.schedule) && s.schedule[s.high] <= tick {
		s.high++
	}

	for s.low+1 < s.high && s.schedule[s.low]+maxOffset < tick {
		s.low++
	}
}

func (s *SourceScheduler) SampleRate() int { return s.sampleRate }
func (s *SourceScheduler) Channels() int   { return s.channels }
func (s *SourceScheduler) Close() error    { return nil }

// TotalDuration is unknown: more events can always be scheduled.
func (s *SourceScheduler) TotalDuration() (time.Duration, bool) {
	return 0, false
}

// TrySeek moves the tick counter to the frame implied by pos and rebuilds
// the window cursors from scratch. The cursors are a cache over the
// schedule at a given tick, not independent state; reusing them across a
// seek would leave the window pointing at stale entries.
func (s *SourceScheduler) TrySeek(pos time.Duration) error {
	if pos < 0 {
		return audio.ErrNegativePosition
	}

	s.ticks = audio.FramePosition(pos, s.sampleRate) * uint64(s.channels)

	s.low, s.high = 0, 0
	s.advanceWindow(s.ticks)

	return nil
}
