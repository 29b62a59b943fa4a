// SPDX-License-Identifier: EPL-2.0

// Package sched schedules sounds to start at exact sample offsets
// relative to a continuously playing main stream and mixes everything
// together sample by sample.
//
// # Overview
//
// A Scheduler owns a normalized main stream, a SourceScheduler per
// schedulable sound, and a shared SampleCounter. Each SourceScheduler
// fully buffers its sound once and keeps a sorted list of start offsets;
// a sliding two-cursor window over that list tracks which occurrences can
// still contribute, so per-tick cost depends on the active window, not on
// how many events were ever scheduled.
//
//	counter := sched.NewSampleCounter()
//	engine, err := sched.NewScheduler(mainTrack, counter, 48000, 2)
//	id, err := engine.Add(hitSound)
//
//	child, _ := engine.Get(id)
//	child.Schedule(sched.PlaybackEvent{Timestamp: 24000})
//	child.Schedule(sched.PlaybackEvent{
//	    Timestamp: 48000,
//	    Repeat:    &sched.Repeat{Period: 24000, Count: 8},
//	})
//
//	for {
//	    v, ok := engine.Next()
//	    if !ok {
//	        break
//	    }
//	    // hand v to the output device
//	}
//
// The engine is itself an audio.Source, so it slots into any pipeline
// that consumes one.
//
// # Real-Time Contract
//
// Next is allocation-free, lock-free and panic-free, with bounded
// worst-case execution time; it is safe to drive from a hard real-time
// audio callback. Add and Schedule may allocate and sort; run them during
// setup or serialize them with playback externally. The only state that
// may be shared across goroutines without synchronization is the
// SampleCounter.
//
// # Position Tracking
//
// The SampleCounter counts completed output frames (not per-channel
// samples). Hand the same pointer to a UI goroutine for
// position-synchronized visuals:
//
//	go func() {
//	    for {
//	        frame := counter.Get()
//	        // draw at frame
//	    }
//	}()
//
// # Kernels
//
// The retrieve-and-mix kernel comes in a scalar and a vectorized form
// behind one contract; see Kernel. Integer mixes saturate instead of
// wrapping, floating-point mixes clamp the final composite sample to
// [-1, 1] and leave intermediate contributions untouched.
package sched
