// SPDX-License-Identifier: EPL-2.0

package sched

// PlaybackEvent requests that a previously added sound starts playing at
// an exact frame offset. Events are consumed entirely at schedule time and
// never stored.
type PlaybackEvent struct {
	// SourceID is the handle returned by Scheduler.Add. Ignored when the
	// event is handed directly to a SourceScheduler.
	SourceID int
	// Timestamp is the start offset in frames relative to stream start.
	Timestamp uint64
	// Repeat optionally re-triggers the event periodically.
	Repeat *Repeat
}

// Repeat expands an event into Count cycles starting at Timestamp,
// Timestamp+Period, Timestamp+2*Period, and so on. Period is in frames.
// A Count of zero schedules nothing.
type Repeat struct {
	Period uint64
	Count  uint64
}
