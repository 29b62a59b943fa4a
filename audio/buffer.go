// SPDX-License-Identifier: EPL-2.0

package audio

import "time"

// BufferSource serves interleaved samples out of an in-memory slice.
// The slice is not copied; callers must not mutate it afterwards.
type BufferSource struct {
	data       []float32
	sampleRate int
	channels   int
	pos        int
}

func NewBufferSource(data []float32, sampleRate, channels int) *BufferSource {
	return &BufferSource{
		data:       data,
		sampleRate: sampleRate,
		channels:   channels,
	}
}

func (b *BufferSource) SampleRate() int { return b.sampleRate }
func (b *BufferSource) Channels() int   { return b.channels }
func (b *BufferSource) Close() error    { return nil }

func (b *BufferSource) Next() (float32, bool) {
	if b.pos >= len(b.data) {
		return 0, false
	}

	v := b.data[b.pos]
	b.pos++

	return v, true
}

func (b *BufferSource) TotalDuration() (time.Duration, bool) {
	frames := len(b.data) / b.channels

	return time.Duration(frames) * time.Second / time.Duration(b.sampleRate), true
}

// TrySeek repositions at the frame implied by pos. Seeking past the end is
// allowed; the next read reports end of stream.
func (b *BufferSource) TrySeek(pos time.Duration) error {
	if pos < 0 {
		return ErrNegativePosition
	}

	frame := FramePosition(pos, b.sampleRate)
	flat := frame * uint64(b.channels)

	if flat > uint64(len(b.data)) {
		flat = uint64(len(b.data))
	}
	b.pos = int(flat)

	return nil
}
