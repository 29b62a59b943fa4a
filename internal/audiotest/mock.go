// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"
	"time"
)

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int // frames to generate (per channel)
	pos         int // flattened samples served so far
	waveform    func(frame int, channel int) float32
}

// NewMockSource creates a new mock audio source. totalFrames is the
// number of frames to generate; waveform maps (frame, channel) to a
// sample value.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { return nil }

func (m *MockSource) TotalDuration() (time.Duration, bool) {
	return time.Duration(m.totalFrames) * time.Second / time.Duration(m.sampleRate), true
}

// Reset rewinds the source to allow re-reading.
func (m *MockSource) Reset() {
	m.pos = 0
}

func (m *MockSource) Next() (float32, bool) {
	if m.pos >= m.totalFrames*m.channels {
		return 0, false
	}

	frame := m.pos / m.channels
	ch := m.pos % m.channels
	m.pos++

	return m.waveform(frame, ch), true
}

func (m *MockSource) TrySeek(pos time.Duration) error {
	frame := uint64(pos) * uint64(m.sampleRate) / uint64(time.Second)
	if frame > uint64(m.totalFrames) {
		frame = uint64(m.totalFrames)
	}

	m.pos = int(frame) * m.channels

	return nil
}
