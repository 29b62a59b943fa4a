// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
	"time"
)

// Source is a pull-based stream of interleaved float32 samples in [-1,1].
// One call to Next yields one flattened-domain sample (frame index times
// channel count plus channel offset); false means the stream has ended.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// Next returns the next interleaved sample. The second value is false
	// once the stream is exhausted; exhaustion is not an error.
	Next() (float32, bool)
	// TotalDuration reports the stream length when it is known up front.
	TotalDuration() (time.Duration, bool)
	// TrySeek repositions the stream at pos. Sources that cannot seek
	// return ErrSeekUnsupported.
	TrySeek(pos time.Duration) error

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg vorbis").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// FramePosition converts a time position into a frame index at rate.
func FramePosition(pos time.Duration, rate int) uint64 {
	secs := uint64(pos / time.Second)
	frames := secs * uint64(rate)

	nanosPerFrame := uint64(time.Second) / uint64(rate)
	if nanosPerFrame > 0 {
		frames += uint64(pos%time.Second) / nanosPerFrame
	}

	return frames
}
