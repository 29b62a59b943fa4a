// SPDX-License-Identifier: EPL-2.0

// Package audio provides the pull-based source contract and the
// collaborators the scheduling engine consumes.
//
// # Source Interface
//
// The Source interface is the foundation of the library:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    Next() (float32, bool)
//	    TotalDuration() (time.Duration, bool)
//	    TrySeek(pos time.Duration) error
//	    Close() error
//	}
//
// A Source yields one interleaved sample per call to Next. All decoders
// and processors implement it, allowing them to be chained together in
// processing pipelines. The second return value of Next is false once the
// stream has ended; end of stream is a normal control value, not an error.
//
// # Normalization
//
// UniformSource converts any Source to a common sample rate and channel
// count:
//
//	uniform, err := audio.NewUniformSource(source, 48000, 2)
//
// Resampling uses cubic interpolation; channel conversion duplicates mono
// up and averages multi-channel down. The scheduling engine requires all
// of its inputs to share one rate and channel layout, and uses
// UniformSource internally to guarantee it.
//
// # In-Memory Sources
//
// BufferSource serves samples out of a slice, which is useful for tests
// and for fully decoded sounds:
//
//	src := audio.NewBufferSource(samples, 48000, 2)
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format makes it easy to process audio without worrying
// about bit depths. Intermediate mixes may exceed the range; the engine
// clamps only the final composite sample.
package audio
