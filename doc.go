// SPDX-License-Identifier: EPL-2.0

// Package schedmix provides sample-accurate scheduling and mixing of
// audio streams for Go applications.
//
// The engine lets you schedule additional sounds to start at exact frame
// offsets relative to a continuously playing main stream and mixes
// everything together sample by sample. It targets applications that need
// a scheduled sound to begin at a precisely known output sample rather
// than an approximate wall-clock time: rhythm games, sequencers, audio
// workstations.
//
// # Quick Start
//
//	counter := sched.NewSampleCounter()
//	engine, _ := sched.NewScheduler(mainTrack, counter, 48000, 2)
//
//	id, _ := engine.Add(hitSound)
//	child, _ := engine.Get(id)
//	child.Schedule(sched.PlaybackEvent{Timestamp: 24000})
//
//	pcm16, rate := schedmix.MixToPCM16(engine, 48000*2*10)
//
// The sched package holds the engine; the audio package holds the
// pull-based Source contract and the normalization collaborators; the
// formats subpackages decode WAV, MP3, Ogg Vorbis and AIFF files into
// sources.
//
// # Supported Formats
//
// The package supports decoding the following audio formats:
//   - WAV via formats/wav (go-audio)
//   - MP3 via formats/mp3 (go-mp3)
//   - Ogg Vorbis via formats/vorbis (oggvorbis)
//   - AIFF via formats/aiff (go-audio)
//
// All decoders return an audio.Source, which is what the engine consumes.
// Sources of any rate and channel layout are normalized internally.
//
// # Offline Rendering
//
// MixToPCM16 and WriteMixWAV16 drain an engine (or any source) into
// 16-bit PCM, for bouncing a scheduled mix to disk without a sound
// device. A scheduled engine never reports end of stream on its own, so
// both helpers take an explicit sample bound.
//
// See the sched package documentation for the real-time contract and the
// examples directory for live playback through a sound device.
package schedmix
