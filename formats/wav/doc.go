// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding on top of
// github.com/go-audio/wav.
//
// Decoding fully materializes the stream and returns a seekable
// audio.Source of float32 samples in [-1.0, 1.0]:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//
// WriteWAV16 writes interleaved 16-bit PCM:
//
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 48000, 2, samples)
package wav
