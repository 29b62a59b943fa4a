// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into audio.Source using
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit stereo PCM, so every decoded source
// reports two channels regardless of the encoded layout. Decoding is
// streaming; samples are pulled and converted in chunks.
package mp3
