// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into audio.Source using
// github.com/jfreymuth/oggvorbis. Decoding is streaming and yields
// float32 samples directly.
package vorbis
