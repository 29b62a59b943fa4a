// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into audio.Source using
// github.com/go-audio/aiff. Decoding fully materializes the stream,
// matching the engine's buffer-once model for schedulable sounds.
package aiff
