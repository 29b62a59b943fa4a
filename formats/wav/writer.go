// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// WriteWAV16 writes interleaved 16-bit PCM samples as a WAV file at
// sampleRate with the given channel count. The destination must be
// seekable because the RIFF header is finalized after the data chunk
// (os.File works; wrap anything else in a temp file).
func WriteWAV16(ws io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	enc := gowav.NewEncoder(ws, sampleRate, 16, channels, 1)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
