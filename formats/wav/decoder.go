// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/schedmix/audio"
)

type Decoder struct{}

// Decode reads an entire WAV stream into memory and returns a seekable
// pull source over the decoded samples. Full decoding up front matches
// the engine's buffer-once model for schedulable sounds.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		raw, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		rs = bytes.NewReader(raw)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	data, err := normalize(buf, int(dec.BitDepth))
	if err != nil {
		return nil, err
	}

	return audio.NewBufferSource(data, buf.Format.SampleRate, buf.Format.NumChannels), nil
}

// normalize converts go-audio's int samples to float32 in [-1, 1] based
// on the source bit depth.
func normalize(buf *goaudio.IntBuffer, bitDepth int) ([]float32, error) {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, ErrUnsupportedBitDepth
	}

	scale := float32(int64(1) << (bitDepth - 1))

	data := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		data[i] = float32(v) / scale
	}

	return data, nil
}
