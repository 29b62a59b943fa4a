// SPDX-License-Identifier: EPL-2.0

package schedmix

import (
	"fmt"
	"io"

	"github.com/ik5/schedmix/audio"
	"github.com/ik5/schedmix/formats/wav"
	"github.com/ik5/schedmix/utils"
)

// MixToPCM16 pulls up to maxSamples interleaved samples from src and
// converts them to 16-bit PCM. It returns the collected samples and the
// source sample rate.
//
// maxSamples bounds the render because a scheduler with scheduled sounds
// keeps producing silence forever; pick the length you want to bounce
// (seconds * rate * channels).
func MixToPCM16(src audio.Source, maxSamples int) ([]int16, int) {
	pcm16 := make([]int16, 0, maxSamples)

	for len(pcm16) < maxSamples {
		v, ok := src.Next()
		if !ok {
			break
		}

		pcm16 = append(pcm16, utils.Float32ToInt16(v))
	}

	return pcm16, src.SampleRate()
}

// WriteMixWAV16 renders up to maxSamples samples of src into a 16-bit
// PCM WAV file.
func WriteMixWAV16(ws io.WriteSeeker, src audio.Source, maxSamples int) error {
	pcm16, rate := MixToPCM16(src, maxSamples)

	if err := wav.WriteWAV16(ws, rate, src.Channels(), pcm16); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
