// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"

	"github.com/ik5/schedmix/utils"
)

type uniformMode int

const (
	passThrough  uniformMode = iota // same rate, same channels
	channelsOnly                    // same rate, different channels
	fullConvert                     // resample (and possibly remap channels)
)

// UniformSource normalizes any Source to a target sample rate and channel
// count, sample by sample. Resampling uses cubic interpolation over a
// sliding four-frame window; channel conversion duplicates mono up and
// averages multi-channel down.
type UniformSource struct {
	src         Source
	dstRate     int
	dstChannels int
	srcChannels int
	mode        uniformMode

	// Window of channel-converted frames for cubic interpolation:
	// frames[0] = t-1, frames[1] = t0, frames[2] = t+1, frames[3] = t+2
	frames   [4][]float32
	hasFrame [4]bool

	ratio  float64 // source frames advanced per output frame
	pos    float64 // fractional position between frames[1] and frames[2]
	primed bool
	eof    bool

	srcFrame []float32 // scratch for one raw source frame
	out      []float32 // current output frame
	outIdx   int
}

func NewUniformSource(src Source, dstRate, dstChannels int) (*UniformSource, error) {
	if dstRate <= 0 {
		return nil, ErrInvalidRate
	}
	if dstChannels <= 0 {
		return nil, ErrInvalidChannels
	}

	u := &UniformSource{
		src:         src,
		dstRate:     dstRate,
		dstChannels: dstChannels,
		srcChannels: src.Channels(),
		ratio:       float64(src.SampleRate()) / float64(dstRate),
		srcFrame:    make([]float32, src.Channels()),
		out:         make([]float32, dstChannels),
	}
	u.outIdx = len(u.out)

	switch {
	case src.SampleRate() == dstRate && src.Channels() == dstChannels:
		u.mode = passThrough
	case src.SampleRate() == dstRate:
		u.mode = channelsOnly
	default:
		u.mode = fullConvert
		for i := range u.frames {
			u.frames[i] = make([]float32, dstChannels)
		}
	}

	return u, nil
}

func (u *UniformSource) SampleRate() int { return u.dstRate }
func (u *UniformSource) Channels() int   { return u.dstChannels }

func (u *UniformSource) TotalDuration() (time.Duration, bool) {
	return u.src.TotalDuration()
}

func (u *UniformSource) Close() error {
	err := u.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// TrySeek delegates to the underlying source and rebuilds the
// interpolation window, which is stale after any reposition.
func (u *UniformSource) TrySeek(pos time.Duration) error {
	if pos < 0 {
		return ErrNegativePosition
	}

	if err := u.src.TrySeek(pos); err != nil {
		return fmt.Errorf("%w", err)
	}

	u.primed = false
	u.eof = false
	u.pos = 0
	u.outIdx = len(u.out)
	for i := range u.hasFrame {
		u.hasFrame[i] = false
	}

	return nil
}

func (u *UniformSource) Next() (float32, bool) {
	if u.mode == passThrough {
		return u.src.Next()
	}

	if u.outIdx < len(u.out) {
		v := u.out[u.outIdx]
		u.outIdx++

		return v, true
	}

	var ok bool
	if u.mode == channelsOnly {
		ok = u.readFrame(u.out)
	} else {
		ok = u.interpolateFrame()
	}
	if !ok {
		return 0, false
	}

	u.outIdx = 1

	return u.out[0], true
}

// readFrame pulls one raw frame from the source and channel-converts it
// into dst (len == dstChannels). A frame cut short by end of stream is
// padded with silence; a frame with no samples at all reports false.
func (u *UniformSource) readFrame(dst []float32) bool {
	if u.eof {
		return false
	}

	for i := range u.srcFrame {
		v, ok := u.src.Next()
		if !ok {
			u.eof = true
			if i == 0 {
				return false
			}
			for j := i; j < len(u.srcFrame); j++ {
				u.srcFrame[j] = 0
			}

			break
		}

		u.srcFrame[i] = v
	}

	switch {
	case u.srcChannels == u.dstChannels:
		copy(dst, u.srcFrame)
	case u.srcChannels == 1:
		for i := range dst {
			dst[i] = u.srcFrame[0]
		}
	default:
		var sum float32
		for _, v := range u.srcFrame {
			sum += v
		}
		mono := sum / float32(u.srcChannels)
		for i := range dst {
			dst[i] = mono
		}
	}

	return true
}

// prime fills the initial four-frame window. When the source is shorter
// than the window, the last valid frame is duplicated into the remaining
// slots so short sounds still resample.
func (u *UniformSource) prime() {
	u.primed = true

	for i := 0; i < 4; i++ {
		if !u.readFrame(u.frames[i]) {
			for j := i; i > 0 && j < 4; j++ {
				copy(u.frames[j], u.frames[i-1])
				u.hasFrame[j] = true
			}

			return
		}

		u.hasFrame[i] = true
	}
}

// shift advances the window by one source frame: [0,1,2,3] -> [1,2,3,new].
func (u *UniformSource) shift() {
	copy(u.frames[0], u.frames[1])
	copy(u.frames[1], u.frames[2])
	copy(u.frames[2], u.frames[3])
	u.hasFrame[0] = u.hasFrame[1]
	u.hasFrame[1] = u.hasFrame[2]
	u.hasFrame[2] = u.hasFrame[3]

	if u.readFrame(u.frames[3]) {
		u.hasFrame[3] = true
	} else {
		u.hasFrame[3] = false
	}
}

func (u *UniformSource) interpolateFrame() bool {
	if !u.primed {
		u.prime()
	}

	for u.pos >= 1.0 {
		u.pos -= 1.0
		u.shift()
	}

	if !u.hasFrame[1] || !u.hasFrame[2] {
		return false
	}

	alpha := float32(u.pos)

	for c := range u.out {
		var y0, y3 float32

		// Duplicate edge frames when the window is truncated
		if u.hasFrame[0] {
			y0 = u.frames[0][c]
		} else {
			y0 = u.frames[1][c]
		}

		y1 := u.frames[1][c]
		y2 := u.frames[2][c]

		if u.hasFrame[3] {
			y3 = u.frames[3][c]
		} else {
			y3 = u.frames[2][c]
		}

		u.out[c] = utils.CubicInterpolate(y0, y1, y2, y3, alpha)
	}

	u.pos += u.ratio

	return true
}
