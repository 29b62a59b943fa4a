// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"
	"time"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/schedmix/audio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type positioner interface {
	SetPosition(int64) error
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	duration   time.Duration
	hasLength  bool

	pending []float32
	served  int
	eof     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) TotalDuration() (time.Duration, bool) {
	return s.duration, s.hasLength
}

func (s *source) Next() (float32, bool) {
	for s.served >= len(s.pending) {
		if s.eof {
			return 0, false
		}

		// The decoder yields float32 directly; no conversion pass needed.
		n, err := s.dec.Read(s.pending[:cap(s.pending)])
		if err != nil || n == 0 {
			s.eof = true
		}

		s.pending = s.pending[:n]
		s.served = 0
	}

	v := s.pending[s.served]
	s.served++

	return v, true
}

// TrySeek uses the decoder's frame positioning when the underlying stream
// is seekable.
func (s *source) TrySeek(pos time.Duration) error {
	p, ok := s.dec.(positioner)
	if !ok {
		return audio.ErrSeekUnsupported
	}
	if pos < 0 {
		return audio.ErrNegativePosition
	}

	frame := audio.FramePosition(pos, s.sampleRate)
	if err := p.SetPosition(int64(frame)); err != nil {
		return fmt.Errorf("%w", err)
	}

	s.pending = s.pending[:0]
	s.served = 0
	s.eof = false

	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	src := &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		pending:    make([]float32, 0, 4096),
	}

	if frames := dec.Length(); frames > 0 {
		src.duration = time.Duration(frames) * time.Second / time.Duration(src.sampleRate)
		src.hasLength = true
	}

	return src, nil
}
