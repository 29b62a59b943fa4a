// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"
	"time"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/schedmix/audio"
)

// go-mp3 always outputs 16-bit little-endian stereo, 4 bytes per frame.
const (
	mp3Channels      = 2
	bytesPerFrame    = 4
	refillChunkBytes = 4096
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	duration   time.Duration
	hasLength  bool

	raw     []byte
	pending []float32
	served  int
	eof     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return mp3Channels }
func (s *source) Close() error    { return nil }

func (s *source) TotalDuration() (time.Duration, bool) {
	return s.duration, s.hasLength
}

func (s *source) Next() (float32, bool) {
	for s.served >= len(s.pending) {
		if s.eof {
			return 0, false
		}

		s.refill()
	}

	v := s.pending[s.served]
	s.served++

	return v, true
}

// refill decodes the next chunk of 16-bit little-endian PCM into the
// pending sample buffer.
func (s *source) refill() {
	n, err := s.dec.Read(s.raw)
	if err != nil || n == 0 {
		s.eof = true
	}

	samples := n / 2
	s.pending = s.pending[:samples]
	s.served = 0

	for i := 0; i < samples; i++ {
		low := uint16(s.raw[2*i])
		high := uint16(s.raw[2*i+1])
		s.pending[i] = float32(int16(low|(high<<8))) / 32768.0
	}
}

// TrySeek repositions via the decoder's byte-domain seeker when one is
// available (it is for real gomp3 decoders).
func (s *source) TrySeek(pos time.Duration) error {
	sk, ok := s.dec.(io.Seeker)
	if !ok {
		return audio.ErrSeekUnsupported
	}
	if pos < 0 {
		return audio.ErrNegativePosition
	}

	frame := audio.FramePosition(pos, s.sampleRate)
	if _, err := sk.Seek(int64(frame)*bytesPerFrame, io.SeekStart); err != nil {
		return fmt.Errorf("%w", err)
	}

	s.pending = s.pending[:0]
	s.served = 0
	s.eof = false

	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	src := &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		raw:        make([]byte, refillChunkBytes),
		pending:    make([]float32, 0, refillChunkBytes/2),
	}

	if frames := dec.Length() / bytesPerFrame; frames > 0 {
		src.duration = time.Duration(frames) * time.Second / time.Duration(src.sampleRate)
		src.hasLength = true
	}

	return src, nil
}
