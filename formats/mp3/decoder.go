// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audunits/audio"
	"github.com/ik5/audunits/units"
	"github.com/ik5/audunits/utils"
)

// go-mp3 always produces 16-bit little-endian stereo.
const (
	channels       = 2
	bytesPerSample = 2
)

// mp3Reader is the part of gomp3.Decoder used by source.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate units.Frequency
	buf        []byte
	pending    []byte // bytes of an incomplete frame from the previous read
}

func newSource(dec mp3Reader) *source {
	return &source{
		dec:        dec,
		sampleRate: units.Hz(float64(dec.SampleRate())),
		buf:        make([]byte, 8192),
	}
}

func (s *source) SampleRate() units.Frequency { return s.sampleRate }
func (s *source) Channels() int               { return channels }
func (s *source) Close() error                { return nil }
func (s *source) BufSize() int                { return cap(s.buf) / bytesPerSample }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	bytesNeeded := len(dst) * bytesPerSample
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	carried := copy(s.buf, s.pending)
	s.pending = s.pending[:0]

	n, err := s.dec.Read(s.buf[carried:])
	n += carried

	// keep whole frames only
	frameBytes := channels * bytesPerSample
	whole := n - n%frameBytes
	s.pending = append(s.pending, s.buf[whole:n]...)

	samples := utils.PCM16LEToFloat32s(dst, s.buf[:whole])

	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("decoding mp3: %w", err)
	}

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newSource(dec), nil
}
