// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/audunits/audio"
	"github.com/ik5/audunits/units"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is the part of oggvorbis.Reader used by source.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate units.Frequency
	channels   int
}

func newSource(dec oggReader) *source {
	return &source{
		dec:        dec,
		sampleRate: units.Hz(float64(dec.SampleRate())),
		channels:   dec.Channels(),
	}
}

func (s *source) SampleRate() units.Frequency { return s.sampleRate }
func (s *source) Channels() int               { return s.channels }
func (s *source) Close() error                { return nil }
func (s *source) BufSize() int                { return 4096 }

// ReadSamples decodes straight into dst. oggvorbis already produces
// interleaved float32 and counts its result in samples, not frames.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	if len(dst) == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("decoding vorbis: %w", err)
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if dec.Channels() < 1 {
		return nil, fmt.Errorf("vorbis stream with %d channels: %w", dec.Channels(), audio.ErrInvalidChannel)
	}

	return newSource(dec), nil
}
