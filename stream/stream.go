// SPDX-License-Identifier: EPL-2.0

// Package stream connects generated buffers and audio.Source values to
// github.com/gopxl/beep pipelines.
//
// beep streams stereo [2]float64 frames; mono buffers are copied to both
// sides and Collect averages them back.
package stream

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/ik5/audunits/audio"
	"github.com/ik5/audunits/units"
)

// resampleQuality is passed to beep.Resample; 4 is the value beep
// recommends for general use.
const resampleQuality = 4

// Rate converts a Frequency to beep's integer sample rate.
func Rate(rate units.Frequency) beep.SampleRate {
	return beep.SampleRate(int(math.Round(rate.Value())))
}

// Format describes mono 16-bit data at rate, the layout of the WAV writer.
func Format(rate units.Frequency) beep.Format {
	return beep.Format{
		SampleRate:  Rate(rate),
		NumChannels: 1,
		Precision:   2,
	}
}

// Samples streams a mono buffer.
type Samples struct {
	data []float32
	pos  int
}

// FromSamples wraps data without copying it.
func FromSamples(data []float32) *Samples {
	return &Samples{data: data}
}

func (s *Samples) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}

	n := min(len(samples), len(s.data)-s.pos)
	for i := range n {
		v := float64(s.data[s.pos+i])
		samples[i][0], samples[i][1] = v, v
	}
	s.pos += n

	return n, true
}

func (s *Samples) Err() error    { return nil }
func (s *Samples) Len() int      { return len(s.data) }
func (s *Samples) Position() int { return s.pos }

func (s *Samples) Seek(p int) error {
	if p < 0 || p > len(s.data) {
		return fmt.Errorf("seek to %d of %d: %w", p, len(s.data), ErrSeekOutOfRange)
	}

	s.pos = p
	return nil
}

var ErrSeekOutOfRange = errors.New("seek position out of range")

// sourceStreamer adapts an audio.Source. Mono is duplicated, channels past
// the second are dropped.
type sourceStreamer struct {
	src  audio.Source
	buf  []float32
	err  error
	done bool
}

// FromSource streams src until it reports io.EOF or fails. A failure is
// available from Err.
func FromSource(src audio.Source) beep.Streamer {
	return &sourceStreamer{src: src}
}

func (s *sourceStreamer) Err() error { return s.err }

func (s *sourceStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.done {
		return 0, false
	}

	channels := s.src.Channels()
	needed := len(samples) * channels
	if cap(s.buf) < needed {
		s.buf = make([]float32, needed)
	}
	s.buf = s.buf[:needed]

	n, err := s.src.ReadSamples(s.buf)
	frames := n / channels
	for f := range frames {
		left := float64(s.buf[f*channels])
		right := left
		if channels > 1 {
			right = float64(s.buf[f*channels+1])
		}
		samples[f][0], samples[f][1] = left, right
	}

	if err != nil {
		s.done = true
		if !errors.Is(err, io.EOF) {
			s.err = fmt.Errorf("reading source: %w", err)
		}
	}

	if frames == 0 && s.done {
		return 0, false
	}

	return frames, true
}

// WithGain scales s by a level in dBFS, so DBFS(-6) roughly halves the
// amplitude.
func WithGain(s beep.Streamer, level units.DecibelsFullScale) beep.Streamer {
	return &effects.Volume{
		Streamer: s,
		Base:     10,
		Volume:   level.Value() / 20,
	}
}

// Resample converts s from one rate to another with beep's resampler.
func Resample(s beep.Streamer, from, to units.Frequency) beep.Streamer {
	return beep.Resample(resampleQuality, Rate(from), Rate(to), s)
}

// Collect drains s into a mono buffer by averaging both sides of each
// frame.
func Collect(s beep.Streamer) ([]float32, error) {
	var out []float32
	buf := make([][2]float64, 512)

	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = append(out, float32((frame[0]+frame[1])/2))
		}

		if !ok || n == 0 {
			break
		}
	}

	if err := s.Err(); err != nil {
		return out, fmt.Errorf("%w", err)
	}

	return out, nil
}
