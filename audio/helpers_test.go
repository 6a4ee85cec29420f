// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"

	"github.com/ik5/audunits/signals"
	"github.com/ik5/audunits/units"
)

// interleave builds a multichannel buffer where channel c holds gen(c).
func interleave(channels int, gen func(channel int) []float32) []float32 {
	per := make([][]float32, channels)
	for c := range channels {
		per[c] = gen(c)
	}

	out := make([]float32, 0, len(per[0])*channels)
	for f := range per[0] {
		for c := range channels {
			out = append(out, per[c][f])
		}
	}

	return out
}

func constant(frames int, v float32) []float32 {
	buf := make([]float32, frames)
	for i := range buf {
		buf[i] = v
	}
	return buf
}

func sineSource(rate float64, channels, frames int, freq float64) *BufferSource {
	duration := units.Seconds(float64(frames) / rate)
	samples := interleave(channels, func(int) []float32 {
		return signals.GenerateSine(units.Hz(freq), units.Hz(rate), duration)
	})

	return NewBufferSource(samples, units.Hz(rate), channels)
}

func constantSource(rate float64, channels, frames int, v float32) *BufferSource {
	samples := interleave(channels, func(int) []float32 { return constant(frames, v) })
	return NewBufferSource(samples, units.Hz(rate), channels)
}

// drain reads src to the end with the given buffer size.
func drain(src Source, bufSize int) ([]float32, error) {
	buf := make([]float32, bufSize)
	var out []float32

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
	}
}

var errBroken = errors.New("broken source")

// failingSource returns errBroken after yielding good frames.
type failingSource struct {
	good int
}

func (f *failingSource) SampleRate() units.Frequency { return units.Hz(8000) }
func (f *failingSource) Channels() int               { return 1 }
func (f *failingSource) BufSize() int                { return 16 }
func (f *failingSource) Close() error                { return errBroken }

func (f *failingSource) ReadSamples(dst []float32) (int, error) {
	if f.good <= 0 {
		return 0, errBroken
	}

	n := min(len(dst), f.good)
	f.good -= n
	return n, nil
}

// stalledSource never returns data nor an error.
type stalledSource struct{}

func (stalledSource) SampleRate() units.Frequency        { return units.Hz(8000) }
func (stalledSource) Channels() int                      { return 1 }
func (stalledSource) BufSize() int                       { return 16 }
func (stalledSource) Close() error                       { return nil }
func (stalledSource) ReadSamples([]float32) (int, error) { return 0, nil }
