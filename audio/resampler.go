// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audunits/units"
	"github.com/ik5/audunits/utils"
)

// Resampler streams src at a different sample rate using cubic
// interpolation. It works on interleaved samples and keeps the channel
// count. When downsampling a one-pole low-pass filter is applied to the
// input.
//
// Output frame k sits at source position k * srcRate / dstRate, so a source
// of N frames yields about N * dstRate / srcRate frames.
type Resampler struct {
	src      Source
	dstRate  units.Frequency
	ratio    float64 // source frames per output frame
	channels int

	// window of four frames around the read position:
	// frames[0] = t-1, frames[1] = t0, frames[2] = t+1, frames[3] = t+2.
	// Frames past the end of the source repeat the last frame and are
	// marked false in real.
	frames [4][]float32
	real   [4]bool
	primed bool

	// position between frames[1] and frames[2], in source frames
	pos float64

	srcBuf []float32
	eof    bool

	filterState []float32
	filterReady bool
	useFilter   bool
	filterAlpha float32
}

// NewResampler returns a Resampler converting src to dstRate. It fails with
// ErrInvalidRate when either rate is 0 Hz.
func NewResampler(src Source, dstRate units.Frequency) (*Resampler, error) {
	if !dstRate.Greater(units.Hz(0)) || !src.SampleRate().Greater(units.Hz(0)) {
		return nil, fmt.Errorf("resampling %v to %v: %w", src.SampleRate(), dstRate, ErrInvalidRate)
	}

	channels := src.Channels()
	ratio := src.SampleRate().Value() / dstRate.Value()

	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		ratio:       ratio,
		channels:    channels,
		srcBuf:      make([]float32, channels),
		useFilter:   ratio > 1,
		filterAlpha: 0.5,
		filterState: make([]float32, channels),
	}

	for i := range r.frames {
		r.frames[i] = make([]float32, channels)
	}

	return r, nil
}

func (r *Resampler) SampleRate() units.Frequency { return r.dstRate }
func (r *Resampler) Channels() int               { return r.channels }
func (r *Resampler) BufSize() int                { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame reads the next source frame into dst. When the source is
// exhausted dst is left untouched and false is returned.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	if r.eof {
		return false, nil
	}

	n, err := r.src.ReadSamples(r.srcBuf)
	got := n >= r.channels
	if got {
		copy(dst, r.srcBuf)
		r.filter(dst)
	}

	if errors.Is(err, io.EOF) {
		r.eof = true
		return got, nil
	}
	if err != nil {
		return got, fmt.Errorf("%w", err)
	}

	return got, nil
}

// filter applies y[n] = a*x[n] + (1-a)*y[n-1] in place. The state starts at
// the first frame so the output does not fade in.
func (r *Resampler) filter(frame []float32) {
	if !r.useFilter {
		return
	}

	if !r.filterReady {
		copy(r.filterState, frame)
		r.filterReady = true
	}

	for c := range frame {
		frame[c] = r.filterAlpha*frame[c] + (1-r.filterAlpha)*r.filterState[c]
		r.filterState[c] = frame[c]
	}
}

func (r *Resampler) prime() error {
	r.primed = true

	got, err := r.readFrame(r.frames[1])
	if err != nil {
		return err
	}
	if !got {
		return io.EOF
	}

	copy(r.frames[0], r.frames[1])
	r.real[1] = true

	for i := 2; i < len(r.frames); i++ {
		if err := r.fill(i); err != nil {
			return err
		}
	}

	return nil
}

// fill loads frames[i] from the source or repeats frames[i-1].
func (r *Resampler) fill(i int) error {
	got, err := r.readFrame(r.frames[i])
	if err != nil {
		return err
	}

	r.real[i] = got
	if !got {
		copy(r.frames[i], r.frames[i-1])
	}

	return nil
}

// advance shifts the window by one source frame.
func (r *Resampler) advance() error {
	copy(r.frames[0], r.frames[1])
	copy(r.frames[1], r.frames[2])
	copy(r.frames[2], r.frames[3])
	r.real[0], r.real[1], r.real[2] = r.real[1], r.real[2], r.real[3]

	return r.fill(3)
}

// ReadSamples produces samples at the destination rate. len(dst) must be a
// multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.real[1] {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.frames[0][c], r.frames[1][c], r.frames[2][c], r.frames[3][c], x)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
