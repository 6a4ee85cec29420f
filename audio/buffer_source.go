// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	"github.com/ik5/audunits/units"
)

// BufferSource streams an in-memory interleaved buffer, for example the
// output of a signal generator.
type BufferSource struct {
	samples    []float32
	sampleRate units.Frequency
	channels   int
	pos        int
}

// NewBufferSource wraps samples without copying them. channels below 1 is
// treated as mono.
func NewBufferSource(samples []float32, sampleRate units.Frequency, channels int) *BufferSource {
	return &BufferSource{
		samples:    samples,
		sampleRate: sampleRate,
		channels:   max(channels, 1),
	}
}

func (b *BufferSource) SampleRate() units.Frequency { return b.sampleRate }
func (b *BufferSource) Channels() int               { return b.channels }
func (b *BufferSource) BufSize() int                { return 4096 }
func (b *BufferSource) Close() error                { return nil }

// Reset rewinds the source to its first sample.
func (b *BufferSource) Reset() { b.pos = 0 }

func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%b.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if b.pos >= len(b.samples) {
		return 0, io.EOF
	}

	n := copy(dst, b.samples[b.pos:])
	b.pos += n

	if b.pos >= len(b.samples) {
		return n, io.EOF
	}

	return n, nil
}
