// SPDX-License-Identifier: EPL-2.0

// Package pcmstream adapts the go-audio integer PCM decoders (WAV, AIFF) to
// audio.Source.
package pcmstream

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audunits/audio"
	"github.com/ik5/audunits/units"
	"github.com/ik5/audunits/utils"
)

// Reader is the subset of wav.Decoder and aiff.Decoder used by Source.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source streams a go-audio decoder as normalized float32 samples.
type Source struct {
	dec        Reader
	format     *goaudio.Format
	sampleRate units.Frequency
	bitDepth   int
	intBuf     *goaudio.IntBuffer
}

// New wraps dec. format must be non-nil with at least one channel.
func New(dec Reader, format *goaudio.Format, bitDepth int) *Source {
	return &Source{
		dec:        dec,
		format:     format,
		sampleRate: units.Hz(float64(format.SampleRate)),
		bitDepth:   bitDepth,
	}
}

func (s *Source) SampleRate() units.Frequency { return s.sampleRate }
func (s *Source) Channels() int               { return s.format.NumChannels }
func (s *Source) BitDepth() int               { return s.bitDepth }
func (s *Source) Close() error                { return nil }

func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if len(dst)%s.format.NumChannels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.format,
			SourceBitDepth: s.bitDepth,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, fmt.Errorf("decoding pcm: %w", err)
		}
		return 0, io.EOF
	}

	utils.PCMToFloat32s(dst, s.intBuf.Data[:n], s.bitDepth)

	if err != nil {
		return n, fmt.Errorf("decoding pcm: %w", err)
	}

	// a short read without an error is the end of the data chunk
	if n < len(dst) {
		return n, io.EOF
	}

	return n, nil
}

// ReadSeeker returns r itself when it can seek, otherwise its contents
// buffered in memory. The go-audio decoders need to seek between chunks.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return bytes.NewReader(data), nil
}
