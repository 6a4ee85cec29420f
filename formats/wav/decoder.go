// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/audunits/audio"
	"github.com/ik5/audunits/internal/pcmstream"
)

// formatPCM is the WAVE_FORMAT_PCM tag of the fmt chunk.
const formatPCM = 1

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcmstream.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	if dec.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 || format.SampleRate < 1 {
		return nil, ErrUnsupportedWavLayout
	}

	switch dec.BitDepth {
	case 8:
		return pcmstream.New(unsigned8{dec}, format, 8), nil
	case 16, 24, 32:
		return pcmstream.New(dec, format, int(dec.BitDepth)), nil
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, dec.BitDepth)
	}
}

// unsigned8 recenters 8-bit WAV data, which is stored unsigned.
type unsigned8 struct {
	dec *wav.Decoder
}

func (u unsigned8) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	n, err := u.dec.PCMBuffer(buf)
	for i := range n {
		buf.Data[i] -= 128
	}

	return n, err
}
