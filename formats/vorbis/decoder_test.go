// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audunits/audio"
)

// mockOggReader mimics oggvorbis.Reader: Read fills whole frames and
// returns the number of samples written.
type mockOggReader struct {
	sampleRate int
	channels   int
	samples    []float32
	err        error
}

func (m *mockOggReader) SampleRate() int { return m.sampleRate }
func (m *mockOggReader) Channels() int   { return m.channels }

func (m *mockOggReader) Read(buf []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}

	if len(m.samples) == 0 {
		return 0, io.EOF
	}

	n := copy(buf[:len(buf)-len(buf)%m.channels], m.samples)
	m.samples = m.samples[n:]

	return n, nil
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newSource(&mockOggReader{sampleRate: 48000, channels: 2})

	if src.Channels() != 2 || src.SampleRate().Value() != 48000 {
		t.Errorf("got %d channels at %v", src.Channels(), src.SampleRate())
	}

	if err := src.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestSource_ReadSamplesCountsSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
	}{
		{name: "mono", channels: 1},
		{name: "stereo", channels: 2},
		{name: "5.1", channels: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			samples := make([]float32, 600*tt.channels)
			for i := range samples {
				samples[i] = float32(i%tt.channels) / 10
			}

			src := newSource(&mockOggReader{sampleRate: 44100, channels: tt.channels, samples: samples})
			channels, err := audio.ReadAll(src, 64)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}

			for c := range tt.channels {
				if len(channels[c]) != 600 {
					t.Fatalf("channel %d has %d samples, want 600", c, len(channels[c]))
				}
				if channels[c][599] != float32(c)/10 {
					t.Errorf("channel %d = %v, want %v", c, channels[c][599], float32(c)/10)
				}
			}
		})
	}
}

func TestSource_Errors(t *testing.T) {
	t.Parallel()

	src := newSource(&mockOggReader{sampleRate: 44100, channels: 2})
	if _, err := src.ReadSamples(make([]float32, 3)); err != audio.ErrInvalidDstSize {
		t.Errorf("odd dst: error = %v, want ErrInvalidDstSize", err)
	}

	broken := newSource(&mockOggReader{sampleRate: 44100, channels: 1, err: io.ErrUnexpectedEOF})
	if _, err := broken.ReadSamples(make([]float32, 8)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("decoder failure: error = %v, want ErrUnexpectedEOF", err)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("This is not Ogg Vorbis data")} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
			t.Errorf("Decode(%q) error = nil", data)
		}
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]float32, 1<<16)
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for range b.N {
		src := newSource(&mockOggReader{sampleRate: 44100, channels: 2, samples: samples})
		for {
			if _, err := src.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
