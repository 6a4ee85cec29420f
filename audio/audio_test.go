// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"slices"
	"sync"
	"testing"

	"github.com/ik5/audunits/units"
)

type stubDecoder struct {
	name string
}

func (d *stubDecoder) Decode(io.Reader) (Source, error) {
	return constantSource(8000, 1, 10, 0), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wav := &stubDecoder{name: "wav"}
	ogg := &stubDecoder{name: "ogg"}

	registry.Register("wav", wav)
	registry.Register("OGG", ogg)

	tests := []struct {
		format string
		want   Decoder
		wantOK bool
	}{
		{"wav", wav, true},
		{"WAV", wav, true},
		{"ogg", ogg, true},
		{"flac", nil, false},
	}

	for _, tt := range tests {
		got, ok := registry.Get(tt.format)
		if ok != tt.wantOK {
			t.Errorf("Get(%q) ok = %v, want %v", tt.format, ok, tt.wantOK)
		}
		if tt.wantOK && got != tt.want {
			t.Errorf("Get(%q) returned the wrong decoder", tt.format)
		}
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first, second := &stubDecoder{name: "first"}, &stubDecoder{name: "second"}

	registry.Register("wav", first)
	registry.Register("wav", second)

	if got, _ := registry.Get("wav"); got != second {
		t.Error("Get() did not return the latest registration")
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	for _, f := range []string{"wav", "aiff", "Mp3"} {
		registry.Register(f, &stubDecoder{name: f})
	}

	if got, want := registry.Formats(), []string{"aiff", "mp3", "wav"}; !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &stubDecoder{name: "test"}

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.Register("format", decoder)
		}()
		go func() {
			defer wg.Done()
			registry.Get("format")
		}()
	}
	wg.Wait()

	if _, ok := registry.Get("format"); !ok {
		t.Error("Get() failed after concurrent registration")
	}
}

func TestBufferSource_ReadsAndReportsEOF(t *testing.T) {
	t.Parallel()

	src := NewBufferSource([]float32{1, 2, 3, 4, 5}, units.Hz(8000), 1)
	buf := make([]float32, 3)

	n, err := src.ReadSamples(buf)
	if n != 3 || err != nil {
		t.Fatalf("first read = (%d, %v), want (3, nil)", n, err)
	}

	n, err = src.ReadSamples(buf)
	if n != 2 || err != io.EOF {
		t.Fatalf("second read = (%d, %v), want (2, EOF)", n, err)
	}

	if buf[0] != 4 || buf[1] != 5 {
		t.Errorf("second read = %v, want [4 5 ...]", buf[:2])
	}

	n, err = src.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("read after end = (%d, %v), want (0, EOF)", n, err)
	}

	src.Reset()
	if n, _ := src.ReadSamples(buf); n != 3 || buf[0] != 1 {
		t.Errorf("read after Reset = %d samples starting %v", n, buf[0])
	}
}

func TestBufferSource_Metadata(t *testing.T) {
	t.Parallel()

	src := NewBufferSource(nil, units.Hz(44100), 0)

	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	if !src.SampleRate().Equal(units.Hz(44100)) {
		t.Errorf("SampleRate() = %v, want 44100 Hz", src.SampleRate())
	}

	if err := src.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestBufferSource_InvalidDstSize(t *testing.T) {
	t.Parallel()

	src := constantSource(8000, 2, 10, 0.1)
	if _, err := src.ReadSamples(make([]float32, 3)); err != ErrInvalidDstSize {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}
