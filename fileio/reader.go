// SPDX-License-Identifier: EPL-2.0

package fileio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audunits/audio"
	"github.com/ik5/audunits/formats/aiff"
	"github.com/ik5/audunits/formats/mp3"
	"github.com/ik5/audunits/formats/vorbis"
	"github.com/ik5/audunits/formats/wav"
	"github.com/ik5/audunits/internal/assert"
	"github.com/ik5/audunits/units"
)

// RegisterBasicFormats adds every decoder of this module to registry under
// the usual file extensions.
func RegisterBasicFormats(registry *audio.Registry) {
	registry.Register("wav", wav.Decoder{})
	registry.Register("wave", wav.Decoder{})
	registry.Register("aiff", aiff.Decoder{})
	registry.Register("aif", aiff.Decoder{})
	registry.Register("mp3", mp3.Decoder{})
	registry.Register("ogg", vorbis.Decoder{})
}

// Reader holds a decoded file in memory.
type Reader struct {
	registry   *audio.Registry
	samples    [][]float32
	sampleRate units.Frequency
}

// NewReader returns a Reader that understands the basic formats.
func NewReader() *Reader {
	registry := audio.NewRegistry()
	RegisterBasicFormats(registry)

	return NewReaderWithRegistry(registry)
}

func NewReaderWithRegistry(registry *audio.Registry) *Reader {
	return &Reader{registry: registry}
}

// Open returns a streaming Source for path. The caller closes the Source;
// the underlying file is closed with it.
func (r *Reader) Open(path string) (audio.Source, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")

	decoder, ok := r.registry.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w %s: no decoder for %q", ErrCannotOpenFile, path, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrCannotOpenFile, path, err)
	}

	src, err := decoder.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w %s: %w", ErrCannotOpenFile, path, err)
	}

	return &fileSource{Source: src, file: f}, nil
}

// LoadFile decodes the whole file at path, replacing anything loaded
// before.
func (r *Reader) LoadFile(path string) error {
	src, err := r.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	return r.load(src)
}

func (r *Reader) load(src audio.Source) error {
	samples, err := audio.ReadAll(src, 0)
	if err != nil {
		return fmt.Errorf("reading samples: %w", err)
	}

	r.samples = samples
	r.sampleRate = src.SampleRate()

	return nil
}

func (r *Reader) NumChannels() int            { return len(r.samples) }
func (r *Reader) SampleRate() units.Frequency { return r.sampleRate }
func (r *Reader) Samples() [][]float32        { return r.samples }

// LengthInSamples is the number of frames per channel.
func (r *Reader) LengthInSamples() int {
	if len(r.samples) == 0 {
		return 0
	}
	return len(r.samples[0])
}

// Channel returns the samples of channel i. It panics when i is out of
// range.
func (r *Reader) Channel(i int) []float32 {
	assert.Preconditionf(i >= 0 && i < len(r.samples), "channel %d of %d", i, len(r.samples))
	return r.samples[i]
}

// fileSource closes the opened file together with the decoder.
type fileSource struct {
	audio.Source
	file *os.File
}

func (f *fileSource) Close() error {
	srcErr := f.Source.Close()
	if err := f.file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", f.file.Name(), err)
	}

	return srcErr
}
