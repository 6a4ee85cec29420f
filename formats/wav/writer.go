// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/audunits/audio"
	"github.com/ik5/audunits/units"
	"github.com/ik5/audunits/utils"
)

const (
	extension     = ".wav"
	writeBitDepth = 16
)

// Writer saves mono buffers as 16-bit PCM WAV files.
type Writer struct {
	Path       string
	SampleRate units.Frequency
}

// Write stores samples at w.Path, see SanitizeFilename.
func (w Writer) Write(samples []float32) (err error) {
	rate := int(math.Round(w.SampleRate.Value()))
	if rate < 1 {
		return fmt.Errorf("writing %s at %v: %w", w.Path, w.SampleRate, audio.ErrInvalidRate)
	}

	path := SanitizeFilename(w.Path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrCannotOpenFile, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCannotOpenFile, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	enc := wav.NewEncoder(f, rate, writeBitDepth, 1, formatPCM)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: rate},
		Data:           make([]int, len(samples)),
		SourceBitDepth: writeBitDepth,
	}
	utils.Float32sToPCM16(buf.Data, samples)

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	// Close patches the chunk sizes in the header.
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	return nil
}

// WriteToFile is a shorthand for Writer{path, sampleRate}.Write(samples).
func WriteToFile(path string, samples []float32, sampleRate units.Frequency) error {
	return Writer{Path: path, SampleRate: sampleRate}.Write(samples)
}

// SanitizeFilename appends ".wav" unless path already ends with it, in any
// letter case.
func SanitizeFilename(path string) string {
	if strings.EqualFold(filepath.Ext(path), extension) {
		return path
	}
	return path + extension
}
