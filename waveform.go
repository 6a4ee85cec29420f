// SPDX-License-Identifier: EPL-2.0

package audunits

import (
	"fmt"
	"strings"

	"github.com/ik5/audunits/formats/wav"
	"github.com/ik5/audunits/signals"
	"github.com/ik5/audunits/units"
)

// Waveform selects one of the test signal generators.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Saw
)

var waveformNames = [...]string{
	Sine:   "sine",
	Square: "square",
	Saw:    "saw",
}

func (w Waveform) String() string {
	if w < 0 || int(w) >= len(waveformNames) {
		return fmt.Sprintf("Waveform(%d)", int(w))
	}
	return waveformNames[w]
}

// ParseWaveform accepts the names printed by String in any case, and
// "sawtooth" for Saw.
func ParseWaveform(name string) (Waveform, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "sawtooth" {
		return Saw, nil
	}

	for w, n := range waveformNames {
		if n == name {
			return Waveform(w), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownWaveform, name)
}

// Generate renders duration seconds of w. Saw is the band-limited falling
// ramp; it needs a frequency above 0 Hz and a positive duration.
func Generate(w Waveform, frequency, sampleRate units.Frequency, duration units.Seconds) ([]float32, error) {
	switch w {
	case Sine:
		return signals.GenerateSine(frequency, sampleRate, duration), nil
	case Square:
		return signals.GenerateSquare(frequency, sampleRate, duration), nil
	case Saw:
		return signals.GenerateNonaliasingSawRampDown(frequency, sampleRate, duration), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownWaveform, w)
	}
}

// WriteTestSignal renders w and stores it as mono 16-bit WAV at path.
func WriteTestSignal(path string, w Waveform, frequency, sampleRate units.Frequency, duration units.Seconds) error {
	samples, err := Generate(w, frequency, sampleRate, duration)
	if err != nil {
		return err
	}

	if err := wav.WriteToFile(path, samples, sampleRate); err != nil {
		return fmt.Errorf("writing %v test signal: %w", w, err)
	}

	return nil
}
