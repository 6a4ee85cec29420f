// SPDX-License-Identifier: EPL-2.0

package units

import (
	"fmt"
	"math"
	"slices"

	"github.com/ik5/audunits/internal/assert"
)

// frequencyTolerance is the absolute difference in hertz below which two
// frequencies compare equal.
const frequencyTolerance = 1e-4

// Frequency is a non-negative value in hertz.
//
// There is no implicit conversion to float64; use Value.
type Frequency struct {
	hz float64
}

// A4Frequency is the tuning reference, 440 Hz.
var A4Frequency = Hz(440)

var octaveFrequencies = []Frequency{
	Hz(16), Hz(31.5), Hz(63), Hz(125), Hz(250), Hz(500),
	KHz(1), KHz(2), KHz(4), KHz(8), KHz(16),
}

var octaveFrequencyLabels = []string{
	"16", "31.5", "63", "125", "250", "500", "1k", "2k", "4k", "8k", "16k",
}

// Hz returns a Frequency of v hertz. It panics if v is negative or NaN.
func Hz(v float64) Frequency {
	assert.Preconditionf(v >= 0, "negative frequencies are not supported: %v Hz", v)
	return Frequency{hz: v}
}

// KHz returns a Frequency of v kilohertz.
func KHz(v float64) Frequency {
	return Hz(v * 1000)
}

// Value returns the frequency in hertz.
func (f Frequency) Value() float64 { return f.hz }

// Mul scales the frequency by x.
func (f Frequency) Mul(x float64) Frequency {
	return Hz(f.hz * x)
}

// Div divides the frequency by x. It panics if x is zero.
func (f Frequency) Div(x float64) Frequency {
	assert.Precondition(math.Abs(x) > 0, "division of a frequency by zero")
	return Hz(f.hz / x)
}

// TransposedBy shifts the frequency by an interval of any unit.
func (f Frequency) TransposedBy(i PitchInterval) Frequency {
	return Hz(f.hz * i.FrequencyRatio())
}

// Midi returns the equal-tempered note number closest in pitch, without
// rounding to an integer note.
func (f Frequency) Midi() MidiNoteNumber {
	return A4.Add(OctavesBetween(f, A4Frequency))
}

// Equal reports whether f and o differ by less than 1e-4 Hz.
func (f Frequency) Equal(o Frequency) bool {
	return math.Abs(f.hz-o.hz) < frequencyTolerance
}

func (f Frequency) Greater(o Frequency) bool      { return f.hz > o.hz }
func (f Frequency) Less(o Frequency) bool         { return f.hz < o.hz }
func (f Frequency) LessEqual(o Frequency) bool    { return f.hz <= o.hz }
func (f Frequency) GreaterEqual(o Frequency) bool { return f.hz >= o.hz }

// String formats the frequency with three decimal places, e.g. "440.000 Hz".
func (f Frequency) String() string {
	return fmt.Sprintf("%.3f Hz", f.hz)
}

// OctavesBetween returns log2(numerator/denominator) as an interval. The
// result is negative when numerator is the lower frequency.
func OctavesBetween(numerator, denominator Frequency) Octaves {
	return NewOctaves(math.Log2(numerator.hz / denominator.hz))
}

// OctaveFrequencies returns the standard octave band center frequencies,
// 16 Hz through 16 kHz. The returned slice is a copy.
func OctaveFrequencies() []Frequency {
	return slices.Clone(octaveFrequencies)
}

// OctaveFrequencyLabels returns display labels matching OctaveFrequencies.
func OctaveFrequencyLabels() []string {
	return slices.Clone(octaveFrequencyLabels)
}
