// SPDX-License-Identifier: EPL-2.0

package units

import (
	"math"

	"github.com/ik5/audunits/internal/assert"
)

// Bounds describes the inclusive range of a ClosedRangeValue.
//
// Min and Max are expressed in units of 10^-Precision, so a range of
// [0, 100] with one decimal place is Min 0, Max 1000, Precision 1.
// Implementations are expected to be empty structs.
type Bounds interface {
	Min() int
	Max() int
	Precision() int
}

// ClosedRangeValue is a scalar that always lies within the range given by B.
//
// The zero value holds 0 regardless of B; use NewClosedRangeValue.
type ClosedRangeValue[B Bounds] struct {
	scaled float64
}

// NewClosedRangeValue clamps v into the range described by B.
// It never fails; wsdebug builds panic when v is out of range.
func NewClosedRangeValue[B Bounds](v float64) ClosedRangeValue[B] {
	var b B
	scaled := v * precisionMultiplier(b)
	lo, hi := float64(b.Min()), float64(b.Max())

	assert.Debug(scaled >= lo, "closed range value below minimum")
	assert.Debug(scaled <= hi, "closed range value above maximum")

	return ClosedRangeValue[B]{scaled: min(max(scaled, lo), hi)}
}

// Value returns the stored value with the precision scaling removed.
func (c ClosedRangeValue[B]) Value() float64 {
	var b B
	return c.scaled / precisionMultiplier(b)
}

// Float32 is Value narrowed to float32 for sample arithmetic.
func (c ClosedRangeValue[B]) Float32() float32 {
	return float32(c.Value())
}

// ClosedRangeMin returns the lower bound of B in user units.
func ClosedRangeMin[B Bounds]() float64 {
	var b B
	return float64(b.Min()) / precisionMultiplier(b)
}

// ClosedRangeMax returns the upper bound of B in user units.
func ClosedRangeMax[B Bounds]() float64 {
	var b B
	return float64(b.Max()) / precisionMultiplier(b)
}

func precisionMultiplier(b Bounds) float64 {
	return math.Pow(10, float64(b.Precision()))
}

// NoteRange bounds MIDI note numbers to [0, 127].
type NoteRange struct{}

func (NoteRange) Min() int       { return 0 }
func (NoteRange) Max() int       { return 127 }
func (NoteRange) Precision() int { return 0 }
