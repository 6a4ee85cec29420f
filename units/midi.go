// SPDX-License-Identifier: EPL-2.0

package units

import (
	"fmt"
	"math"
)

// A4 is note 69, tuned to A4Frequency.
var A4 = NewMidiNoteNumber(69)

// MidiNoteNumber is a note index clamped to [0, 127]. Fractional values are
// kept so that detuned pitches survive a round trip through Frequency.
type MidiNoteNumber struct {
	note ClosedRangeValue[NoteRange]
}

// NewMidiNoteNumber clamps n into [0, 127].
func NewMidiNoteNumber(n float64) MidiNoteNumber {
	return MidiNoteNumber{note: NewClosedRangeValue[NoteRange](n)}
}

func (m MidiNoteNumber) Value() float64 { return m.note.Value() }

// Hz returns the equal-tempered frequency of the note.
func (m MidiNoteNumber) Hz() Frequency {
	return A4Frequency.TransposedBy(m.Sub(A4))
}

// Sub returns the distance from o to m.
func (m MidiNoteNumber) Sub(o MidiNoteNumber) Semitones {
	return NewSemitones(m.Value() - o.Value())
}

// Add moves the note by an interval of any unit. The interval is converted
// to semitones first and the result is clamped.
func (m MidiNoteNumber) Add(i PitchInterval) MidiNoteNumber {
	return NewMidiNoteNumber(m.Value() + i.Semitones().Count())
}

// SubSemitones moves the note down by s.
func (m MidiNoteNumber) SubSemitones(s Semitones) MidiNoteNumber {
	return NewMidiNoteNumber(m.Value() - s.Count())
}

// Equal reports whether the note numbers differ by less than 1e-4.
func (m MidiNoteNumber) Equal(o MidiNoteNumber) bool {
	return math.Abs(m.Value()-o.Value()) < frequencyTolerance
}

func (m MidiNoteNumber) String() string {
	return fmt.Sprintf("MIDI %g", m.Value())
}
