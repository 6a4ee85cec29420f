// SPDX-License-Identifier: EPL-2.0

// Package units provides strongly typed audio-domain values.
//
// The package covers the units every generator and file writer in this module
// is expressed in:
//   - Frequency for hertz values (never negative)
//   - Interval for pitch distances in octaves, semitones or cents
//   - MidiNoteNumber for note indices clamped to [0, 127]
//   - DecibelsFullScale for signed levels relative to full scale
//   - ClosedRangeValue for any scalar that must stay inside a fixed range
//   - Seconds for durations passed to generators
//
// All values are immutable and safe to share between goroutines.
//
// # Intervals
//
// The unit of an Interval is part of its type, so mixing units is a compile
// error rather than a silent coercion:
//
//	octave := units.NewOctaves(1)
//	semis := units.Cast[units.SemitoneRatio](octave) // 12 semitones
//	semis.Equal(units.NewCents(1200))                // does not compile
//
// # Frequencies and notes
//
//	a5 := units.Hz(440).TransposedBy(units.NewOctaves(1)) // 880 Hz
//	note := a5.Midi()                                      // note 81
//	note.Hz()                                              // 880 Hz
//
// Tuning is fixed to twelve-tone equal temperament anchored at A4 = note 69 =
// 440 Hz.
//
// # Preconditions
//
// Constructing a negative Frequency or dividing one by zero is a programming
// error and panics. Out-of-range closed range values and note numbers never
// fail: they are clamped to the nearest bound. Building with the wsdebug tag
// additionally panics on out-of-range closed range input so mistakes surface
// during development.
package units
