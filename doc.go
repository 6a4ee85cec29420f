// SPDX-License-Identifier: EPL-2.0

// Package audunits provides strongly typed audio quantities and test signal
// generation for DSP development in Go.
//
// The building blocks live in subpackages:
//   - units: Frequency, MidiNoteNumber, DecibelsFullScale, pitch intervals
//     and range-limited values
//   - signals: sine, square and band-limited sawtooth generators
//   - audio: streaming Source primitives, resampling and channel mixing
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis: decoders,
//     plus a WAV writer
//   - fileio: whole-file loading and the offline processor harness
//   - stream: adapters for github.com/gopxl/beep
//   - dispatch: a callback loop standing in for a message thread
//
// # Quick Start
//
// Render one second of a band-limited sawtooth at the pitch of MIDI note 57
// and store it as WAV:
//
//	note := units.NewMidiNoteNumber(57)
//	err := audunits.WriteTestSignal("renders/saw.wav", audunits.Saw,
//	    note.Hz(), units.KHz(48), 1)
//
// Frequencies transpose by any interval unit:
//
//	fifth := units.NewSemitones(7)
//	e5 := units.A4Frequency.TransposedBy(fifth) // about 659.255 Hz
//
// # Decoding and Resampling
//
// ResampleToMono16 turns any decoded Source into mono 16-bit PCM at a new
// rate:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	pcm, err := audunits.ResampleToMono16(src, units.Hz(8000), 4096)
package audunits
