// SPDX-License-Identifier: EPL-2.0

// Package signals generates deterministic test signals.
//
// Every generator is a pure function of frequency, sample rate and duration
// and returns a fresh mono buffer of float32 samples owned by the caller.
// The buffer length is round(duration * sampleRate) for all generators.
//
//	sine := signals.GenerateSine(units.Hz(440), units.Hz(44100), 1)
//	square := signals.GenerateSquare(units.Hz(440), units.Hz(44100), 1)
//	saw := signals.GenerateNonaliasingSawRampDown(units.Hz(110), units.Hz(48000), 0.5)
//
// # Preconditions
//
// Negative frequencies cannot be constructed in the first place. A sample
// rate of 0 Hz or a negative duration panics. The band-limited sawtooth
// additionally needs a frequency above 0 Hz and a duration above zero: the
// number of harmonics below Nyquist grows without bound as the frequency
// approaches zero.
//
// # Cost
//
// Sine and square are linear in the number of samples. The sawtooth sums
// every harmonic below Nyquist for every sample, which is
// samples * sampleRate / (2 * frequency) sine evaluations. Low fundamentals
// at high sample rates get expensive.
package signals
