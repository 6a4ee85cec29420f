// SPDX-License-Identifier: EPL-2.0

package signals

import (
	"math"

	"github.com/ik5/audunits/internal/assert"
	"github.com/ik5/audunits/units"
	"github.com/ik5/audunits/utils"
)

const twoPi = 2 * math.Pi

// SamplesCount returns round(duration * sampleRate). It panics on a negative
// duration.
func SamplesCount(sampleRate units.Frequency, duration units.Seconds) int {
	assert.Preconditionf(duration >= 0, "negative duration: %v s", float64(duration))
	return int(math.Round(float64(duration) * sampleRate.Value()))
}

// GenerateSine returns a sine wave starting at phase 0.
func GenerateSine(frequency, sampleRate units.Frequency, duration units.Seconds) []float32 {
	assert.Precondition(sampleRate.Greater(units.Hz(0)), "sample rate must be above 0 Hz")

	result := make([]float32, SamplesCount(sampleRate, duration))
	phaseIncrement := twoPi * frequency.Value() / sampleRate.Value()

	phase := 0.0
	for i := range result {
		result[i] = float32(math.Sin(phase))
		phase = math.Mod(phase+phaseIncrement, twoPi)
	}

	return result
}

// GenerateSquare returns the sign of GenerateSine sample by sample. Samples
// where the sine is exactly zero stay 0.
func GenerateSquare(frequency, sampleRate units.Frequency, duration units.Seconds) []float32 {
	result := GenerateSine(frequency, sampleRate, duration)
	for i, s := range result {
		result[i] = utils.Sign(s)
	}

	return result
}

// GenerateNonaliasingSawRampDown returns a falling sawtooth built from every
// harmonic below Nyquist:
//
//	x[n] = 2/pi * sum_{k=1..N} (-1)^k / k * sin(k * w0 * n)
//
// with w0 = 2*pi*f/fs and N = floor(fs / (2f)). See M. Pluta, "Sound
// Synthesis for Music Reproduction and Performance", formula 2.1.
func GenerateNonaliasingSawRampDown(frequency, sampleRate units.Frequency, duration units.Seconds) []float32 {
	assert.Precondition(frequency.Greater(units.Hz(0)), "sawtooth frequency must be above 0 Hz")
	assert.Precondition(sampleRate.Greater(units.Hz(0)), "sample rate must be above 0 Hz")
	assert.Precondition(duration > 0, "duration must be above 0 s")

	samplesCount := SamplesCount(sampleRate, duration)
	acc := make([]float64, samplesCount)

	harmonicsCount := HarmonicsBelowNyquist(frequency, sampleRate)
	omegaFundamental := twoPi * frequency.Value() / sampleRate.Value()

	for k := 1; k <= harmonicsCount; k++ {
		sign := -1.0
		if k%2 == 0 {
			sign = 1.0
		}
		gain := sign / float64(k)
		omega := omegaFundamental * float64(k)

		for n := range acc {
			acc[n] += gain * math.Sin(omega*float64(n))
		}
	}

	result := make([]float32, samplesCount)
	for n, v := range acc {
		result[n] = float32(v * 2 / math.Pi)
	}

	return result
}

// HarmonicsBelowNyquist returns floor((sampleRate/2) / frequency).
func HarmonicsBelowNyquist(frequency, sampleRate units.Frequency) int {
	assert.Precondition(frequency.Greater(units.Hz(0)), "frequency must be above 0 Hz")
	return int(sampleRate.Div(2).Value() / frequency.Value())
}
