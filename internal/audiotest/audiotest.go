// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fixtures shared by package tests.
package audiotest

import (
	"math"
	"testing"

	"github.com/ik5/audunits/formats/wav"
	"github.com/ik5/audunits/signals"
	"github.com/ik5/audunits/units"
)

// WriteSineWAV renders a sine to a mono 16-bit WAV file at path and returns
// the rendered samples.
func WriteSineWAV(tb testing.TB, path string, frequency, sampleRate units.Frequency, duration units.Seconds) []float32 {
	tb.Helper()

	samples := signals.GenerateSine(frequency, sampleRate, duration)
	if err := wav.WriteToFile(path, samples, sampleRate); err != nil {
		tb.Fatalf("writing fixture %s: %v", path, err)
	}

	return samples
}

// AssertClose fails when the slices differ in length or any pair of samples
// differs by more than tolerance.
func AssertClose(tb testing.TB, got, want []float32, tolerance float64) {
	tb.Helper()

	if len(got) != len(want) {
		tb.Fatalf("got %d samples, want %d", len(got), len(want))
	}

	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > tolerance {
			tb.Fatalf("sample %d = %v, want %v (tolerance %v)", i, got[i], want[i], tolerance)
		}
	}
}
