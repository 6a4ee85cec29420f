// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files through github.com/go-audio/aiff.
//
// Integer PCM at 8, 16, 24 or 32 bits is supported. AIFF stores samples
// big-endian; the returned audio.Source yields the usual interleaved
// float32 values in [-1, 1]:
//
//	file, _ := os.Open("loop.aiff")
//	src, err := aiff.Decoder{}.Decode(file)
//
// Inputs that cannot seek are read into memory first.
package aiff
