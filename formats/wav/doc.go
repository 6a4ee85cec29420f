// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files through github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts integer PCM at 8, 16, 24 or 32 bits with any channel
// count and sample rate:
//
//	file, _ := os.Open("tone.wav")
//	src, err := wav.Decoder{}.Decode(file)
//
// Samples come out interleaved and normalized to [-1, 1]. Inputs that
// cannot seek are buffered in memory first, since the go-audio decoder
// jumps between chunks.
//
// # Writing
//
// Writer stores mono 16-bit PCM, the format used for rendered test
// signals and processor output:
//
//	w := wav.Writer{Path: "out/sine", SampleRate: units.Hz(48000)}
//	err := w.Write(samples) // creates out/sine.wav
//
// The ".wav" extension is appended when missing, parent directories are
// created and an existing file is truncated.
package wav
