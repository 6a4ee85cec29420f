// SPDX-License-Identifier: EPL-2.0

// Package fileio loads audio files into memory and runs offline
// processors over them.
//
// Reader picks a decoder from the file extension and keeps one float32
// slice per channel:
//
//	r := fileio.NewReader()
//	if err := r.LoadFile("drums.wav"); err != nil {
//	    return err
//	}
//	left := r.Channel(0)
//
// ProcessorFileIOTest feeds the first channel of an input file through a
// Processor in a single block and stores the result next to the input as
// "<input>_<name>Output.wav". It is meant for listening tests of DSP code.
package fileio
