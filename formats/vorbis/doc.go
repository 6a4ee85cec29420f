// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams through
// github.com/jfreymuth/oggvorbis.
//
//	file, _ := os.Open("ambience.ogg")
//	src, err := vorbis.Decoder{}.Decode(file)
//
// Channel count and sample rate come from the stream header. Encoding is
// not supported.
package vorbis
