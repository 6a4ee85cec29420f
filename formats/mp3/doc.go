// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 Layer 3 files through
// github.com/hajimehoshi/go-mp3.
//
// The decoder always reports two channels, which is what go-mp3 produces
// even for mono files. Use audio.MonoMixer or audio.ChannelSelector to
// reduce it:
//
//	src, err := mp3.Decoder{}.Decode(file)
//	mono := audio.NewMonoMixer(src)
//
// Writing MP3 is not supported.
package mp3
