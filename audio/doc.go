// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives shared by the decoders,
// the file helpers and the generators.
//
// # Source Interface
//
// Everything that produces samples implements Source:
//
//	type Source interface {
//	    SampleRate() units.Frequency
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1, 1]. ReadSamples returns the
// number of values written, not frames, and io.EOF once the stream ends.
// The final samples may come together with io.EOF.
//
// # Building Blocks
//
//   - BufferSource streams an in-memory buffer such as generator output
//   - Resampler changes the sample rate with cubic interpolation
//   - MonoMixer averages all channels into one
//   - ChannelSelector keeps a single channel
//   - ReadAll drains a Source into per-channel slices
//
// Sources chain:
//
//	tone := signals.GenerateSine(units.Hz(440), units.Hz(48000), 1)
//	src := audio.NewBufferSource(tone, units.Hz(48000), 1)
//	r, err := audio.NewResampler(src, units.Hz(16000))
//
// # Format Registry
//
// Registry maps file extensions to decoders so callers can pick a decoder
// from a path:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Get("WAV")
//
// # Error Handling
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    process(buf[:n])
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
