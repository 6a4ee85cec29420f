// SPDX-License-Identifier: EPL-2.0

package utils

// pcm16Scale maps full scale to the largest positive 16-bit value so that
// +1 and -1 stay symmetric.
const pcm16Scale = 32767.0

// Float32ToInt16 converts a sample in [-1, 1] to 16-bit PCM. Input outside
// the range is clamped.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * pcm16Scale)
}

// Int16ToFloat32 is the inverse of Float32ToInt16 up to rounding.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / pcm16Scale
}

// Float32sToPCM16 converts src into 16-bit PCM values stored as int, the
// sample type of go-audio buffers. It writes min(len(dst), len(src)) values
// and returns that count.
func Float32sToPCM16(dst []int, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = int(Float32ToInt16(src[i]))
	}

	return n
}

// PCMToFloat32s converts integer PCM of the given bit depth into float32
// samples in [-1, 1). It writes min(len(dst), len(src)) values and returns
// that count. Unknown bit depths are treated as 16-bit.
func PCMToFloat32s(dst []float32, src []int, bitDepth int) int {
	var scale float32
	switch bitDepth {
	case 8:
		scale = 128
	case 24:
		scale = 8388608
	case 32:
		scale = 2147483648
	default:
		scale = 32768
	}

	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float32(src[i]) / scale
	}

	return n
}

// PCM16LEToFloat32s decodes little-endian 16-bit PCM bytes, the output of
// go-mp3, into float32 samples. A trailing odd byte is ignored. It returns
// the number of samples written.
func PCM16LEToFloat32s(dst []float32, src []byte) int {
	n := min(len(dst), len(src)/2)
	for i := range n {
		v := int16(uint16(src[2*i]) | uint16(src[2*i+1])<<8)
		dst[i] = float32(v) / 32768
	}

	return n
}
