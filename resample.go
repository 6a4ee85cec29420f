// SPDX-License-Identifier: EPL-2.0

package audunits

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audunits/audio"
	"github.com/ik5/audunits/units"
	"github.com/ik5/audunits/utils"
)

// ResampleToMono16 resamples src to targetRate, averages its channels and
// collects the result as 16-bit PCM. bufferSize is the read size in
// samples; values below 1 use 4096.
//
// For more control build the pipeline from audio.NewResampler and
// audio.NewMonoMixer directly.
func ResampleToMono16(src audio.Source, targetRate units.Frequency, bufferSize int) ([]int16, error) {
	resampler, err := audio.NewResampler(src, targetRate)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	mono := audio.NewMonoMixer(resampler)

	if bufferSize < 1 {
		bufferSize = 4096
	}

	// about two seconds before the first grow
	pcm16 := make([]int16, 0, int(2*targetRate.Value()))
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		for _, s := range buf[:n] {
			pcm16 = append(pcm16, utils.Float32ToInt16(s))
		}

		if errors.Is(err, io.EOF) {
			return pcm16, nil
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}
}
