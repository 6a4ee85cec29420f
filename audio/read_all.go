// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// maxEmptyReads bounds consecutive reads returning neither data nor an error.
const maxEmptyReads = 100

// ReadAll drains src and returns its samples split per channel. bufSize is
// the read size in frames; values below 1 fall back to src.BufSize().
func ReadAll(src Source, bufSize int) ([][]float32, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, ErrInvalidChannel
	}

	if bufSize < 1 {
		bufSize = max(src.BufSize()/channels, 1)
	}

	out := make([][]float32, channels)
	buf := make([]float32, bufSize*channels)
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		frames := n / channels
		for f := range frames {
			for c := range channels {
				out[c] = append(out[c], buf[f*channels+c])
			}
		}

		if errors.Is(err, io.EOF) {
			return out, nil
		}

		if err != nil {
			return out, fmt.Errorf("reading samples: %w", err)
		}

		if n > 0 {
			empty = 0
			continue
		}

		empty++
		if empty >= maxEmptyReads {
			return out, io.ErrNoProgress
		}
	}
}
