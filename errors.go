// SPDX-License-Identifier: EPL-2.0

package audunits

import "errors"

var ErrUnknownWaveform = errors.New("unknown waveform")
