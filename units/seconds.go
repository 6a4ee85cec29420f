// SPDX-License-Identifier: EPL-2.0

package units

import "time"

// Seconds is a duration in seconds as used by the signal generators.
type Seconds float64

// SecondsOf converts a time.Duration.
func SecondsOf(d time.Duration) Seconds {
	return Seconds(d.Seconds())
}

func (s Seconds) Duration() time.Duration {
	return time.Duration(float64(s) * float64(time.Second))
}
