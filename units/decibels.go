// SPDX-License-Identifier: EPL-2.0

package units

import (
	"fmt"
	"math"
)

// DecibelsFullScale is a level in dBFS. It has no range restriction.
type DecibelsFullScale struct {
	value float64
}

// DBFS returns a level of v decibels relative to full scale.
func DBFS(v float64) DecibelsFullScale {
	return DecibelsFullScale{value: v}
}

func (d DecibelsFullScale) Value() float64 { return d.value }

func (d DecibelsFullScale) Neg() DecibelsFullScale {
	return DecibelsFullScale{value: -d.value}
}

func (d DecibelsFullScale) Add(o DecibelsFullScale) DecibelsFullScale {
	return DecibelsFullScale{value: d.value + o.value}
}

// Equal reports whether both levels round to the same tenth of a decibel.
//
// Ordering uses the raw values, so two levels can be Equal while one is
// also Less than the other (1.01 and 1.04 dBFS, for example).
func (d DecibelsFullScale) Equal(o DecibelsFullScale) bool {
	return tenths(d.value) == tenths(o.value)
}

func tenths(v float64) int64 {
	return int64(math.Round(10 * v))
}

func (d DecibelsFullScale) Greater(o DecibelsFullScale) bool      { return d.value > o.value }
func (d DecibelsFullScale) Less(o DecibelsFullScale) bool         { return d.value < o.value }
func (d DecibelsFullScale) LessEqual(o DecibelsFullScale) bool    { return d.value <= o.value }
func (d DecibelsFullScale) GreaterEqual(o DecibelsFullScale) bool { return d.value >= o.value }

// String formats the level with one decimal place, e.g. "-6.0 dBFS".
func (d DecibelsFullScale) String() string {
	return fmt.Sprintf("%.1f dBFS", d.value)
}
