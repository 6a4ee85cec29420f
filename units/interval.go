// SPDX-License-Identifier: EPL-2.0

package units

import (
	"fmt"
	"math"
)

// Ratio is the size of an interval unit relative to the octave.
// Num and Den must be positive.
type Ratio interface {
	Num() int64
	Den() int64
}

// OctaveRatio is the 1/1 unit.
type OctaveRatio struct{}

// SemitoneRatio is the 1/12 unit.
type SemitoneRatio struct{}

// CentRatio is the 1/1200 unit.
type CentRatio struct{}

func (OctaveRatio) Num() int64   { return 1 }
func (OctaveRatio) Den() int64   { return 1 }
func (SemitoneRatio) Num() int64 { return 1 }
func (SemitoneRatio) Den() int64 { return 12 }
func (CentRatio) Num() int64     { return 1 }
func (CentRatio) Den() int64     { return 1200 }

// Interval is a signed pitch distance counted in ticks of unit R.
type Interval[R Ratio] struct {
	ticks float64
}

type (
	Octaves   = Interval[OctaveRatio]
	Semitones = Interval[SemitoneRatio]
	Cents     = Interval[CentRatio]
)

// PitchInterval is satisfied by every Interval regardless of its unit.
// It lets frequencies and notes accept any unit without a type parameter.
type PitchInterval interface {
	FrequencyRatio() float64
	Semitones() Semitones
}

var (
	// Unison is the empty interval.
	Unison = NewSemitones(0)
	// OctaveUp is one octave expressed in semitones.
	OctaveUp = Cast[SemitoneRatio](NewOctaves(1))
)

func NewInterval[R Ratio](ticks float64) Interval[R] {
	return Interval[R]{ticks: ticks}
}

func NewOctaves(n float64) Octaves     { return Octaves{ticks: n} }
func NewSemitones(n float64) Semitones { return Semitones{ticks: n} }
func NewCents(n float64) Cents         { return Cents{ticks: n} }

// Cast converts i to the unit To. The scale factor is the reduced fraction
// From/To, so converting between units never goes through an intermediate
// unit.
func Cast[To, From Ratio](i Interval[From]) Interval[To] {
	num, den := ratioDivide[From, To]()
	return Interval[To]{ticks: i.ticks * float64(num) / float64(den)}
}

func ratioDivide[From, To Ratio]() (int64, int64) {
	var from From
	var to To

	num := from.Num() * to.Den()
	den := from.Den() * to.Num()
	g := gcd(num, den)

	return num / g, den / g
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// Count returns the number of ticks.
func (i Interval[R]) Count() float64 { return i.ticks }

// FrequencyRatio returns 2 raised to the interval in octaves: 2 for an
// octave up, 0.5 for an octave down.
func (i Interval[R]) FrequencyRatio() float64 {
	return math.Pow(2, Cast[OctaveRatio](i).ticks)
}

// Semitones returns the interval converted to semitones.
func (i Interval[R]) Semitones() Semitones {
	return Cast[SemitoneRatio](i)
}

func (i Interval[R]) Neg() Interval[R] { return Interval[R]{ticks: -i.ticks} }

func (i Interval[R]) Mul(x float64) Interval[R] { return Interval[R]{ticks: i.ticks * x} }

func (i Interval[R]) Add(o Interval[R]) Interval[R] { return Interval[R]{ticks: i.ticks + o.ticks} }

func (i Interval[R]) Abs() Interval[R] { return Interval[R]{ticks: math.Abs(i.ticks)} }

// Equal compares tick counts exactly. Intervals of different units must be
// cast first.
func (i Interval[R]) Equal(o Interval[R]) bool { return i.ticks == o.ticks }

func (i Interval[R]) Less(o Interval[R]) bool         { return i.ticks < o.ticks }
func (i Interval[R]) Greater(o Interval[R]) bool      { return i.ticks > o.ticks }
func (i Interval[R]) LessEqual(o Interval[R]) bool    { return i.ticks <= o.ticks }
func (i Interval[R]) GreaterEqual(o Interval[R]) bool { return i.ticks >= o.ticks }

// String prints the count with its unit, for example "7 semitones".
func (i Interval[R]) String() string {
	var r R
	switch {
	case r.Num() == 1 && r.Den() == 1:
		return fmt.Sprintf("%g octaves", i.ticks)
	case r.Num() == 1 && r.Den() == 12:
		return fmt.Sprintf("%g semitones", i.ticks)
	case r.Num() == 1 && r.Den() == 1200:
		return fmt.Sprintf("%g cents", i.ticks)
	default:
		return fmt.Sprintf("%g x %d/%d octaves", i.ticks, r.Num(), r.Den())
	}
}
