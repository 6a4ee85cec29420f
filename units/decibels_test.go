// SPDX-License-Identifier: EPL-2.0

package units

import "testing"

func TestDecibelsFullScale_Equal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b float64
		want bool
	}{
		{"identical", -6, -6, true},
		{"same tenth", 1.01, 1.04, true},
		{"neighbouring tenths", 1.04, 1.06, false},
		{"negative same tenth", -3.01, -2.98, true},
		{"around zero", -0.04, 0.04, true},
		{"far apart", -12, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := DBFS(tt.a).Equal(DBFS(tt.b)); got != tt.want {
				t.Errorf("DBFS(%v).Equal(DBFS(%v)) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// Equality is quantized to tenths while ordering compares raw values. Both
// facts are kept as they are; this test pins them down together.
func TestDecibelsFullScale_EqualButLess(t *testing.T) {
	t.Parallel()

	a, b := DBFS(1.01), DBFS(1.04)

	if !a.Equal(b) {
		t.Errorf("%v should equal %v", a, b)
	}

	if !a.Less(b) {
		t.Errorf("%v should be less than %v", a, b)
	}

	if a.GreaterEqual(b) {
		t.Errorf("%v should not be >= %v", a, b)
	}
}

func TestDecibelsFullScale_Ordering(t *testing.T) {
	t.Parallel()

	quiet, loud := DBFS(-24), DBFS(-6)

	if !loud.Greater(quiet) || quiet.Greater(loud) {
		t.Error("Greater() inconsistent")
	}

	if !quiet.Less(loud) || loud.Less(quiet) {
		t.Error("Less() inconsistent")
	}

	if !quiet.LessEqual(quiet) || !loud.GreaterEqual(quiet) {
		t.Error("LessEqual/GreaterEqual inconsistent")
	}
}

func TestDecibelsFullScale_Arithmetic(t *testing.T) {
	t.Parallel()

	if got := DBFS(-6).Neg(); got.Value() != 6 {
		t.Errorf("Neg() = %v, want 6", got.Value())
	}

	if got := DBFS(-6).Add(DBFS(-3)); !got.Equal(DBFS(-9)) {
		t.Errorf("Add() = %v, want -9 dBFS", got)
	}

	var zero DecibelsFullScale
	if !zero.Equal(DBFS(0)) {
		t.Errorf("zero value = %v, want 0 dBFS", zero)
	}
}

func TestDecibelsFullScale_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    DecibelsFullScale
		want string
	}{
		{DBFS(-6), "-6.0 dBFS"},
		{DBFS(0), "0.0 dBFS"},
		{DBFS(3.14), "3.1 dBFS"},
	}

	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
