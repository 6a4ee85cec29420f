// SPDX-License-Identifier: EPL-2.0

package units

import (
	"errors"
	"testing"

	"github.com/ik5/audunits/internal/assert"
)

// expectPrecondition fails the test unless f panics with a precondition error.
func expectPrecondition(t *testing.T, name string, f func()) {
	t.Helper()

	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("%s: expected precondition panic, got none", name)
			return
		}

		err, ok := r.(error)
		var pe *assert.PreconditionError
		if !ok || !errors.As(err, &pe) {
			t.Errorf("%s: panic value = %v, want *assert.PreconditionError", name, r)
		}
	}()

	f()
}

func skipInDebugBuilds(t *testing.T) {
	t.Helper()

	if assert.DebugEnabled {
		t.Skip("out-of-range input panics in wsdebug builds")
	}
}

func almostEqual(a, b, tolerance float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}
