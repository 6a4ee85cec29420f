// SPDX-License-Identifier: EPL-2.0

package assert

import (
	"errors"
	"strings"
	"testing"
)

func recoverError(t *testing.T, f func()) (err error) {
	t.Helper()

	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				t.Fatalf("panic value %T is not an error", r)
			}
			err = e
		}
	}()

	f()
	return nil
}

func TestPrecondition_Holds(t *testing.T) {
	t.Parallel()

	if err := recoverError(t, func() { Precondition(true, "never") }); err != nil {
		t.Errorf("Precondition(true) panicked: %v", err)
	}
}

func TestPrecondition_Violated(t *testing.T) {
	t.Parallel()

	err := recoverError(t, func() { Precondition(false, "frequency must be >= 0") })
	if err == nil {
		t.Fatal("Precondition(false) did not panic")
	}

	var pe *PreconditionError
	if !errors.As(err, &pe) {
		t.Fatalf("panic value = %T, want *PreconditionError", err)
	}

	if pe.Msg != "frequency must be >= 0" {
		t.Errorf("Msg = %q", pe.Msg)
	}

	if !strings.HasPrefix(err.Error(), "precondition violated: ") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestPreconditionf_Formats(t *testing.T) {
	t.Parallel()

	err := recoverError(t, func() { Preconditionf(false, "got %d", 42) })
	if err == nil {
		t.Fatal("Preconditionf(false) did not panic")
	}

	if err.Error() != "precondition violated: got 42" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestDebug_FollowsBuildTag(t *testing.T) {
	t.Parallel()

	err := recoverError(t, func() { Debug(false, "out of range") })

	if DebugEnabled && err == nil {
		t.Error("Debug(false) did not panic with wsdebug enabled")
	}

	if !DebugEnabled && err != nil {
		t.Errorf("Debug(false) panicked without wsdebug: %v", err)
	}
}
