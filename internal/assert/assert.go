// SPDX-License-Identifier: EPL-2.0

// Package assert holds the two checking layers used by the value types and
// generators.
//
// Precondition is always active and panics: it marks programmer errors such as
// a negative frequency or a zero divisor. Debug is compiled in only with the
// wsdebug build tag and is used where release builds must keep going (the
// closed range value clamps instead of failing).
package assert

import "fmt"

// PreconditionError is the panic value raised by Precondition and Debug.
type PreconditionError struct {
	Msg string
}

func (e *PreconditionError) Error() string {
	return "precondition violated: " + e.Msg
}

// Precondition panics with a *PreconditionError when cond is false.
func Precondition(cond bool, msg string) {
	if !cond {
		panic(&PreconditionError{Msg: msg})
	}
}

// Preconditionf is Precondition with a formatted message. The message is only
// built when the check fails.
func Preconditionf(cond bool, format string, args ...any) {
	if !cond {
		panic(&PreconditionError{Msg: fmt.Sprintf(format, args...)})
	}
}

// Debug behaves like Precondition in wsdebug builds and is a no-op otherwise.
func Debug(cond bool, msg string) {
	if DebugEnabled && !cond {
		panic(&PreconditionError{Msg: msg})
	}
}
