// SPDX-License-Identifier: EPL-2.0

//go:build !wsdebug

package assert

// DebugEnabled reports whether Debug checks are active.
const DebugEnabled = false
