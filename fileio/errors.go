// SPDX-License-Identifier: EPL-2.0

package fileio

import "errors"

var (
	// ErrCannotOpenFile is returned when a file is missing, has an unknown
	// extension or cannot be decoded.
	ErrCannotOpenFile = errors.New("could not open file")

	ErrNoInputFile = errors.New("no input audio file given")
)
