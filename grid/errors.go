// SPDX-License-Identifier: MIT

package grid

import "errors"

// Every message is prefixed with "grid: ". Detection sites wrap these with
// method and coordinate context; callers match with errors.Is.
var (
	// ErrBadShape is returned when a requested shape has a negative dimension.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the grid.
	// Checked accessors (At/Set) return it; they never panic.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrRaggedLine indicates that a builder input line does not have the
	// same length as the first line.
	ErrRaggedLine = errors.New("grid: line length differs from first line")
)
