package grid

import "fmt"

const ctxFromLines = "FromLines"

// Digits maps '0'..'9' to 0..9. Other bytes are not rejected (they map to
// int(b)-'0'); inputs carrying a marker byte should use DigitsWithMarker.
func Digits(b byte) int {
	return int(b) - '0'
}

// DigitsWithMarker returns a transform that maps marker to 0 and every
// other byte through Digits.
func DigitsWithMarker(marker byte) func(byte) int {
	return func(b byte) int {
		if b == marker {
			return 0
		}

		return Digits(b)
	}
}

// Bytes is the identity transform.
func Bytes(b byte) byte { return b }

// FromLines builds a grid with one row per line and one column per byte,
// applying fn to every byte.
//
// Implementation:
//   - Stage 1: empty input yields a 0×0 grid and no error.
//   - Stage 2: rows = len(lines), cols = len(lines[0]); every line must have
//     exactly cols bytes, else ErrRaggedLine (fail fast, nothing returned).
//   - Stage 3: cell (r, c) = fn(lines[r][c]).
//
// Complexity: O(rows×cols) time and memory.
func FromLines[T comparable](lines []string, fn func(byte) T) (*Grid[T], error) {
	if len(lines) == 0 {
		return New[T](0, 0)
	}

	rows, cols := len(lines), len(lines[0])
	for i, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%s: line %d has %d bytes, want %d: %w",
				ctxFromLines, i, len(line), cols, ErrRaggedLine)
		}
	}

	g, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for r, line := range lines {
		for c := 0; c < cols; c++ {
			g.data[r*cols+c] = fn(line[c])
		}
	}

	return g, nil
}
