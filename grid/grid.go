// SPDX-License-Identifier: MIT

// Package grid - row-major storage & accessors.
//
// Purpose:
//   - Keep a cache-friendly flat buffer with the explicit index formula r*cols + c.
//   - Safe public surface: At/Set return errors instead of panicking.
//   - A clearly separated fast path (Get/Put) for kernels whose loop limits
//     already guarantee valid coordinates.
//   - Deterministic scans: always row-major, rows ascending then columns.

package grid

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxNew = "New"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// gridErrorf wraps a sentinel with the method tag and callsite coordinates.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// Coordinate identifies a cell by row and column.
type Coordinate struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is a fixed-shape row-major 2D container.
//   - rows, cols hold the dimensions; both may be 0 (empty grid).
//   - data has length rows*cols at all times (offset = r*cols + c).
//
// The shape never changes after construction; cell values may be mutated.
type Grid[T comparable] struct {
	rows, cols int
	data       []T
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Grid[int])(nil)

// New creates a rows×cols grid with every cell set to T's zero value.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 2: allocate a zero-filled flat buffer.
//
// A 0×0 grid is legal: it is what FromLines produces for empty input.
//
// Complexity: O(rows×cols) time and memory.
func New[T comparable](rows, cols int) (*Grid[T], error) {
	if rows < 0 || cols < 0 {
		return nil, gridErrorf(ctxNew, rows, cols, ErrBadShape)
	}

	return &Grid[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Len returns the number of cells (rows×cols).
func (g *Grid[T]) Len() int { return len(g.data) }

// Empty reports whether the grid has no cells.
func (g *Grid[T]) Empty() bool { return len(g.data) == 0 }

// InBounds reports whether (row, col) lies inside the grid.
// Complexity: O(1).
func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Contains reports whether c lies inside the grid. The sentinel returned by
// FindFirst for an absent value is never contained.
func (g *Grid[T]) Contains(c Coordinate) bool {
	return g.InBounds(c.Row, c.Col)
}

// NotFound returns the sentinel coordinate {rows, cols} used by FindFirst
// to signal an absent value.
func (g *Grid[T]) NotFound() Coordinate {
	return Coordinate{Row: g.rows, Col: g.cols}
}

// indexOf validates (row, col) and returns the flat offset.
func (g *Grid[T]) indexOf(method string, row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, gridErrorf(method, row, col, ErrOutOfRange)
	}

	return row*g.cols + col, nil
}

// At returns the value at (row, col).
//
// Errors:
//   - ErrOutOfRange (wrapped with method and coordinates).
//
// Complexity: O(1).
func (g *Grid[T]) At(row, col int) (T, error) {
	idx, err := g.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return g.data[idx], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange (wrapped with method and coordinates).
//
// Complexity: O(1).
func (g *Grid[T]) Set(row, col int, v T) error {
	idx, err := g.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	g.data[idx] = v

	return nil
}

// Get is the unchecked read used on hot paths. The caller guarantees that
// 0<=row<Rows() and 0<=col<Cols(); an out-of-range column silently aliases
// a neighbouring row, and an offset outside the buffer panics.
func (g *Grid[T]) Get(row, col int) T {
	return g.data[row*g.cols+col]
}

// Put is the unchecked write counterpart of Get, with the same contract.
func (g *Grid[T]) Put(row, col int, v T) {
	g.data[row*g.cols+col] = v
}

// FindFirst returns the first coordinate, in row-major order, whose value
// equals v. When no cell matches it returns NotFound(), i.e. {rows, cols}.
//
// Determinism:
//   - Always the lexicographically smallest (row, then col) match.
//
// Complexity: O(rows×cols) worst case.
func (g *Grid[T]) FindFirst(v T) Coordinate {
	for idx, cell := range g.data {
		if cell == v {
			return Coordinate{Row: idx / g.cols, Col: idx % g.cols}
		}
	}

	return g.NotFound()
}

// Count returns how many cells equal v.
func (g *Grid[T]) Count(v T) int {
	n := 0
	for _, cell := range g.data {
		if cell == v {
			n++
		}
	}

	return n
}

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(row, col int, v T)) {
	var r, c int
	for r = 0; r < g.rows; r++ {
		for c = 0; c < g.cols; c++ {
			fn(r, c, g.data[r*g.cols+c])
		}
	}
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy with an independent backing buffer.
// Complexity: O(rows×cols).
func (g *Grid[T]) Clone() *Grid[T] {
	buf := make([]T, len(g.data))
	copy(buf, g.data)

	return &Grid[T]{rows: g.rows, cols: g.cols, data: buf}
}

// String renders one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
func (g *Grid[T]) String() string {
	var sb strings.Builder
	var r, c int
	for r = 0; r < g.rows; r++ {
		sb.WriteString(_fmtRowOpen)
		for c = 0; c < g.cols; c++ {
			if c > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprint(&sb, g.data[r*g.cols+c])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
