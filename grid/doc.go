// Package grid provides a fixed-shape, row-major 2D container and a builder
// that turns text lines into a grid of values.
//
// What:
//
//   - Grid[T] stores rows×cols values of any comparable type in one flat
//     slice (offset = row*cols + col).
//   - At/Set are the checked accessors: they return ErrOutOfRange instead
//     of panicking.
//   - Get/Put are the fast path for hot loops: no 2D validation, the caller
//     guarantees coordinates are in range.
//   - FindFirst scans in row-major order and returns the sentinel
//     Coordinate{rows, cols} when the value is absent.
//   - FromLines builds a grid from equal-length text lines with a
//     per-byte transform (Digits, DigitsWithMarker, Bytes).
//
// Complexity:
//
//   - New, Clone, Fill, FindFirst, FromLines: O(rows×cols).
//   - At, Set, Get, Put, InBounds: O(1).
//
// Errors:
//
//   - ErrBadShape: negative rows or cols.
//   - ErrOutOfRange: checked access outside the grid.
//   - ErrRaggedLine: builder input lines of differing lengths.
package grid
