// Package ringsum is a small numeric grid-analysis kernel with a puzzle
// runner around it.
//
// What:
//
//   - grid/   — generic row-major Grid[T], checked and fast accessors,
//     FindFirst, and FromLines to build a grid from text rows.
//   - radius/ — Sum (cells within a fixed radius of the center) and Rings
//     (best expanding ring, reported as sum × radius).
//   - lines/  — line sources: input files keyed by quest and part, or memory.
//   - config/ — optional HCL config file and logger construction.
//   - quest/  — entry points (SolvePart1, SolvePart2) and the entry registry.
//
// Quick ASCII example (radius 1 around '@' covers the four 2s):
//
//	1 2 1
//	2 @ 2   → Sum = 8
//	1 2 1
//
// Command line:
//
//	go run ./cmd/ringsum 17 1
//	go run ./cmd/ringsum -data ./inputs -log-level debug q17_2
package ringsum
