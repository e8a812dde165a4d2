// Package quest wires line sources to the grid kernels and exposes every
// solvable quest part as a plain function returning a printable answer.
//
// SolvePart1 and SolvePart2 are the grid-radius entry points (quest 17):
// the sum within a fixed radius of the '@' cell, and the best expanding
// ring's sum × radius. Registry lists every entry, including the name-list
// rotation (quest 1) and knight-reach (quest 10) puzzles.
package quest
