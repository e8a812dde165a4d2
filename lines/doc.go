// Package lines supplies the text rows of a puzzle input, keyed by quest
// and part number.
//
// FileSource reads Dir/Pattern files (default "data/quest%02d_%d.txt"); a
// missing file is not an error and yields no lines. Static serves inputs
// from memory.
package lines
