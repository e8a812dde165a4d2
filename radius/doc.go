// Package radius implements two reductions over a digit grid centred on the
// cell holding CenterValue.
//
// What:
//
//   - Sum adds every cell within a fixed Euclidean radius R of the center
//     (dr²+dc² <= R²).
//   - Rings grows the radius from 1 to Rows()/2, each step summing only the
//     cells not counted by an earlier step, and reports the step with the
//     largest sum together with BestSum × BestRadius.
//
// Complexity:
//
//   - Sum:   O(W×H), no allocation.
//   - Rings: O(W×H×S) for S = Rows()/2 steps (every step re-scans the grid),
//     Memory: O(W×H) for the visited grid.
//
// Options:
//
//   - WithRadius, WithMaxRadius, WithOnCell, WithOnRing.
//
// Errors:
//
//   - ErrGridNil: nil grid.
//   - ErrCenterNotFound: non-empty grid without a center cell.
//   - ErrOptionViolation: negative radius options.
//
// An empty (0×0) grid is not an error: both kernels report zero.
package radius
