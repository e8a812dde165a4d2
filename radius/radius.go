// SPDX-License-Identifier: MIT

package radius

import (
	"fmt"

	"github.com/katalvlaran/ringsum/grid"
)

// locate validates g and returns its center. ok is false for an empty grid,
// which callers report as a zero result.
func locate(method string, g *grid.Grid[int]) (center grid.Coordinate, ok bool, err error) {
	if g == nil {
		return center, false, ErrGridNil
	}
	if g.Empty() {
		return center, false, nil
	}
	center = g.FindFirst(CenterValue)
	if !g.Contains(center) {
		return center, false, fmt.Errorf("%s: %dx%d grid: %w", method, g.Rows(), g.Cols(), ErrCenterNotFound)
	}

	return center, true, nil
}

// distSq is the squared Euclidean distance between (r, c) and center.
func distSq(r, c int, center grid.Coordinate) int {
	dr, dc := r-center.Row, c-center.Col

	return dr*dr + dc*dc
}

// reach is a radius whose disc covers every cell of g from any center.
func reach(g *grid.Grid[int]) int {
	return g.Rows() + g.Cols()
}

// Sum returns the total of all cells within the configured radius of the
// center cell. The grid is not modified.
//
// Implementation:
//   - Stage 1: gather options (WithRadius, default DefaultRadius). A radius
//     beyond Rows()+Cols() already covers the grid and is clamped there.
//   - Stage 2: locate the center via FindFirst(CenterValue).
//   - Stage 3: scan every cell row-major; add it when dr²+dc² <= R².
//
// Errors:
//   - ErrGridNil, ErrCenterNotFound, ErrOptionViolation.
//
// An empty grid returns 0 and no error.
//
// Complexity: O(W×H) time, O(1) extra memory.
func Sum(g *grid.Grid[int], opts ...Option) (int, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return 0, err
	}
	center, ok, err := locate("Sum", g)
	if !ok {
		return 0, err
	}

	rad := min(o.Radius, reach(g))
	limit := rad * rad
	total := 0
	var r, c int
	for r = 0; r < g.Rows(); r++ {
		for c = 0; c < g.Cols(); c++ {
			if distSq(r, c, center) > limit {
				continue
			}
			v := g.Get(r, c)
			total += v
			o.OnCell(grid.Coordinate{Row: r, Col: c}, v)
		}
	}

	return total, nil
}

// Rings finds the radius step whose newly covered cells sum to the maximum.
//
// Implementation:
//   - Stage 1: gather options; locate the center; allocate the visited grid
//     with only the center marked (it holds 0 and never joins a ring).
//   - Stage 2: for radius 1..Rows()/2 (or MaxRadius, clamped to
//     Rows()+Cols() where every cell is already visited), sum every unvisited
//     cell with dr²+dc² <= radius², marking it visited. Each step scans the
//     whole grid.
//   - Stage 3: a step sum strictly greater than the best so far (seeded at
//     -1) replaces it; ties keep the smaller radius.
//
// Errors:
//   - ErrGridNil, ErrCenterNotFound, ErrOptionViolation.
//
// An empty grid returns a zero Result and no error. When no step runs
// (Rows() < 2 without MaxRadius) Product is 0.
//
// Complexity: O(W×H×S) time, O(W×H) memory.
func Rings(g *grid.Grid[int], opts ...Option) (Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return Result{}, err
	}
	center, ok, err := locate("Rings", g)
	if !ok {
		return Result{}, err
	}

	visited, err := grid.New[bool](g.Rows(), g.Cols())
	if err != nil {
		return Result{}, err
	}
	visited.Put(center.Row, center.Col, true)

	steps := g.Rows() / 2
	if o.MaxRadius > 0 {
		steps = min(o.MaxRadius, reach(g))
	}

	res := Result{
		BestSum:  bestUnset,
		StepSums: make([]int, 0, steps),
		Visited:  visited,
	}
	var radius, r, c int
	for radius = 1; radius <= steps; radius++ {
		limit := radius * radius
		sum := 0
		for r = 0; r < g.Rows(); r++ {
			for c = 0; c < g.Cols(); c++ {
				if visited.Get(r, c) || distSq(r, c, center) > limit {
					continue
				}
				sum += g.Get(r, c)
				visited.Put(r, c, true)
			}
		}
		res.StepSums = append(res.StepSums, sum)
		o.OnRing(radius, sum)

		if sum > res.BestSum {
			res.BestSum = sum
			res.BestRadius = radius
		}
	}
	res.Product = res.BestSum * res.BestRadius

	return res, nil
}
