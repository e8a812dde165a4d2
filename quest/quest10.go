package quest

import (
	"strconv"

	"github.com/katalvlaran/ringsum/grid"
)

const (
	knightQuest = 10

	// knightMoves is how many moves the knight may make.
	knightMoves = 4

	sheep = 'S'
)

// knightOffsets are the eight (dr, dc) knight jumps.
var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// knightReach returns every cell reachable from start in at most moves
// knight jumps, as a visited grid. The search is layered: layer k holds the
// cells first dequeued at distance k.
func knightReach(rows, cols int, start grid.Coordinate, moves int) (*grid.Grid[bool], error) {
	visited, err := grid.New[bool](rows, cols)
	if err != nil {
		return nil, err
	}
	queue := []grid.Coordinate{start}
	for layer := 0; layer <= moves && len(queue) > 0; layer++ {
		var next []grid.Coordinate
		for _, cur := range queue {
			if visited.Get(cur.Row, cur.Col) {
				continue
			}
			visited.Put(cur.Row, cur.Col, true)
			for _, d := range knightOffsets {
				nr, nc := cur.Row+d[0], cur.Col+d[1]
				if !visited.InBounds(nr, nc) || visited.Get(nr, nc) {
					continue
				}
				next = append(next, grid.Coordinate{Row: nr, Col: nc})
			}
		}
		queue = next
	}

	return visited, nil
}

// KnightSheep counts the sheep within knightMoves jumps of the board middle.
func (s *Solver) KnightSheep() (string, error) {
	rows, err := s.input(knightQuest, 1)
	if err != nil {
		return "", err
	}
	board, err := grid.FromLines(rows, grid.Bytes)
	if err != nil {
		return "", err
	}
	if board.Empty() {
		return "0", nil
	}

	start := grid.Coordinate{Row: board.Rows() / 2, Col: board.Cols() / 2}
	reach, err := knightReach(board.Rows(), board.Cols(), start, knightMoves)
	if err != nil {
		return "", err
	}
	count := 0
	board.Each(func(r, c int, b byte) {
		if b == sheep && reach.Get(r, c) {
			count++
		}
	})
	s.Logger.Debug("Knight reach.", "start", start, "cells", reach.Count(true), "sheep", count)

	return strconv.Itoa(count), nil
}
