package quest

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/ringsum/grid"
	"github.com/katalvlaran/ringsum/radius"
)

const (
	radiusQuest = 17

	// centerMarker is the input byte of the center cell.
	centerMarker = '@'
)

// checkDigits rejects any byte that is neither a digit nor the center marker.
func checkDigits(rows []string) error {
	for r, line := range rows {
		for c := 0; c < len(line); c++ {
			b := line[c]
			if b != centerMarker && (b < '0' || b > '9') {
				return fmt.Errorf("quest %d: byte %q at (%d,%d): %w", radiusQuest, b, r, c, ErrMalformedInput)
			}
		}
	}

	return nil
}

// loadDigits builds the quest 17 digit grid for part.
func (s *Solver) loadDigits(part int) (*grid.Grid[int], error) {
	rows, err := s.input(radiusQuest, part)
	if err != nil {
		return nil, err
	}
	if err = checkDigits(rows); err != nil {
		return nil, err
	}
	g, err := grid.FromLines(rows, grid.DigitsWithMarker(centerMarker))
	if err != nil {
		return nil, err
	}
	s.Logger.Debug("Grid loaded.", "rows", g.Rows(), "cols", g.Cols(), "center", g.FindFirst(radius.CenterValue))

	return g, nil
}

// SolvePart1 sums every cell within Radius of the center.
func (s *Solver) SolvePart1() (string, error) {
	g, err := s.loadDigits(1)
	if err != nil {
		return "", err
	}
	sum, err := radius.Sum(g, radius.WithRadius(s.Radius))
	if err != nil {
		return "", err
	}

	return strconv.Itoa(sum), nil
}

// SolvePart2 returns BestSum × BestRadius of the expanding ring search.
func (s *Solver) SolvePart2() (string, error) {
	g, err := s.loadDigits(2)
	if err != nil {
		return "", err
	}
	res, err := radius.Rings(g, radius.WithOnRing(func(r, sum int) {
		s.Logger.Debug("Ring step.", "radius", r, "sum", sum)
	}))
	if err != nil {
		return "", err
	}
	s.Logger.Debug("Best ring.", "radius", res.BestRadius, "sum", res.BestSum)

	return strconv.Itoa(res.Product), nil
}
