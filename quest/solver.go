// SPDX-License-Identifier: MIT

package quest

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/ringsum/lines"
	"github.com/katalvlaran/ringsum/radius"
)

// Solver runs quest entries against one line source.
type Solver struct {
	// Source supplies the input rows for every quest part.
	Source lines.Source
	// Logger receives progress at debug level and results at info level.
	Logger *slog.Logger
	// Radius is the fixed radius of quest 17 part 1.
	Radius int
}

// NewSolver returns a Solver with DefaultRadius. A nil logger means slog.Default().
func NewSolver(src lines.Source, logger *slog.Logger) *Solver {
	if logger == nil {
		logger = slog.Default()
	}

	return &Solver{Source: src, Logger: logger, Radius: radius.DefaultRadius}
}

// Solve runs the registered entry for (quest, part).
func (s *Solver) Solve(quest, part int) (string, error) {
	e, err := Lookup(quest, part)
	if err != nil {
		return "", err
	}
	out, err := e.Run(s)
	if err != nil {
		return "", fmt.Errorf("%s: %w", e.Name, err)
	}
	s.Logger.Info("Solved.", "entry", e.Name, "answer", out)

	return out, nil
}

// input fetches the rows for (quest, part).
func (s *Solver) input(quest, part int) ([]string, error) {
	rows, err := s.Source.Lines(quest, part)
	if err != nil {
		return nil, fmt.Errorf("quest: input for quest %d part %d: %w", quest, part, err)
	}

	return rows, nil
}

// defaultSolver reads from data/ with the default logger.
func defaultSolver() *Solver {
	return NewSolver(&lines.FileSource{}, nil)
}

// SolvePart1 reads data/quest17_1.txt and returns the radius-10 sum around
// the '@' cell as a decimal string.
func SolvePart1() (string, error) {
	return defaultSolver().SolvePart1()
}

// SolvePart2 reads data/quest17_2.txt and returns the best expanding ring's
// sum × radius as a decimal string.
func SolvePart2() (string, error) {
	return defaultSolver().SolvePart2()
}
