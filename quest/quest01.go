package quest

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	rotationQuest = 1

	lineNames    = 0
	lineCommands = 2
)

// WrapIndex maps any index onto [0, n), counting backwards for negatives.
// An empty range (n <= 0) yields 0.
func WrapIndex(index, n int) int {
	if n <= 0 {
		return 0
	}

	return ((index % n) + n) % n
}

// rotation is a parsed quest 1 input.
type rotation struct {
	names   []string
	offsets []int // signed: R is positive, L negative
}

// parseRotation reads names from line 0 and commands from line 2.
func parseRotation(rows []string) (rotation, error) {
	if len(rows) <= lineCommands {
		return rotation{}, fmt.Errorf("%w: want at least %d lines, got %d", ErrMalformedInput, lineCommands+1, len(rows))
	}
	names := strings.Split(rows[lineNames], ",")
	cmds := strings.Split(rows[lineCommands], ",")

	offsets := make([]int, 0, len(cmds))
	for _, cmd := range cmds {
		if len(cmd) < 2 {
			return rotation{}, fmt.Errorf("%w: command %q", ErrMalformedInput, cmd)
		}
		v, err := strconv.Atoi(cmd[1:])
		if err != nil {
			return rotation{}, fmt.Errorf("%w: command %q: %v", ErrMalformedInput, cmd, err)
		}
		switch cmd[0] {
		case 'R':
			offsets = append(offsets, v)
		case 'L':
			offsets = append(offsets, -v)
		default:
			return rotation{}, fmt.Errorf("%w: invalid action %q", ErrMalformedInput, cmd[:1])
		}
	}

	return rotation{names: names, offsets: offsets}, nil
}

func (s *Solver) loadRotation(part int) (rotation, error) {
	rows, err := s.input(rotationQuest, part)
	if err != nil {
		return rotation{}, err
	}

	return parseRotation(rows)
}

// RotationClamp moves a cursor by each command, clamped to the list ends.
func (s *Solver) RotationClamp() (string, error) {
	rot, err := s.loadRotation(1)
	if err != nil {
		return "", err
	}
	cur := 0
	for _, off := range rot.offsets {
		cur = min(max(cur+off, 0), len(rot.names)-1)
	}

	return rot.names[cur], nil
}

// RotationWrap moves a cursor by each command around a circular list.
func (s *Solver) RotationWrap() (string, error) {
	rot, err := s.loadRotation(2)
	if err != nil {
		return "", err
	}
	cur := 0
	for _, off := range rot.offsets {
		cur = WrapIndex(cur+off, len(rot.names))
	}

	return rot.names[cur], nil
}

// RotationSwap swaps the head of the list with the command's target each step.
func (s *Solver) RotationSwap() (string, error) {
	rot, err := s.loadRotation(3)
	if err != nil {
		return "", err
	}
	names := rot.names
	for _, off := range rot.offsets {
		i := WrapIndex(off, len(names))
		names[0], names[i] = names[i], names[0]
	}

	return names[0], nil
}
