package quest_test

import (
	"bytes"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/ringsum/grid"
	"github.com/katalvlaran/ringsum/lines"
	"github.com/katalvlaran/ringsum/quest"
	"github.com/katalvlaran/ringsum/radius"
	"github.com/stretchr/testify/require"
)

// uniformLines returns n rows of n '1's with '@' in the middle.
func uniformLines(n int) []string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = strings.Repeat("1", n)
	}
	mid := []byte(rows[n/2])
	mid[n/2] = '@'
	rows[n/2] = string(mid)

	return rows
}

func newSolver(t *testing.T, src lines.Source) (*quest.Solver, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return quest.NewSolver(src, logger), &buf
}

func TestSolveRadiusQuest(t *testing.T) {
	s, logs := newSolver(t, lines.Static{
		{Quest: 17, Part: 1}: uniformLines(21),
		{Quest: 17, Part: 2}: uniformLines(21),
	})

	got, err := s.SolvePart1()
	require.NoError(t, err)
	require.Equal(t, "316", got)

	got, err = s.SolvePart2()
	require.NoError(t, err)
	require.Equal(t, "640", got)

	out := logs.String()
	require.Contains(t, out, "Grid loaded.")
	require.Contains(t, out, "rows=21")
	require.Contains(t, out, "center=(10,10)")
	require.Contains(t, out, "Ring step.")
}

func TestSolverRadiusOverride(t *testing.T) {
	s, _ := newSolver(t, lines.Static{{Quest: 17, Part: 1}: uniformLines(21)})
	s.Radius = 1

	got, err := s.SolvePart1()
	require.NoError(t, err)
	require.Equal(t, "4", got)

	// a radius past the grid covers all 441 cells; the center adds 0.
	s.Radius = math.MaxInt
	got, err = s.SolvePart1()
	require.NoError(t, err)
	require.Equal(t, "440", got)
}

func TestSolveRadiusQuestEmptyInput(t *testing.T) {
	s, _ := newSolver(t, lines.Static{
		{Quest: 17, Part: 1}: {},
		{Quest: 17, Part: 2}: nil,
	})

	got, err := s.SolvePart1()
	require.NoError(t, err)
	require.Equal(t, "0", got)

	got, err = s.SolvePart2()
	require.NoError(t, err)
	require.Equal(t, "0", got)
}

func TestSolveRadiusQuestErrors(t *testing.T) {
	s, _ := newSolver(t, lines.Static{
		{Quest: 17, Part: 1}: {"123", "456"},
		{Quest: 17, Part: 2}: {"1@1", "11"},
	})

	_, err := s.SolvePart1()
	require.ErrorIs(t, err, radius.ErrCenterNotFound)

	_, err = s.SolvePart2()
	require.ErrorIs(t, err, grid.ErrRaggedLine)

	_, err = quest.NewSolver(lines.Static{}, nil).SolvePart1()
	require.ErrorIs(t, err, lines.ErrNoInput)
}

func TestSolveRadiusQuestRejectsStrayBytes(t *testing.T) {
	s, _ := newSolver(t, lines.Static{
		{Quest: 17, Part: 1}: {"111", "1@.", "111"},
		{Quest: 17, Part: 2}: {"111", "1@1", "1 1"},
	})

	_, err := s.SolvePart1()
	require.ErrorIs(t, err, quest.ErrMalformedInput)
	require.Contains(t, err.Error(), "(1,2)")

	_, err = s.SolvePart2()
	require.ErrorIs(t, err, quest.ErrMalformedInput)
	require.Contains(t, err.Error(), "(2,1)")
}

func TestSolveDispatch(t *testing.T) {
	s, logs := newSolver(t, lines.Static{{Quest: 17, Part: 2}: uniformLines(21)})

	got, err := s.Solve(17, 2)
	require.NoError(t, err)
	require.Equal(t, "640", got)
	require.Contains(t, logs.String(), "entry=q17_2")
	require.Contains(t, logs.String(), "answer=640")

	_, err = s.Solve(17, 9)
	require.ErrorIs(t, err, quest.ErrUnknownEntry)

	_, err = s.Solve(17, 1)
	require.ErrorIs(t, err, lines.ErrNoInput)
	require.Contains(t, err.Error(), "q17_1:")
}

func TestPackageEntryPoints(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "data"), 0o755))
	body := strings.Join(uniformLines(21), "\n") + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "quest17_1.txt"), []byte(body), 0o644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	got, err := quest.SolvePart1()
	require.NoError(t, err)
	require.Equal(t, "316", got)

	// quest17_2.txt is missing: empty input, zero answer
	got, err = quest.SolvePart2()
	require.NoError(t, err)
	require.Equal(t, "0", got)
}
