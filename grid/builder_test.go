package grid_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/ringsum/grid"
	"github.com/stretchr/testify/require"
)

// cells flattens a grid in row-major order for diffing.
func cells[T comparable](g *grid.Grid[T]) [][]T {
	out := make([][]T, g.Rows())
	g.Each(func(r, _ int, v T) {
		out[r] = append(out[r], v)
	})

	return out
}

func TestFromLinesEmpty(t *testing.T) {
	g, err := grid.FromLines(nil, grid.Digits)
	require.NoError(t, err)
	require.Equal(t, 0, g.Rows())
	require.Equal(t, 0, g.Cols())
	require.True(t, g.Empty())
}

func TestFromLinesDigits(t *testing.T) {
	lines := []string{"00000", "01110", "01110", "01110", "00000"}
	g, err := grid.FromLines(lines, grid.Digits)
	require.NoError(t, err)
	require.Equal(t, 5, g.Rows())
	require.Equal(t, 5, g.Cols())

	want := [][]int{
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 1, 1, 1, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
	}
	if diff := cmp.Diff(want, cells(g)); diff != "" {
		t.Errorf("FromLines mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, grid.Coordinate{Row: 0, Col: 0}, g.FindFirst(0))
}

func TestFromLinesMarker(t *testing.T) {
	g, err := grid.FromLines([]string{"123", "4@6", "789"}, grid.DigitsWithMarker('@'))
	require.NoError(t, err)

	want := [][]int{{1, 2, 3}, {4, 0, 6}, {7, 8, 9}}
	if diff := cmp.Diff(want, cells(g)); diff != "" {
		t.Errorf("FromLines mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, grid.Coordinate{Row: 1, Col: 1}, g.FindFirst(0))
}

func TestFromLinesBytes(t *testing.T) {
	g, err := grid.FromLines([]string{"S.", ".D"}, grid.Bytes)
	require.NoError(t, err)
	require.Equal(t, byte('D'), g.Get(1, 1))
	require.Equal(t, 1, g.Count('S'))
}

func TestFromLinesRagged(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
	}{
		{"Shorter", []string{"123", "12", "123"}},
		{"Longer", []string{"123", "1234"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.FromLines(tc.lines, grid.Digits)
			require.ErrorIs(t, err, grid.ErrRaggedLine)
			require.Nil(t, g)
		})
	}
}
