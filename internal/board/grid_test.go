package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildCellCount(t *testing.T) {
	t.Parallel()

	for rows := 1; rows <= 8; rows++ {
		for _, cols := range []int{1, 2, 5, 13, MaxColumns} {
			g := Build(GridConfig{Rows: rows, Cols: cols})
			require.Equal(t, 1+cols+rows*(1+cols), g.Len(), "rows=%d cols=%d", rows, cols)
		}
	}
}

func TestBuildOrderAndHeaders(t *testing.T) {
	t.Parallel()

	cells := Build(GridConfig{Rows: 2, Cols: 3}).Cells()

	var texts []string
	for _, c := range cells {
		texts = append(texts, c.Text)
	}
	require.Equal(t, []string{
		"", "A", "B", "C",
		"1", "A1", "B1", "C1",
		"2", "A2", "B2", "C2",
	}, texts)

	require.Equal(t, KindCorner, cells[0].Kind)
	require.Equal(t, KindColumnHeader, cells[1].Kind)
	require.Equal(t, KindRowHeader, cells[4].Kind)
	require.True(t, cells[5].Interactive())
	require.False(t, cells[4].Interactive())
}

func TestBuildStartsEmpty(t *testing.T) {
	t.Parallel()

	g := Build(GridConfig{Rows: 3, Cols: 3})
	for _, c := range g.Cells() {
		if !c.Interactive() {
			continue
		}
		st, ok := g.State(c.Text)
		require.True(t, ok)
		require.True(t, st.Empty())
	}

	_, ok := g.State("D1")
	require.False(t, ok)
}

func TestBuildNonPositiveSizes(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, Build(GridConfig{}).Len())
	require.Equal(t, 1+2, Build(GridConfig{Rows: 0, Cols: 2}).Len())
	require.Equal(t, 1+3, Build(GridConfig{Rows: 3, Cols: -1}).Len())
}
