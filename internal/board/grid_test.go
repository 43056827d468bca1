package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zamm-dev/paintboard/internal/models"
)

func TestNewGridAllDead(t *testing.T) {
	g := NewGrid()

	require.Equal(t, 60, g.Rows())
	require.Equal(t, 60, g.Cols())
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			assert.Equal(t, models.CellDead, g.StyleAt(Coord{Row: row, Col: col}))
		}
	}
	assert.Equal(t, 0, g.AliveCount())
}

func TestPaintWithTool(t *testing.T) {
	buttons := []Button{ButtonPrimary, ButtonSecondary, ButtonOther}

	for _, button := range buttons {
		g := NewGrid()
		c := Coord{Row: 3, Col: 59}

		assert.True(t, g.Paint(c, models.ToolPen, button))
		assert.True(t, g.Alive(c))

		// painting the same state again is not a change
		assert.False(t, g.Paint(c, models.ToolPen, button))

		assert.True(t, g.Paint(c, models.ToolEraser, button))
		assert.False(t, g.Alive(c))
	}
}

func TestPaintEveryCellWithPen(t *testing.T) {
	g := NewGrid()
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			g.Paint(Coord{Row: row, Col: col}, models.ToolPen, ButtonPrimary)
		}
	}
	assert.Equal(t, Rows*Cols, g.AliveCount())
}

func TestPaintWithoutTool(t *testing.T) {
	g := NewGrid()
	c := Coord{Row: 10, Col: 10}

	assert.True(t, g.Paint(c, models.ToolNone, ButtonPrimary))
	assert.Equal(t, models.CellAlive, g.StyleAt(c))

	assert.False(t, g.Paint(c, models.ToolNone, ButtonOther))
	assert.Equal(t, models.CellAlive, g.StyleAt(c))

	assert.True(t, g.Paint(c, models.ToolNone, ButtonSecondary))
	assert.Equal(t, models.CellDead, g.StyleAt(c))
}

func TestResetClearsAllCells(t *testing.T) {
	g := NewGrid()
	for row := 0; row < Rows; row += 2 {
		for col := 0; col < Cols; col += 3 {
			g.SetStyle(Coord{Row: row, Col: col}, models.CellAlive)
		}
	}
	require.NotZero(t, g.AliveCount())

	g.Reset()

	assert.Equal(t, 0, g.AliveCount())
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			assert.Equal(t, models.CellDead, g.StyleAt(Coord{Row: row, Col: col}))
		}
	}
}

func TestContains(t *testing.T) {
	g := NewGrid()

	assert.True(t, g.Contains(Coord{Row: 0, Col: 0}))
	assert.True(t, g.Contains(Coord{Row: 59, Col: 59}))
	assert.False(t, g.Contains(Coord{Row: -1, Col: 0}))
	assert.False(t, g.Contains(Coord{Row: 0, Col: 60}))
	assert.False(t, g.Contains(Coord{Row: 60, Col: 0}))
}
