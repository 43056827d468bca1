package board

import (
	"github.com/zamm-dev/paintboard/internal/models"
)

// Board dimensions are fixed; nothing validates against other sizes.
const (
	Rows = 60
	Cols = 60
)

// Coord addresses a single cell
type Coord struct {
	Row int
	Col int
}

// Grid holds the visual state of every cell as its style id
type Grid struct {
	cells [Rows][Cols]models.StyleID
}

// NewGrid creates a grid with every cell dead
func NewGrid() *Grid {
	g := &Grid{}
	g.Reset()
	return g
}

func (g *Grid) Rows() int { return Rows }

func (g *Grid) Cols() int { return Cols }

// Contains reports whether c lies inside the grid
func (g *Grid) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < Rows && c.Col >= 0 && c.Col < Cols
}

// StyleAt returns the style id of the cell at c
func (g *Grid) StyleAt(c Coord) models.StyleID {
	return g.cells[c.Row][c.Col]
}

// SetStyle sets the style id of the cell at c
func (g *Grid) SetStyle(c Coord, id models.StyleID) {
	g.cells[c.Row][c.Col] = id
}

// Alive reports whether the cell at c is shown alive
func (g *Grid) Alive(c Coord) bool {
	return g.cells[c.Row][c.Col] == models.CellAlive
}

// AliveCount returns the number of cells shown alive
func (g *Grid) AliveCount() int {
	count := 0
	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col] == models.CellAlive {
				count++
			}
		}
	}
	return count
}

// Reset sets every cell dead
func (g *Grid) Reset() {
	for row := range g.cells {
		for col := range g.cells[row] {
			g.cells[row][col] = models.CellDead
		}
	}
}

// Paint applies a stroke to the cell at c and reports whether it changed
func (g *Grid) Paint(c Coord, tool models.Tool, button Button) bool {
	id, ok := Stroke(tool, button)
	if !ok || g.cells[c.Row][c.Col] == id {
		return false
	}
	g.cells[c.Row][c.Col] = id
	return true
}
