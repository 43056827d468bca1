package interactive

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/zamm-dev/paintboard/internal/board"
	"github.com/zamm-dev/paintboard/internal/models"
	"github.com/zamm-dev/paintboard/internal/resources"
)

// Each cell takes two terminal columns so cells come out roughly square.
const cellWidth = 2

// Screen rows: toolbar on top, the grid below it, the status bar after.
const (
	toolbarRow = 0
	gridTop    = 1
	statusRow  = gridTop + board.Rows
)

// gridView renders the grid. Cell glyphs are styled once per style id.
type gridView struct {
	rendered map[models.StyleID]string
}

func newGridView(sheet *resources.Stylesheet) gridView {
	v := gridView{rendered: make(map[models.StyleID]string)}
	for _, id := range []models.StyleID{models.CellDead, models.CellAlive} {
		v.rendered[id] = sheet.Style(id).Render(fitCell(sheet.Glyph(id)))
	}
	return v
}

// fitCell pads or cuts a raw glyph to exactly cellWidth columns
func fitCell(glyph string) string {
	w := runewidth.StringWidth(glyph)
	switch {
	case w > cellWidth:
		return runewidth.Truncate(glyph, cellWidth, "")
	case w < cellWidth:
		return glyph + strings.Repeat(" ", cellWidth-w)
	}
	return glyph
}

func (v gridView) render(g *board.Grid) string {
	var sb strings.Builder
	for row := 0; row < g.Rows(); row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.Cols(); col++ {
			sb.WriteString(v.rendered[g.StyleAt(board.Coord{Row: row, Col: col})])
		}
	}
	return sb.String()
}

// cellAt maps a screen position to the cell drawn there
func cellAt(g *board.Grid, x, y int) (board.Coord, bool) {
	if x < 0 || y < gridTop {
		return board.Coord{}, false
	}
	c := board.Coord{Row: y - gridTop, Col: x / cellWidth}
	return c, g.Contains(c)
}

// gridWidth is the number of terminal columns the grid occupies
func gridWidth() int {
	return board.Cols * cellWidth
}
