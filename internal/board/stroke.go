package board

import (
	"github.com/zamm-dev/paintboard/internal/models"
)

// Button is the mouse button behind a stroke
type Button int

const (
	ButtonOther Button = iota
	ButtonPrimary
	ButtonSecondary
)

// Stroke decides what a press or drag-enter does to a cell. A selected tool
// wins regardless of the button. With no tool selected the primary button
// paints alive and the secondary button paints dead.
func Stroke(tool models.Tool, button Button) (models.StyleID, bool) {
	switch tool {
	case models.ToolPen:
		return models.CellAlive, true
	case models.ToolEraser:
		return models.CellDead, true
	}

	switch button {
	case ButtonPrimary:
		return models.CellAlive, true
	case ButtonSecondary:
		return models.CellDead, true
	default:
		return "", false
	}
}
