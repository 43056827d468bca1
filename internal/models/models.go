package models

// Tool represents the paint mode selected in the toolbar
type Tool int

const (
	ToolNone   Tool = iota // No toggle selected
	ToolPen                // Paints cells alive
	ToolEraser             // Paints cells dead
)

// String returns the display name of the tool
func (t Tool) String() string {
	switch t {
	case ToolPen:
		return "pen"
	case ToolEraser:
		return "eraser"
	default:
		return "none"
	}
}

// StyleID identifies a rule in the stylesheet. Cells carry their visual
// state as a StyleID, there is no separate boolean model.
type StyleID string

const (
	CellDead  StyleID = "cell"
	CellAlive StyleID = "cell_selected"

	ButtonEdit  StyleID = "button_edit"
	ButtonErase StyleID = "button_erase"
	ButtonReset StyleID = "button_reset"
	ButtonInfo  StyleID = "button_info"

	Toolbar     StyleID = "toolbar"
	StatusBar   StyleID = "statusbar"
	Separator   StyleID = "separator"
	Dialog      StyleID = "dialog"
	DialogTitle StyleID = "dialog_title"
)

// SelectedSuffix is appended to a button's id to look up its selected style
const SelectedSuffix = ":selected"

// Selected returns the style id used while a toggle is selected
func (s StyleID) Selected() StyleID {
	return s + SelectedSuffix
}

// ButtonStyleIDs lists the ids every stylesheet has to define for the toolbar
var ButtonStyleIDs = []StyleID{ButtonEdit, ButtonErase, ButtonReset, ButtonInfo}

// Title is the window title of the board screen
const Title = "Conway's Game Of Life - Skeleton"
