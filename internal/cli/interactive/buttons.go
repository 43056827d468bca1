package interactive

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zamm-dev/paintboard/internal/models"
	"github.com/zamm-dev/paintboard/internal/resources"
)

// ButtonKind tells toggle buttons from plain action buttons
type ButtonKind int

const (
	KindToggle ButtonKind = iota
	KindAction
)

// Button is a toolbar control. Toggles carry the tool they select, action
// buttons carry the command run when they are clicked.
type Button struct {
	Kind    ButtonKind
	StyleID models.StyleID
	Tool    models.Tool
	Action  tea.Cmd
}

// NewToggleButton creates a toggle that selects tool
func NewToggleButton(id models.StyleID, tool models.Tool) Button {
	return Button{
		Kind:    KindToggle,
		StyleID: id,
		Tool:    tool,
	}
}

// NewActionButton creates a button that runs action when clicked
func NewActionButton(id models.StyleID, action tea.Cmd) Button {
	return Button{
		Kind:    KindAction,
		StyleID: id,
		Action:  action,
	}
}

// Render draws the button label with its style, or its selected style for a
// selected toggle
func (b Button) Render(sheet *resources.Stylesheet, selected bool) string {
	label := sheet.Label(b.StyleID)
	if selected && b.Kind == KindToggle {
		return sheet.SelectedStyle(b.StyleID).Render(label)
	}
	return sheet.Style(b.StyleID).Render(label)
}

// ToggleGroup keeps at most one toggle selected
type ToggleGroup struct {
	toggles  []Button
	selected int
}

// NewToggleGroup creates a group with nothing selected
func NewToggleGroup(toggles ...Button) ToggleGroup {
	return ToggleGroup{
		toggles:  toggles,
		selected: -1,
	}
}

// Toggle selects toggle i, or clears the selection if i is already selected
func (g *ToggleGroup) Toggle(i int) {
	if i < 0 || i >= len(g.toggles) {
		return
	}
	if g.selected == i {
		g.selected = -1
		return
	}
	g.selected = i
}

// ToggleTool toggles the button that carries tool
func (g *ToggleGroup) ToggleTool(tool models.Tool) {
	for i, b := range g.toggles {
		if b.Tool == tool {
			g.Toggle(i)
			return
		}
	}
}

// IsSelected reports whether toggle i is selected
func (g ToggleGroup) IsSelected(i int) bool {
	return g.selected == i
}

// SelectedTool returns the tool of the selected toggle, ToolNone when no
// toggle is selected
func (g ToggleGroup) SelectedTool() models.Tool {
	if g.selected < 0 {
		return models.ToolNone
	}
	return g.toggles[g.selected].Tool
}

func (g ToggleGroup) Len() int {
	return len(g.toggles)
}

func (g ToggleGroup) At(i int) Button {
	return g.toggles[i]
}
