package interactive

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zamm-dev/paintboard/internal/models"
	"github.com/zamm-dev/paintboard/internal/resources"
)

// Toolbar is the top row: pen and eraser toggles, a separator, the reset
// button, a filler and the info button pushed to the right edge.
type Toolbar struct {
	group ToggleGroup
	reset Button
	info  Button
	sheet *resources.Stylesheet
}

// toolbarSpan is the column range [start, end) taken by one clickable item.
// toggle is -1 for action buttons.
type toolbarSpan struct {
	start  int
	end    int
	toggle int
	button Button
}

// NewToolbar builds the toolbar. Every button needs a rule in the
// stylesheet, a missing rule fails the whole toolbar.
func NewToolbar(sheet *resources.Stylesheet, reset, info tea.Cmd) (Toolbar, error) {
	var missing []string
	for _, id := range models.ButtonStyleIDs {
		if !sheet.Has(id) {
			missing = append(missing, string(id))
		}
	}
	if len(missing) > 0 {
		return Toolbar{}, models.NewBoardError(models.ErrTypeWidget, "failed to build toolbar").
			WithDetails(fmt.Sprintf("stylesheet has no rule for %s", strings.Join(missing, ", ")))
	}

	return Toolbar{
		group: NewToggleGroup(
			NewToggleButton(models.ButtonEdit, models.ToolPen),
			NewToggleButton(models.ButtonErase, models.ToolEraser),
		),
		reset: NewActionButton(models.ButtonReset, reset),
		info:  NewActionButton(models.ButtonInfo, info),
		sheet: sheet,
	}, nil
}

// SelectedTool returns the tool picked in the toggle group
func (t *Toolbar) SelectedTool() models.Tool {
	return t.group.SelectedTool()
}

// ToggleTool toggles the button carrying tool, as if it had been clicked
func (t *Toolbar) ToggleTool(tool models.Tool) {
	t.group.ToggleTool(tool)
}

// Click handles a primary click at column x. Toggles update the group,
// action buttons return their command.
func (t *Toolbar) Click(x, width int) tea.Cmd {
	_, spans := t.layout(width)
	for _, span := range spans {
		if x < span.start || x >= span.end {
			continue
		}
		if span.toggle >= 0 {
			t.group.Toggle(span.toggle)
			return nil
		}
		return span.button.Action
	}
	return nil
}

// View renders the toolbar at the given width
func (t *Toolbar) View(width int) string {
	line, _ := t.layout(width)
	return line
}

func (t *Toolbar) layout(width int) (string, []toolbarSpan) {
	var sb strings.Builder
	var spans []toolbarSpan
	x := 0

	add := func(rendered string, span *toolbarSpan) {
		w := lipgloss.Width(rendered)
		if span != nil {
			span.start = x
			span.end = x + w
			spans = append(spans, *span)
		}
		sb.WriteString(rendered)
		x += w
	}

	for i := 0; i < t.group.Len(); i++ {
		b := t.group.At(i)
		add(b.Render(t.sheet, t.group.IsSelected(i)), &toolbarSpan{toggle: i, button: b})
	}
	add(t.sheet.Style(models.Separator).Render(t.separatorLabel()), nil)
	add(t.reset.Render(t.sheet, false), &toolbarSpan{toggle: -1, button: t.reset})

	info := t.info.Render(t.sheet, false)
	filler := width - x - lipgloss.Width(info)
	if filler < 1 {
		filler = 1
	}
	add(t.sheet.Style(models.Toolbar).Render(strings.Repeat(" ", filler)), nil)
	add(info, &toolbarSpan{toggle: -1, button: t.info})

	return sb.String(), spans
}

func (t *Toolbar) separatorLabel() string {
	if rule, ok := t.sheet.Rule(models.Separator); ok && rule.Label != "" {
		return rule.Label
	}
	return " | "
}
