package interactive

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zamm-dev/paintboard/internal/models"
	"github.com/zamm-dev/paintboard/internal/resources"
)

const (
	dialogTitle = "Information"
	dialogHint  = "Press Enter or Esc to close"
)

// InfoDialog is the modal shown by the info button. Its body is the credits
// text read at startup.
type InfoDialog struct {
	content  string
	sheet    *resources.Stylesheet
	viewport viewport.Model
	width    int
	height   int
}

// NewInfoDialog creates the dialog for content
func NewInfoDialog(content string, sheet *resources.Stylesheet) *InfoDialog {
	d := &InfoDialog{
		content:  content,
		sheet:    sheet,
		viewport: viewport.New(0, 0),
	}
	d.viewport.SetContent(content)
	d.SetSize(80, 24)
	return d
}

// Content returns the text the dialog shows
func (d *InfoDialog) Content() string {
	return d.content
}

// SetSize fits the viewport to the content, bounded by the terminal size
func (d *InfoDialog) SetSize(width, height int) {
	d.width = width
	d.height = height

	lines := strings.Split(strings.TrimRight(d.content, "\n"), "\n")
	contentWidth := lipgloss.Width(dialogHint)
	for _, line := range lines {
		if w := lipgloss.Width(line); w > contentWidth {
			contentWidth = w
		}
	}

	// border and padding take 3 columns per side, title and hint 4 rows
	d.viewport.Width = clamp(contentWidth, 1, width-6)
	d.viewport.Height = clamp(len(lines), 1, height-8)
}

// Init initializes the dialog
func (d *InfoDialog) Init() tea.Cmd {
	return nil
}

// Update handles keys while the dialog is shown
func (d *InfoDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.SetSize(msg.Width, msg.Height)
		return d, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			return d, func() tea.Msg { return InfoDismissedMsg{} }
		}
	}

	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

// View renders the dialog box
func (d *InfoDialog) View() string {
	boxStyle := d.sheet.Style(models.Dialog).
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(lipgloss.Color("6")).
		Padding(0, 2)

	title := d.sheet.Style(models.DialogTitle).Render("ⓘ  " + dialogTitle)
	hint := lipgloss.NewStyle().Faint(true).Render(dialogHint)

	layout := lipgloss.JoinVertical(lipgloss.Left, title, "", d.viewport.View(), "", hint)
	return boxStyle.Render(layout)
}

func clamp(v, low, high int) int {
	if high < low {
		high = low
	}
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// backdrop is a fixed rendering used as the background of the overlay
type backdrop struct {
	view string
}

func (b backdrop) Init() tea.Cmd { return nil }

func (b backdrop) Update(tea.Msg) (tea.Model, tea.Cmd) { return b, nil }

func (b backdrop) View() string { return b.view }
