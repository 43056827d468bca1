package interactive

import (
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
	overlay "github.com/rmhubbert/bubbletea-overlay"
	"github.com/zamm-dev/paintboard/internal/board"
	"github.com/zamm-dev/paintboard/internal/models"
	"github.com/zamm-dev/paintboard/internal/resources"
)

// Options configures a BoardModel
type Options struct {
	Credits    string
	Stylesheet *resources.Stylesheet
	Title      string
	// DebugWriter receives a dump of every message when set
	DebugWriter io.Writer
}

// dragState tracks a press that started on a grid cell. While it is active
// every cell the pointer enters gets painted, not only the first one.
type dragState struct {
	active bool
	button board.Button
	last   board.Coord
}

// BoardModel is the whole screen and the state its handlers share
type BoardModel struct {
	grid       *board.Grid
	generation board.Generation
	toolbar    Toolbar
	sheet      *resources.Stylesheet
	cells      gridView
	dialog     *InfoDialog
	showDialog bool
	drag       dragState

	keys     keyMap
	help     help.Model
	showHelp bool

	title  string
	width  int
	height int

	debugWriter io.Writer
}

// NewBoardModel builds the screen. It fails when a widget cannot be built
// from the stylesheet.
func NewBoardModel(opts Options) (*BoardModel, error) {
	if opts.Stylesheet == nil {
		return nil, models.NewBoardError(models.ErrTypeWidget, "failed to build board").WithDetails("no stylesheet")
	}

	toolbar, err := NewToolbar(
		opts.Stylesheet,
		func() tea.Msg { return ResetBoardMsg{} },
		func() tea.Msg { return ShowInfoMsg{} },
	)
	if err != nil {
		return nil, err
	}

	title := opts.Title
	if title == "" {
		title = models.Title
	}

	return &BoardModel{
		grid:        board.NewGrid(),
		toolbar:     toolbar,
		sheet:       opts.Stylesheet,
		cells:       newGridView(opts.Stylesheet),
		dialog:      NewInfoDialog(opts.Credits, opts.Stylesheet),
		keys:        keys,
		help:        help.New(),
		title:       title,
		debugWriter: opts.DebugWriter,
	}, nil
}

// Grid exposes the cells for inspection
func (m *BoardModel) Grid() *board.Grid {
	return m.grid
}

// Generation returns the counter as displayed
func (m *BoardModel) Generation() string {
	return m.generation.String()
}

// SelectedTool returns the tool picked in the toolbar
func (m *BoardModel) SelectedTool() models.Tool {
	return m.toolbar.SelectedTool()
}

// DialogVisible reports whether the info dialog is open
func (m *BoardModel) DialogVisible() bool {
	return m.showDialog
}

// Dialog returns the info dialog
func (m *BoardModel) Dialog() *InfoDialog {
	return m.dialog
}

// Init sets the window title
func (m *BoardModel) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

// Update handles tea messages and updates the board
func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.debugWriter != nil {
		spew.Fdump(m.debugWriter, msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.dialog.SetSize(msg.Width, msg.Height)
		return m, nil
	case ResetBoardMsg:
		m.grid.Reset()
		log.Printf("board reset")
		return m, nil
	case ShowInfoMsg:
		m.openDialog()
		return m, nil
	case InfoDismissedMsg:
		m.showDialog = false
		return m, nil
	}

	if m.showDialog {
		return m.updateDialog(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}
	return m, nil
}

// updateDialog routes input to the open dialog only
func (m *BoardModel) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		_, cmd := m.dialog.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *BoardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Close):
		log.Printf("closing board at generation %s", m.generation.String())
		return m, tea.Quit
	case key.Matches(msg, m.keys.Generation):
		m.generation.Increment()
	case key.Matches(msg, m.keys.Pen):
		m.toolbar.ToggleTool(models.ToolPen)
		log.Printf("tool selected: %s", m.toolbar.SelectedTool())
	case key.Matches(msg, m.keys.Eraser):
		m.toolbar.ToggleTool(models.ToolEraser)
		log.Printf("tool selected: %s", m.toolbar.SelectedTool())
	case key.Matches(msg, m.keys.Reset):
		return m, m.toolbar.reset.Action
	case key.Matches(msg, m.keys.Info):
		return m, m.toolbar.info.Action
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	}
	return m, nil
}

func (m *BoardModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if tea.MouseEvent(msg).IsWheel() {
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.drag = dragState{}
		if msg.Y == toolbarRow {
			if msg.Button != tea.MouseButtonLeft {
				return nil
			}
			before := m.toolbar.SelectedTool()
			cmd := m.toolbar.Click(msg.X, m.layoutWidth())
			if after := m.toolbar.SelectedTool(); after != before {
				log.Printf("tool selected: %s", after)
			}
			return cmd
		}

		c, ok := cellAt(m.grid, msg.X, msg.Y)
		if !ok {
			return nil
		}
		button := strokeButton(msg.Button)
		m.grid.Paint(c, m.toolbar.SelectedTool(), button)
		m.drag = dragState{active: true, button: button, last: c}

	case tea.MouseActionMotion:
		if !m.drag.active {
			return nil
		}
		c, ok := cellAt(m.grid, msg.X, msg.Y)
		if !ok || c == m.drag.last {
			return nil
		}
		m.grid.Paint(c, m.toolbar.SelectedTool(), m.drag.button)
		m.drag.last = c

	case tea.MouseActionRelease:
		m.drag = dragState{}
	}
	return nil
}

func (m *BoardModel) openDialog() {
	m.drag = dragState{}
	m.showDialog = true
	log.Printf("info dialog opened")
}

// strokeButton maps a terminal mouse button onto a paint button
func strokeButton(b tea.MouseButton) board.Button {
	switch b {
	case tea.MouseButtonLeft:
		return board.ButtonPrimary
	case tea.MouseButtonRight:
		return board.ButtonSecondary
	default:
		return board.ButtonOther
	}
}

func (m *BoardModel) layoutWidth() int {
	if m.width > gridWidth() {
		return m.width
	}
	return gridWidth()
}

// View renders the board, with the info dialog on top when it is open
func (m *BoardModel) View() string {
	base := m.renderBoard()
	if !m.showDialog {
		return base
	}
	return overlay.New(
		m.dialog,
		backdrop{view: base},
		overlay.Center,
		overlay.Center,
		0,
		0,
	).View()
}

func (m *BoardModel) renderBoard() string {
	width := m.layoutWidth()

	var sb strings.Builder
	sb.WriteString(m.toolbar.View(width))
	sb.WriteByte('\n')
	sb.WriteString(m.cells.render(m.grid))
	sb.WriteByte('\n')
	sb.WriteString(renderStatusBar(m.sheet, m.generation.String(), width))
	if m.showHelp {
		sb.WriteByte('\n')
		sb.WriteString(m.help.View(m.keys))
	}
	return sb.String()
}
