package interactive

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zamm-dev/paintboard/internal/board"
)

func init() {
	// plain output so screen assertions match glyphs, not escape codes
	lipgloss.SetColorProfile(termenv.Ascii)
}

func waitForOutput(t *testing.T, tm *teatest.TestModel, waitFor []byte) {
	t.Helper()
	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, waitFor)
		},
		teatest.WithCheckInterval(time.Millisecond*100),
		teatest.WithDuration(time.Second*3),
	)
}

func TestBoardProgramGenerationAndInfo(t *testing.T) {
	m := newTestBoard(t)
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(130, 70))

	waitForOutput(t, tm, []byte("Generation: 0"))

	for i := 0; i < 3; i++ {
		tm.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	}
	waitForOutput(t, tm, []byte("Generation: 3"))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}})
	waitForOutput(t, tm, []byte("Drawn by the lab team."))

	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})

	final, ok := tm.FinalModel(t, teatest.WithFinalTimeout(time.Second*3)).(*BoardModel)
	require.True(t, ok)
	assert.Equal(t, "3", final.Generation())
}

func TestBoardProgramPaintsWithMouse(t *testing.T) {
	m := newTestBoard(t)
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(130, 70))
	waitForOutput(t, tm, []byte("Generation: 0"))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	x, y := cellPos(board.Coord{Row: 0, Col: 0})
	tm.Send(press(x, y, tea.MouseButtonLeft))
	for col := 1; col < 3; col++ {
		x, y = cellPos(board.Coord{Row: 0, Col: col})
		tm.Send(motion(x, y, tea.MouseButtonLeft))
	}
	tm.Send(release(x, y))
	waitForOutput(t, tm, []byte("██████· "))

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second*3))

	final, ok := tm.FinalModel(t).(*BoardModel)
	require.True(t, ok)
	assert.Equal(t, 3, final.Grid().AliveCount())
}
