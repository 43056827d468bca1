package cli

import (
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zamm-dev/paintboard/internal/cli/interactive"
	"github.com/zamm-dev/paintboard/internal/config"
	"github.com/zamm-dev/paintboard/internal/models"
	"github.com/zamm-dev/paintboard/internal/resources"
)

// buildBoard reads the startup resources and builds the board screen. Any
// failure here is fatal, nothing is retried.
func (a *App) buildBoard(debugWriter io.Writer) (*interactive.BoardModel, error) {
	credits, err := resources.LoadCredits(a.config.Resources.Credits)
	if err != nil {
		return nil, err
	}

	sheet, err := resources.LoadStylesheet(a.config.Resources.Stylesheet)
	if err != nil {
		return nil, err
	}

	return interactive.NewBoardModel(interactive.Options{
		Credits:     credits,
		Stylesheet:  sheet,
		Title:       a.config.UI.Title,
		DebugWriter: debugWriter,
	})
}

// runBoard starts the board screen and blocks until it is closed
func (a *App) runBoard(debug bool) error {
	var debugWriter io.Writer
	if debug {
		file, err := a.openDebugLog(time.Now())
		if err != nil {
			return err
		}
		debugWriter = file
	}

	model, err := a.buildBoard(debugWriter)
	if err != nil {
		return err
	}

	if err := a.setupLogging(); err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if a.config.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	log.Printf("starting board with credits %s and stylesheet %s", a.config.Resources.Credits, a.config.Resources.Stylesheet)
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return models.NewBoardErrorWithCause(models.ErrTypeSystem, "board exited with an error", err)
	}
	return nil
}

// setupLogging routes the standard logger to the configured log file. The
// terminal belongs to the board, so with logging off output is discarded.
func (a *App) setupLogging() error {
	if !a.config.Logging.Enabled() {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := config.EnsureLogDirectory(a.config); err != nil {
		return err
	}

	file, err := tea.LogToFile(a.config.Logging.File, "paintboard")
	if err != nil {
		return models.NewBoardErrorWithCause(models.ErrTypeSystem, "failed to open log file", err)
	}
	a.closeOnExit(file.Close)
	if a.config.Logging.Level == "debug" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
	return nil
}
