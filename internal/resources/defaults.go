package resources

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zamm-dev/paintboard/internal/models"
)

// DefaultCredits is written by WriteDefaults
const DefaultCredits = `Conway's Game Of Life - Skeleton

Paint cells with the pen, clear them with the eraser.
With no tool selected the left button paints and the right button erases.
Press and hold Space to count generations, Esc to leave.
`

// DefaultStylesheet is written by WriteDefaults
const DefaultStylesheet = `cell:
  glyph: "· "
  foreground: "8"
cell_selected:
  glyph: "██"
  foreground: "2"
toolbar:
  background: "0"
statusbar:
  background: "0"
  foreground: "7"
separator:
  label: " │ "
  foreground: "8"
button_edit:
  label: " ✎ Pen "
  foreground: "7"
button_edit:selected:
  label: " ✎ Pen "
  foreground: "0"
  background: "4"
  bold: true
button_erase:
  label: " ⌫ Eraser "
  foreground: "7"
button_erase:selected:
  label: " ⌫ Eraser "
  foreground: "0"
  background: "4"
  bold: true
button_reset:
  label: " ⟲ Reset "
  foreground: "3"
button_info:
  label: " ⓘ Info "
  foreground: "6"
dialog:
  foreground: "7"
  background: "0"
dialog_title:
  foreground: "6"
  bold: true
`

// WriteDefaults writes the default credits and stylesheet into dir unless
// they already exist. It returns the paths it created.
func WriteDefaults(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, models.NewBoardErrorWithCause(models.ErrTypeSystem, fmt.Sprintf("failed to create directory: %s", dir), err)
	}

	files := []struct {
		name    string
		content string
	}{
		{DefaultCreditsPath, DefaultCredits},
		{DefaultStylesheetPath, DefaultStylesheet},
	}

	var created []string
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte(f.content), 0644); err != nil {
			return created, models.NewBoardErrorWithCause(models.ErrTypeSystem, fmt.Sprintf("failed to write %s", path), err)
		}
		created = append(created, path)
	}

	return created, nil
}
