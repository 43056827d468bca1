package interactive

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zamm-dev/paintboard/internal/models"
	"github.com/zamm-dev/paintboard/internal/resources"
)

const (
	generationLabel = "Generation: "
	holdSpaceHint   = "Press and Hold Space"
)

// renderStatusBar draws "Generation: n", a filler and the space hint
func renderStatusBar(sheet *resources.Stylesheet, generation string, width int) string {
	style := sheet.Style(models.StatusBar)
	left := generationLabel + generation
	filler := width - lipgloss.Width(left) - lipgloss.Width(holdSpaceHint)
	if filler < 1 {
		filler = 1
	}
	return style.Render(left + strings.Repeat(" ", filler) + holdSpaceHint)
}
