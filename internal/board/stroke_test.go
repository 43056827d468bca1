package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zamm-dev/paintboard/internal/models"
)

func TestStroke(t *testing.T) {
	tests := []struct {
		name   string
		tool   models.Tool
		button Button
		want   models.StyleID
		wantOK bool
	}{
		{"pen primary", models.ToolPen, ButtonPrimary, models.CellAlive, true},
		{"pen secondary", models.ToolPen, ButtonSecondary, models.CellAlive, true},
		{"eraser primary", models.ToolEraser, ButtonPrimary, models.CellDead, true},
		{"eraser other", models.ToolEraser, ButtonOther, models.CellDead, true},
		{"no tool primary", models.ToolNone, ButtonPrimary, models.CellAlive, true},
		{"no tool secondary", models.ToolNone, ButtonSecondary, models.CellDead, true},
		{"no tool other", models.ToolNone, ButtonOther, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Stroke(tt.tool, tt.button)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
