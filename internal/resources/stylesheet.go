package resources

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/zamm-dev/paintboard/internal/models"
	"gopkg.in/yaml.v3"
)

// DefaultStylesheetPath is the fixed name of the stylesheet
const DefaultStylesheetPath = "root.yaml"

// Rule is the terminal rendition of one style id
type Rule struct {
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
	Bold       bool   `yaml:"bold,omitempty"`
	Reverse    bool   `yaml:"reverse,omitempty"`
	Glyph      string `yaml:"glyph,omitempty"`
	Label      string `yaml:"label,omitempty"`
}

// Stylesheet maps style ids to rules
type Stylesheet struct {
	rules map[models.StyleID]Rule
}

// LoadStylesheet reads and parses the YAML stylesheet at path
func LoadStylesheet(path string) (*Stylesheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, models.NewBoardErrorWithCause(models.ErrTypeResource, fmt.Sprintf("failed to read stylesheet: %s", path), err)
	}

	sheet, err := ParseStylesheet(data)
	if err != nil {
		return nil, models.NewBoardErrorWithCause(models.ErrTypeResource, fmt.Sprintf("failed to parse stylesheet: %s", path), err)
	}
	return sheet, nil
}

// ParseStylesheet parses stylesheet YAML
func ParseStylesheet(data []byte) (*Stylesheet, error) {
	var rules map[models.StyleID]Rule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, err
	}
	if rules == nil {
		rules = make(map[models.StyleID]Rule)
	}
	return &Stylesheet{rules: rules}, nil
}

// Has reports whether the stylesheet defines id
func (s *Stylesheet) Has(id models.StyleID) bool {
	_, ok := s.rules[id]
	return ok
}

// Rule returns the rule for id and whether it exists
func (s *Stylesheet) Rule(id models.StyleID) (Rule, bool) {
	rule, ok := s.rules[id]
	return rule, ok
}

// Style returns the lipgloss style for id. Unknown ids render unstyled.
func (s *Stylesheet) Style(id models.StyleID) lipgloss.Style {
	rule, ok := s.rules[id]
	if !ok {
		return lipgloss.NewStyle()
	}
	return rule.style()
}

// SelectedStyle returns the style for a selected toggle. Without an explicit
// ":selected" rule the base style is reversed.
func (s *Stylesheet) SelectedStyle(id models.StyleID) lipgloss.Style {
	if rule, ok := s.rules[id.Selected()]; ok {
		return rule.style()
	}
	return s.Style(id).Reverse(true)
}

// Glyph returns the cell glyph for id, two blanks when unset
func (s *Stylesheet) Glyph(id models.StyleID) string {
	if rule, ok := s.rules[id]; ok && rule.Glyph != "" {
		return rule.Glyph
	}
	return "  "
}

// Label returns the button label for id, falling back to the id itself
func (s *Stylesheet) Label(id models.StyleID) string {
	if rule, ok := s.rules[id]; ok && rule.Label != "" {
		return rule.Label
	}
	return string(id)
}

func (r Rule) style() lipgloss.Style {
	style := lipgloss.NewStyle()
	if r.Foreground != "" {
		style = style.Foreground(lipgloss.Color(r.Foreground))
	}
	if r.Background != "" {
		style = style.Background(lipgloss.Color(r.Background))
	}
	if r.Bold {
		style = style.Bold(true)
	}
	if r.Reverse {
		style = style.Reverse(true)
	}
	return style
}
