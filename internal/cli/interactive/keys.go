package interactive

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Generation key.Binding
	Pen        key.Binding
	Eraser     key.Binding
	Reset      key.Binding
	Info       key.Binding
	Help       key.Binding
	Close      key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Generation: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "next generation"),
	),
	Pen: key.NewBinding(
		key.WithKeys("p", "P"),
		key.WithHelp("p", "pen"),
	),
	Eraser: key.NewBinding(
		key.WithKeys("e", "E"),
		key.WithHelp("e", "eraser"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r", "R"),
		key.WithHelp("r", "reset"),
	),
	Info: key.NewBinding(
		key.WithKeys("i", "I"),
		key.WithHelp("i", "info"),
	),
	Help: key.NewBinding(
		key.WithKeys("?", "h"),
		key.WithHelp("?", "help"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generation, k.Help, k.Close}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pen, k.Eraser, k.Reset},
		{k.Generation, k.Info},
		{k.Help, k.Close, k.Quit},
	}
}
