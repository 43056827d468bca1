package board

import "strconv"

// Generation is the cosmetic counter shown in the status bar. It is not tied
// to any simulation step and only ever grows.
type Generation struct {
	value int
}

// Increment advances the counter by one
func (g *Generation) Increment() {
	g.value++
}

func (g *Generation) Value() int {
	return g.value
}

func (g *Generation) String() string {
	return strconv.Itoa(g.value)
}
