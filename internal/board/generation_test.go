package board

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerationCountsPresses(t *testing.T) {
	var g Generation
	assert.Equal(t, "0", g.String())

	for n := 1; n <= 12; n++ {
		previous := g.Value()
		g.Increment()
		assert.Greater(t, g.Value(), previous)
		assert.Equal(t, strconv.Itoa(n), g.String())
	}
}
