package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golife/src/life"
)

func TestFrameLinesLayout(t *testing.T) {
	g, err := life.New(30, 4)
	require.NoError(t, err)
	require.NoError(t, g.Set(0, 0, true))
	require.NoError(t, g.Set(2, 5, true))

	lines := FrameLines(g.Rows(), g.Generation(), g.Population(), false)

	//3 header lines, one line per row, 3 footer lines
	require.Len(t, lines, 4+6)
	assert.Equal(t, "╔"+strings.Repeat("═", 32)+"╗", lines[0])
	assert.Contains(t, lines[1], "Conway's Game of Life")
	assert.Equal(t, "╚"+strings.Repeat("═", 32)+"╝", lines[len(lines)-1])
	assert.Contains(t, lines[len(lines)-2], "Generation:     0 | Population:     2")

	//every line starts and ends on the border
	for _, line := range lines[3 : len(lines)-3] {
		assert.True(t, strings.HasPrefix(line, "║"), line)
		assert.True(t, strings.HasSuffix(line, "║"), line)
	}
}

func TestFrameMarksAliveCells(t *testing.T) {
	g, err := life.New(5, 3)
	require.NoError(t, err)
	require.NoError(t, g.Set(1, 2, true))

	lines := FrameLines(g.Rows(), 0, 1, false)
	row := lines[4] //grid row 1
	//glyph picked by position: (1+2) % 5
	assert.Contains(t, row, cellGlyphs[3])

	//dead rows carry no glyphs without color
	for _, glyph := range cellGlyphs {
		assert.NotContains(t, lines[3], glyph)
	}
}

func TestFrameColorToggle(t *testing.T) {
	g, err := life.New(8, 2)
	require.NoError(t, err)
	require.NoError(t, g.Set(0, 0, true))

	plain := Frame(g.Rows(), 0, 1, false)
	assert.NotContains(t, plain, "\033[")

	colored := Frame(g.Rows(), 0, 1, true)
	assert.Contains(t, colored, "\033[")
}
