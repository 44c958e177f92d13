package view

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"golife/src/life"
)

//ClearScreen is the ANSI sequence clearing the terminal and homing the cursor,
//printed between animation frames
const ClearScreen = "\033[2J\033[H"

const frameTitle = "Conway's Game of Life"

//alive cells cycle through glyphs and colors by position for visual variety
var (
	cellGlyphs = []string{"█", "▓", "●", "◆", "★"}
	cellColors = []aurora.Color{
		aurora.CyanFg,
		aurora.GreenFg,
		aurora.YellowFg,
		aurora.MagentaFg,
		aurora.WhiteFg,
	}
	borderColor = aurora.BlueFg
	dimColor    = aurora.BlackFg | aurora.BrightFg
)

//FrameLines renders the cell matrix as a bordered text frame, one string per
//terminal row: box-drawing border, a title header, the cells themselves and
//a generation/population footer. With color enabled every element is wrapped
//in ANSI codes via aurora.
func FrameLines(rows [][]life.Cell, generation int, population int, color bool) []string {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}

	paint := func(s string, c aurora.Color) string {
		if !color {
			return s
		}
		return aurora.Colorize(s, c).String()
	}

	horizontal := strings.Repeat("═", width+2)
	titlePad := width - len(frameTitle)
	if titlePad < 0 {
		titlePad = 0
	}

	lines := make([]string, 0, len(rows)+6)
	lines = append(lines,
		paint("╔"+horizontal+"╗", borderColor),
		paint("║", borderColor)+" "+paint(frameTitle, aurora.CyanFg|aurora.BoldFm)+strings.Repeat(" ", titlePad)+" "+paint("║", borderColor),
		paint("╠"+horizontal+"╣", borderColor),
	)

	var b strings.Builder
	for row := range rows {
		b.Reset()
		b.WriteString(paint("║", borderColor))
		b.WriteString(" ")
		for col, c := range rows[row] {
			if bool(c) {
				i := (row + col) % len(cellGlyphs)
				b.WriteString(paint(cellGlyphs[i], cellColors[i]))
			} else if color {
				b.WriteString(paint("·", dimColor))
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString(" ")
		b.WriteString(paint("║", borderColor))
		lines = append(lines, b.String())
	}

	sep := "│"
	if !color {
		sep = "|"
	}
	stats := fmt.Sprintf("Generation: %5d %s Population: %5d", generation, sep, population)
	statsPad := width - len([]rune(stats))
	if statsPad < 0 {
		statsPad = 0
	}
	lines = append(lines,
		paint("╠"+horizontal+"╣", borderColor),
		paint("║", borderColor)+" "+paint(stats, aurora.GreenFg)+strings.Repeat(" ", statsPad)+" "+paint("║", borderColor),
		paint("╚"+horizontal+"╝", borderColor),
	)
	return lines
}

//Frame is FrameLines joined into a single printable string
func Frame(rows [][]life.Cell, generation int, population int, color bool) string {
	return strings.Join(FrameLines(rows, generation, population, color), "\n") + "\n"
}
