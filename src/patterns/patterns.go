//Package patterns is the catalogue of well-known Life seed patterns.
//The catalogue is immutable process-wide data, decoded once at init from
//string art ('O' marks an alive cell) into relative row,col offsets.
package patterns

import (
	"sort"

	"github.com/pkg/errors"
)

var ErrUnknownPattern = errors.New("unknown pattern")

//Category tags what kind of behavior a pattern exhibits
type Category string

const (
	StillLife  Category = "still life"
	Oscillator Category = "oscillator"
	Spaceship  Category = "spaceship"
	Gun        Category = "gun"
	Methuselah Category = "methuselah"
)

//Pattern is a named, immutable set of relative cell offsets.
//Offsets are row,col pairs relative to the pattern's top-left corner.
type Pattern struct {
	Name     string
	Category Category
	Descr    string
	Offsets  [][2]int
	Width    int
	Height   int
}

var catalogue = map[string]Pattern{}

//seed definitions, decoded into the catalogue at init
var seeds = []struct {
	name     string
	category Category
	descr    string
	art      []string
}{
	{
		"acorn", Methuselah,
		"Tiny pattern that grows for 5206 generations",
		[]string{
			".O.....",
			"...O...",
			"OO..OOO",
		},
	},
	{
		"beacon", Oscillator,
		"Period 2 oscillator with a flashing effect",
		[]string{
			"OO..",
			"OO..",
			"..OO",
			"..OO",
		},
	},
	{
		"beehive", StillLife,
		"Common still life",
		[]string{
			".OO.",
			"O..O",
			".OO.",
		},
	},
	{
		"blinker", Oscillator,
		"Simplest oscillator - period 2",
		[]string{
			"OOO",
		},
	},
	{
		"block", StillLife,
		"Simplest still life - completely stable",
		[]string{
			"OO",
			"OO",
		},
	},
	{
		"diehard", Methuselah,
		"Disappears after exactly 130 generations",
		[]string{
			"......O.",
			"OO......",
			".O...OOO",
		},
	},
	{
		"glider", Spaceship,
		"The famous glider - a spaceship that travels diagonally",
		[]string{
			".O.",
			"..O",
			"OOO",
		},
	},
	{
		"glider_gun", Gun,
		"Gosper's glider gun - creates infinite gliders",
		[]string{
			"........................O...........",
			"......................O.O...........",
			"............OO......OO............OO",
			"...........O...O....OO............OO",
			"OO........O.....O...OO..............",
			"OO........O...O.OO....O.O...........",
			"..........O.....O.......O...........",
			"...........O...O....................",
			"............OO......................",
		},
	},
	{
		"lightweight_spaceship", Spaceship,
		"A small spaceship (LWSS) that travels horizontally",
		[]string{
			".OOOO",
			"O...O",
			"....O",
			"O..O.",
		},
	},
	{
		"loaf", StillLife,
		"Another common still life",
		[]string{
			".OO.",
			"O..O",
			".O.O",
			"..O.",
		},
	},
	{
		"pulsar", Oscillator,
		"Beautiful period 3 oscillator",
		[]string{
			"..OOO...OOO..",
			".............",
			"O....O.O....O",
			"O....O.O....O",
			"O....O.O....O",
			"..OOO...OOO..",
			".............",
			"..OOO...OOO..",
			"O....O.O....O",
			"O....O.O....O",
			"O....O.O....O",
			".............",
			"..OOO...OOO..",
		},
	},
	{
		"r_pentomino", Methuselah,
		"Small but chaotic - evolves for 1103 generations",
		[]string{
			".OO",
			"OO.",
			".O.",
		},
	},
	{
		"toad", Oscillator,
		"Period 2 oscillator",
		[]string{
			".OOO",
			"OOO.",
		},
	},
}

func init() {
	for _, s := range seeds {
		catalogue[s.name] = Pattern{
			Name:     s.name,
			Category: s.category,
			Descr:    s.descr,
			Offsets:  decode(s.art),
			Width:    artWidth(s.art),
			Height:   len(s.art),
		}
	}
}

//decode converts string art into alive cell offsets
func decode(art []string) [][2]int {
	var offsets [][2]int
	for row, line := range art {
		for col, ch := range line {
			if ch == 'O' {
				offsets = append(offsets, [2]int{row, col})
			}
		}
	}
	return offsets
}

func artWidth(art []string) (w int) {
	for _, line := range art {
		if len(line) > w {
			w = len(line)
		}
	}
	return
}

//Get returns the pattern registered under name
func Get(name string) (Pattern, error) {
	p, ok := catalogue[name]
	if !ok {
		return Pattern{}, errors.Wrap(ErrUnknownPattern, name)
	}
	return p, nil
}

//All returns every registered pattern, sorted by name
func All() []Pattern {
	out := make([]Pattern, 0, len(catalogue))
	for _, p := range catalogue {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

//Names returns all registered pattern names, sorted
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
