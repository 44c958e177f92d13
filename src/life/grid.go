package life

import (
	"math/rand"

	"github.com/pkg/errors"
)

//Error kinds surfaced by the engine.
//Callers match them with errors.Is; a failed call leaves the grid unchanged.
var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrOutOfBounds      = errors.New("out of bounds")
	ErrInvalidParameter = errors.New("invalid parameter")
)

type Cell bool

//Grid is the bounded, non-wrapping Life universe.
//It holds the cell matrix and the generation counter and nothing else:
//no locking, no goroutines. The caller serializes access.
type Grid struct {
	width      int
	height     int
	cells      [][]Cell
	generation int
	population int
}

//New creates an all-dead grid of the given dimensions, generation 0
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "%vx%v", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  newMatrix(width, height),
	}, nil
}

func (g *Grid) Width() int      { return g.width }
func (g *Grid) Height() int     { return g.height }
func (g *Grid) Generation() int { return g.generation }

//Population returns the number of currently alive cells
func (g *Grid) Population() int { return g.population }

//Alive reports whether the cell at row, col is alive
//coordinates outside the grid are always dead
func (g *Grid) Alive(row, col int) bool {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return false
	}
	return bool(g.cells[row][col])
}

//Set sets the state of a single cell
func (g *Grid) Set(row, col int, alive bool) error {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return errors.Wrapf(ErrOutOfBounds, "cell %v,%v on %vx%v grid", row, col, g.width, g.height)
	}
	g.set(row, col, alive)
	return nil
}

//set is Set without the bounds error, for callers that already clipped
func (g *Grid) set(row, col int, alive bool) {
	if bool(g.cells[row][col]) == alive {
		return
	}
	g.cells[row][col] = Cell(alive)
	if alive {
		g.population++
	} else {
		g.population--
	}
}

//Place sets alive every cell at origin+offset, for a set of row,col offsets.
//Offsets falling outside the grid are clipped silently: a pattern close to
//an edge is simply truncated. Placement is additive, existing live cells stay.
func (g *Grid) Place(offsets [][2]int, originRow, originCol int) {
	for _, o := range offsets {
		row := originRow + o[0]
		col := originCol + o[1]
		if row < 0 || row >= g.height || col < 0 || col >= g.width {
			continue
		}
		g.set(row, col, true)
	}
}

//Randomize sets each cell alive independently with the given probability.
//The random source is injected so runs can be reproduced with a fixed seed.
func (g *Grid) Randomize(rng *rand.Rand, density float64) error {
	if density < 0 || density > 1 {
		return errors.Wrapf(ErrInvalidParameter, "density %v outside [0,1]", density)
	}
	population := 0
	g.walk(func(row, col int, _ Cell) {
		alive := rng.Float64() < density
		g.cells[row][col] = Cell(alive)
		if alive {
			population++
		}
	})
	g.population = population
	return nil
}

//LiveNeighbors counts the alive cells among the up-to-8 Moore neighbors
//of row, col. Neighbors outside the grid count as dead, so an edge cell
//sees at most 5 and a corner cell at most 3.
func (g *Grid) LiveNeighbors(row, col int) int {
	count := 0
	for dr := -1; dr < 2; dr++ {
		for dc := -1; dc < 2; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr := row + dr
			nc := col + dc
			if nr < 0 || nr >= g.height || nc < 0 || nc >= g.width {
				continue
			}
			if g.cells[nr][nc] {
				count++
			}
		}
	}
	return count
}

//Step advances the universe by one generation.
//The whole next matrix is computed from the current one into a fresh buffer
//and then swapped in, so every cell sees the same frozen snapshot and no
//update order artifacts are possible. Returns whether anything changed.
func (g *Grid) Step() (changed bool) {
	next := newMatrix(g.width, g.height)
	population := 0
	g.walk(func(row, col int, c Cell) {
		state := g.cellNextState(row, col)
		changed = changed || state != bool(c)
		next[row][col] = Cell(state)
		if state {
			population++
		}
	})
	g.cells = next
	g.population = population
	g.generation++
	return changed
}

//cellNextState applies the Life transition rules to a single cell
func (g *Grid) cellNextState(row, col int) bool {
	liveNeighbors := g.LiveNeighbors(row, col)
	if liveNeighbors < 2 {
		return false //underpopulation
	} else if liveNeighbors > 3 {
		return false //overpopulation
	} else if liveNeighbors == 3 {
		return true //survival or reproduction
	}
	//exactly 2: survivors only
	return bool(g.cells[row][col])
}

//Clear kills all cells and resets the generation counter
func (g *Grid) Clear() {
	g.walk(func(row, col int, _ Cell) {
		g.cells[row][col] = false
	})
	g.generation = 0
	g.population = 0
}

//Rows returns a copy of the cell matrix.
//Mutating the copy cannot affect the engine's own state.
func (g *Grid) Rows() [][]Cell {
	rows := newMatrix(g.width, g.height)
	for i := range g.cells {
		copy(rows[i], g.cells[i])
	}
	return rows
}

//walk visits every cell and calls cb
func (g *Grid) walk(cb func(row, col int, c Cell)) {
	for row := range g.cells {
		for col := range g.cells[row] {
			cb(row, col, g.cells[row][col])
		}
	}
}

//newMatrix allocates a height x width cell matrix over a single backing slice
func newMatrix(width, height int) [][]Cell {
	rows := make([][]Cell, height)
	b := make([]Cell, width*height)
	for i := range rows {
		start := width * i
		rows[i] = b[start : start+width : start+width]
	}
	return rows
}
