package life_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golife/src/life"
	"golife/src/patterns"
)

func settle(t *testing.T, width, height int, name string, originRow, originCol int) *life.Grid {
	t.Helper()
	g, err := life.New(width, height)
	require.NoError(t, err)
	p, err := patterns.Get(name)
	require.NoError(t, err)
	g.Place(p.Offsets, originRow, originCol)
	return g
}

//liveSet collects the alive cells as row,col pairs
func liveSet(g *life.Grid) map[[2]int]bool {
	set := map[[2]int]bool{}
	for row, cells := range g.Rows() {
		for col, c := range cells {
			if bool(c) {
				set[[2]int{row, col}] = true
			}
		}
	}
	return set
}

func shifted(set map[[2]int]bool, dr, dc int) map[[2]int]bool {
	out := make(map[[2]int]bool, len(set))
	for cell := range set {
		out[[2]int{cell[0] + dr, cell[1] + dc}] = true
	}
	return out
}

func TestBlockIsStill(t *testing.T) {
	g := settle(t, 10, 10, "block", 4, 4)
	original := liveSet(g)
	require.Equal(t, 4, g.Population())

	for i := 0; i < 20; i++ {
		g.Step()
		assert.Equal(t, original, liveSet(g), "after %v steps", i+1)
	}
}

func TestBlinkerOscillatesWithPeriodTwo(t *testing.T) {
	g := settle(t, 10, 10, "blinker", 5, 4)
	horizontal := liveSet(g)
	require.Equal(t, 3, g.Population())

	g.Step()
	vertical := liveSet(g)
	assert.NotEqual(t, horizontal, vertical)
	assert.True(t, g.Alive(4, 5))
	assert.True(t, g.Alive(5, 5))
	assert.True(t, g.Alive(6, 5))

	g.Step()
	assert.Equal(t, horizontal, liveSet(g))
}

func TestToadAndBeaconArePeriodTwo(t *testing.T) {
	for _, name := range []string{"toad", "beacon"} {
		g := settle(t, 12, 12, name, 4, 4)
		original := liveSet(g)

		g.Step()
		assert.NotEqual(t, original, liveSet(g), name)
		g.Step()
		assert.Equal(t, original, liveSet(g), name)
	}
}

func TestPulsarIsPeriodThree(t *testing.T) {
	g := settle(t, 21, 21, "pulsar", 4, 4)
	original := liveSet(g)
	require.Equal(t, 48, g.Population())

	g.Step()
	assert.NotEqual(t, original, liveSet(g))
	g.Step()
	g.Step()
	assert.Equal(t, original, liveSet(g))
}

func TestGliderTravelsDiagonally(t *testing.T) {
	g := settle(t, 50, 50, "glider", 2, 2)
	original := liveSet(g)
	require.Equal(t, 5, g.Population())

	//one period is 4 steps and moves the glider by 1,1
	for period := 1; period <= 10; period++ {
		for i := 0; i < 4; i++ {
			g.Step()
		}
		assert.Equal(t, 5, g.Population(), "period %v", period)
		assert.Equal(t, shifted(original, period, period), liveSet(g), "period %v", period)
	}
}

func TestDiehardDiesAtGeneration130(t *testing.T) {
	g := settle(t, 100, 100, "diehard", 48, 46)

	for i := 0; i < 129; i++ {
		g.Step()
	}
	assert.Greater(t, g.Population(), 0, "alive at generation 129")

	g.Step()
	assert.Equal(t, 130, g.Generation())
	assert.Equal(t, 0, g.Population(), "dead at generation 130")
}

func TestGliderGunEmitsGliders(t *testing.T) {
	g := settle(t, 80, 80, "glider_gun", 2, 2)
	require.Equal(t, 36, g.Population())

	//after one full gun period the gun is back to its shape
	//with a detached glider on the field
	for i := 0; i < 30; i++ {
		g.Step()
	}
	assert.GreaterOrEqual(t, g.Population(), 41)
}
