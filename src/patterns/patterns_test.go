package patterns

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var required = []string{
	"acorn", "beacon", "beehive", "blinker", "block", "diehard", "glider",
	"glider_gun", "lightweight_spaceship", "loaf", "pulsar", "r_pentomino",
	"toad",
}

func TestAllRequiredPatternsRegistered(t *testing.T) {
	for _, name := range required {
		p, err := Get(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, p.Name)
		assert.NotEmpty(t, p.Offsets, name)
		assert.NotEmpty(t, p.Descr, name)
	}
	assert.Len(t, All(), len(required))
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("no-such-pattern")
	assert.ErrorIs(t, err, ErrUnknownPattern)
}

func TestAllIsSortedByName(t *testing.T) {
	all := All()
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = p.Name
	}
	assert.True(t, sort.StringsAreSorted(names), "got order %v", names)
	assert.Equal(t, names, Names())
}

func TestCategories(t *testing.T) {
	for name, want := range map[string]Category{
		"block":                 StillLife,
		"beehive":               StillLife,
		"loaf":                  StillLife,
		"blinker":               Oscillator,
		"toad":                  Oscillator,
		"beacon":                Oscillator,
		"pulsar":                Oscillator,
		"glider":                Spaceship,
		"lightweight_spaceship": Spaceship,
		"glider_gun":            Gun,
		"r_pentomino":           Methuselah,
		"diehard":               Methuselah,
		"acorn":                 Methuselah,
	} {
		p, err := Get(name)
		require.NoError(t, err)
		assert.Equal(t, want, p.Category, name)
	}
}

func TestCanonicalCellCounts(t *testing.T) {
	for name, cells := range map[string]int{
		"block":                 4,
		"beehive":               6,
		"loaf":                  7,
		"blinker":               3,
		"toad":                  6,
		"beacon":                8,
		"pulsar":                48,
		"glider":                5,
		"lightweight_spaceship": 9,
		"glider_gun":            36,
		"r_pentomino":           5,
		"diehard":               7,
		"acorn":                 7,
	} {
		p, err := Get(name)
		require.NoError(t, err)
		assert.Len(t, p.Offsets, cells, name)
	}
}

func TestDimensions(t *testing.T) {
	for name, size := range map[string][2]int{
		"glider":     {3, 3},
		"glider_gun": {36, 9},
		"pulsar":     {13, 13},
		"blinker":    {3, 1},
		"diehard":    {8, 3},
	} {
		p, err := Get(name)
		require.NoError(t, err)
		assert.Equal(t, size[0], p.Width, name)
		assert.Equal(t, size[1], p.Height, name)
	}
}

func TestOffsetsLieWithinDimensions(t *testing.T) {
	for _, p := range All() {
		for _, o := range p.Offsets {
			assert.GreaterOrEqual(t, o[0], 0, p.Name)
			assert.Less(t, o[0], p.Height, p.Name)
			assert.GreaterOrEqual(t, o[1], 0, p.Name)
			assert.Less(t, o[1], p.Width, p.Name)
		}
	}
}
