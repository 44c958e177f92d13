package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"golife/src/patterns"
)

func TestPatternListMentionsEveryPattern(t *testing.T) {
	out := PatternList()
	for _, p := range patterns.All() {
		assert.Contains(t, out, p.Name)
	}
	assert.Contains(t, out, "Available patterns")
	assert.Contains(t, out, "still life")
	assert.Contains(t, out, "methuselah")
}
