package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinate_IsAdjacentTo(t *testing.T) {
	c := NewCoordinate(2, 2)
	assert.True(t, c.IsAdjacentTo(NewCoordinate(2, 1)))
	assert.True(t, c.IsAdjacentTo(NewCoordinate(3, 2)))
	assert.False(t, c.IsAdjacentTo(NewCoordinate(3, 3)), "diagonals are not adjacent")
	assert.False(t, c.IsAdjacentTo(c))
}

func TestCoordinate_ValidNeighbors(t *testing.T) {
	assert.Len(t, NewCoordinate(0, 0).ValidNeighbors(5, 5), 2)
	assert.Len(t, NewCoordinate(2, 2).ValidNeighbors(5, 5), 4)
	assert.Len(t, NewCoordinate(4, 2).ValidNeighbors(5, 5), 3)
	assert.Equal(t, "(1,2)", NewCoordinate(1, 2).String())
}
