package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesgame/linesim/internal/model"
)

// assertUnitSteps checks that every step in a path is a single
// axis-aligned move
func assertUnitSteps(t *testing.T, path []model.Position) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		dr := path[i].Row - path[i-1].Row
		dc := path[i].Col - path[i-1].Col
		assert.Equal(t, 1, dr*dr+dc*dc, "step %d: %s -> %s is not a unit axis-aligned step", i, path[i-1], path[i])
	}
}

func TestFindPathOnEmptyBoard(t *testing.T) {
	state := model.NewEmptyState(9, 9)
	from := model.Position{Row: 0, Col: 0}
	to := model.Position{Row: 4, Col: 4}
	state.Set(from, model.Red)

	found, path := FindPath(state, from, to)
	require.True(t, found)

	// BFS shortest path: manhattan distance plus the source cell
	assert.Len(t, path, 9)
	assert.Equal(t, from, path[0])
	assert.Equal(t, to, path[len(path)-1])
	assertUnitSteps(t, path)
}

func TestFindPathNeverStepsDiagonally(t *testing.T) {
	state := model.NewEmptyState(9, 9)
	from := model.Position{Row: 0, Col: 0}
	to := model.Position{Row: 8, Col: 8}
	state.Set(from, model.Red)

	found, path := FindPath(state, from, to)
	require.True(t, found)

	// A diagonal route would take 8 steps; the axis-aligned one takes 16
	assert.Len(t, path, 17)
	assertUnitSteps(t, path)
}

func TestFindPathAroundObstacles(t *testing.T) {
	state := model.NewEmptyState(9, 9)
	from := model.Position{Row: 4, Col: 0}
	to := model.Position{Row: 4, Col: 8}
	state.Set(from, model.Red)
	// Wall down column 4 with a single gap at the bottom
	for row := 0; row < 8; row++ {
		state.Set(model.Position{Row: row, Col: 4}, model.Blue)
	}

	found, path := FindPath(state, from, to)
	require.True(t, found)
	assert.Equal(t, from, path[0])
	assert.Equal(t, to, path[len(path)-1])
	assertUnitSteps(t, path)

	// The path must pass through the gap at (8,4)
	assert.Contains(t, path, model.Position{Row: 8, Col: 4})

	// Every intermediate cell is empty
	for _, pos := range path[1 : len(path)-1] {
		assert.True(t, state.IsEmpty(pos), "path crosses occupied cell %s", pos)
	}
}

func TestFindPathUnreachable(t *testing.T) {
	state := model.NewEmptyState(9, 9)
	from := model.Position{Row: 0, Col: 0}
	to := model.Position{Row: 0, Col: 2}
	state.Set(from, model.Red)
	for row := 0; row < 9; row++ {
		state.Set(model.Position{Row: row, Col: 1}, model.Blue)
	}

	found, path := FindPath(state, from, to)
	assert.False(t, found)
	assert.Empty(t, path)
}

func TestFindPathDestinationAdjacent(t *testing.T) {
	state := model.NewEmptyState(9, 9)
	from := model.Position{Row: 3, Col: 3}
	to := model.Position{Row: 3, Col: 4}
	state.Set(from, model.Red)

	found, path := FindPath(state, from, to)
	require.True(t, found)
	assert.Equal(t, []model.Position{from, to}, path)
}

// An occupied destination is traversable as the endpoint even though
// occupied cells block traversal elsewhere. The engine rejects moves to
// occupied destinations before pathfinding; this property matters for the
// destination cell freed by the moving ball itself never blocking.
func TestFindPathDestinationTraversable(t *testing.T) {
	state := model.NewEmptyState(9, 9)
	from := model.Position{Row: 0, Col: 0}
	to := model.Position{Row: 0, Col: 2}
	state.Set(from, model.Red)
	state.Set(to, model.Blue)

	found, path := FindPath(state, from, to)
	require.True(t, found)
	assert.Equal(t, to, path[len(path)-1])
}

func TestFindPathIsDeterministic(t *testing.T) {
	state := model.NewEmptyState(9, 9)
	from := model.Position{Row: 2, Col: 2}
	to := model.Position{Row: 6, Col: 6}
	state.Set(from, model.Red)
	state.Set(model.Position{Row: 4, Col: 4}, model.Blue)

	_, first := FindPath(state, from, to)
	for i := 0; i < 5; i++ {
		_, again := FindPath(state, from, to)
		assert.Equal(t, first, again)
	}
}
