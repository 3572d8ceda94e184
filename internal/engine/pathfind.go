package engine

import "github.com/linesgame/linesim/internal/model"

// bfsDirections is the fixed neighbor visit order: right, down, left, up.
// BFS guarantees a shortest path regardless of this order, but pinning it
// makes the specific path returned reproducible.
var bfsDirections = [4]struct{ dr, dc int }{
	{0, 1},
	{1, 0},
	{0, -1},
	{-1, 0},
}

// FindPath searches for a route between two cells using breadth-first
// search on the 4-connected grid. A cell is traversable if it is empty;
// the destination itself is always traversable. Returns the path from
// source to destination inclusive, or (false, nil) if unreachable.
func FindPath(state *model.GameState, from, to model.Position) (bool, []model.Position) {
	type node struct {
		pos  model.Position
		prev int // index into visited order, -1 for the source
	}

	queue := []node{{pos: from, prev: -1}}
	visited := map[model.Position]bool{from: true}

	for head := 0; head < len(queue); head++ {
		current := queue[head]

		if current.pos == to {
			// Walk the parent chain back to the source
			var reversed []model.Position
			for i := head; i != -1; i = queue[i].prev {
				reversed = append(reversed, queue[i].pos)
			}
			path := make([]model.Position, len(reversed))
			for i := range reversed {
				path[i] = reversed[len(reversed)-1-i]
			}
			return true, path
		}

		for _, d := range bfsDirections {
			next := model.Position{Row: current.pos.Row + d.dr, Col: current.pos.Col + d.dc}
			if !state.IsValidPosition(next) || visited[next] {
				continue
			}
			if !state.IsEmpty(next) && next != to {
				continue
			}
			visited[next] = true
			queue = append(queue, node{pos: next, prev: head})
		}
	}

	return false, nil
}
