package engine

import (
	"sort"

	"github.com/linesgame/linesim/internal/model"
)

// matchAxes are the four line axes: horizontal, vertical, and the two
// diagonals. Each axis is walked in both opposing directions from the
// reference cell.
var matchAxes = [4]struct{ dr, dc int }{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// MatchAt returns the union of all qualifying lines through pos: for each
// of the 4 axes, the contiguous run of same-colored cells through pos is
// collected, and runs of at least matchLength contribute their cells to
// the result. The board is not modified. Returns nil when pos is empty or
// no axis qualifies.
func MatchAt(state *model.GameState, pos model.Position, matchLength int) []model.Position {
	color := state.Get(pos)
	if color.IsEmpty() {
		return nil
	}

	matched := make(map[model.Position]bool)
	for _, axis := range matchAxes {
		line := lineThrough(state, pos, axis.dr, axis.dc, color)
		if len(line) >= matchLength {
			for _, p := range line {
				matched[p] = true
			}
		}
	}
	if len(matched) == 0 {
		return nil
	}

	return sortedPositions(matched)
}

// lineThrough collects the contiguous run of cells of the given color
// along one axis through pos, walking outward in both directions
func lineThrough(state *model.GameState, pos model.Position, dr, dc int, color model.BallColor) []model.Position {
	line := []model.Position{pos}

	for _, sign := range [2]int{1, -1} {
		r, c := pos.Row+sign*dr, pos.Col+sign*dc
		for {
			p := model.Position{Row: r, Col: c}
			if !state.IsValidPosition(p) || state.Get(p) != color {
				break
			}
			line = append(line, p)
			r += sign * dr
			c += sign * dc
		}
	}
	return line
}

// removeMatchesAt clears all qualifying lines through pos and returns the
// removed positions
func removeMatchesAt(state *model.GameState, pos model.Position, matchLength int) []model.Position {
	removed := MatchAt(state, pos, matchLength)
	for _, p := range removed {
		state.Set(p, model.Empty)
	}
	return removed
}

// removeAllMatches scans the whole board for qualifying lines and clears
// them. Used after spawning, where randomly placed balls may complete a
// line by accident.
func removeAllMatches(state *model.GameState, matchLength int) []model.Position {
	matched := make(map[model.Position]bool)
	for _, pos := range state.OccupiedPositions() {
		color := state.Get(pos)
		for _, axis := range matchAxes {
			line := lineThrough(state, pos, axis.dr, axis.dc, color)
			if len(line) >= matchLength {
				for _, p := range line {
					matched[p] = true
				}
			}
		}
	}
	if len(matched) == 0 {
		return nil
	}

	removed := sortedPositions(matched)
	for _, p := range removed {
		state.Set(p, model.Empty)
	}
	return removed
}

// sortedPositions flattens a position set into row-major order, keeping
// results deterministic for callers and tests
func sortedPositions(set map[model.Position]bool) []model.Position {
	positions := make([]model.Position, 0, len(set))
	for p := range set {
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Row != positions[j].Row {
			return positions[i].Row < positions[j].Row
		}
		return positions[i].Col < positions[j].Col
	})
	return positions
}
