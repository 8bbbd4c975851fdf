package rules

import "github.com/mitchelldurbincs/Universalis/internal/game/core"

// CapturePair is an attacking province and the enemy province it borders
type CapturePair struct {
	From core.Coordinate
	To   core.Coordinate
}

// Candidates lists what a nation can do from its current territory.
// Expansions hold one entry per adjacency, so an unowned cell bordered by two
// owned cells appears twice and is twice as likely to be picked.
type Candidates struct {
	Expansions []core.Coordinate
	Captures   []CapturePair
}

func (c Candidates) Empty() bool { return len(c.Expansions) == 0 && len(c.Captures) == 0 }

// CollectCandidates scans the grid row-major for cells owned by id and
// records every unowned neighbor as an expansion and every neighbor owned by
// another nation as a capture.
func CollectCandidates(g *core.Grid, id core.NationID) Candidates {
	var c Candidates
	forEachBorder(g, id, func(from, to core.Coordinate, neighbor *core.Province) bool {
		switch {
		case !neighbor.IsOwned():
			c.Expansions = append(c.Expansions, to)
		case neighbor.Owner != id:
			c.Captures = append(c.Captures, CapturePair{From: from, To: to})
		}
		return true
	})
	return c
}

// HasEmptyFrontier reports whether any unowned cell borders id's territory
func HasEmptyFrontier(g *core.Grid, id core.NationID) bool {
	found := false
	forEachBorder(g, id, func(_, _ core.Coordinate, neighbor *core.Province) bool {
		if !neighbor.IsOwned() {
			found = true
			return false
		}
		return true
	})
	return found
}

// ArmyLookup resolves a nation to its army size; ok is false for unknown nations
type ArmyLookup func(id core.NationID) (army int, ok bool)

// WeakerNeighbor returns the first bordering enemy whose army is strictly
// smaller than army.
func WeakerNeighbor(g *core.Grid, id core.NationID, army int, armyOf ArmyLookup) (core.NationID, bool) {
	weaker := core.NoOwner
	forEachBorder(g, id, func(_, _ core.Coordinate, neighbor *core.Province) bool {
		if !neighbor.IsOwned() || neighbor.Owner == id {
			return true
		}
		if defender, ok := armyOf(neighbor.Owner); ok && army > defender {
			weaker = neighbor.Owner
			return false
		}
		return true
	})
	return weaker, weaker != core.NoOwner
}

// forEachBorder visits every (owned cell, in-bounds neighbor) pair for id.
// Returning false from fn stops the scan.
func forEachBorder(g *core.Grid, id core.NationID, fn func(from, to core.Coordinate, neighbor *core.Province) bool) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if !g.Province(x, y).OwnedBy(id) {
				continue
			}
			from := core.NewCoordinate(x, y)
			for _, to := range g.NeighborsOf(x, y) {
				if !fn(from, to, g.At(to)) {
					return
				}
			}
		}
	}
}
