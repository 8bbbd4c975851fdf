// Package names generates unique nation names from a fixed table of base
// names and realm suffixes.
package names

import (
	"fmt"
	"math/rand"

	"github.com/mitchelldurbincs/Universalis/internal/game/core"
)

var baseNames = []string{
	"France", "Japan", "India", "China", "Brazil", "Norway", "Sweden", "Spain", "Peru", "Mexico",
	"Canada", "Turkey", "Poland", "Greece", "Morocco", "Nepal", "Vietnam", "Thailand", "Australia",
	"England", "Portugal", "Italy", "Indonesia", "Scotland", "Antarctica",
}

var suffixes = []string{
	"County", "Duchy", "Kingdom", "Empire", "Province", "Realm", "Republic", "Federation", "Tribe", "Dynasty",
	"Coalition", "Union", "Confederacy", "Dominion", "Territory", "Colony", "Collective", "Clan", "Regime", "League",
	"Protectorate", "Domain", "March", "Principality", "Faction",
}

// Generator hands out "<Base> <Suffix>" names and never repeats one. Each
// generator owns its used-name set.
type Generator struct {
	rng  *rand.Rand
	used map[string]struct{}
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng, used: make(map[string]struct{})}
}

// Capacity is the number of distinct names available
func (g *Generator) Capacity() int { return len(baseNames) * len(suffixes) }

// Used returns how many names have been handed out
func (g *Generator) Used() int { return len(g.used) }

// Next returns a fresh unused name, or ErrCapacityExhausted
func (g *Generator) Next() (string, error) {
	if len(g.used) >= g.Capacity() {
		return "", fmt.Errorf("%d names issued: %w", len(g.used), core.ErrCapacityExhausted)
	}

	for {
		name := baseNames[g.rng.Intn(len(baseNames))] + " " + suffixes[g.rng.Intn(len(suffixes))]
		if _, taken := g.used[name]; taken {
			continue
		}
		g.used[name] = struct{}{}
		return name, nil
	}
}

// Reset forgets every issued name
func (g *Generator) Reset() {
	g.used = make(map[string]struct{})
}
