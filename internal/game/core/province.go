package core

import (
	"fmt"
	"math/rand"
)

// NationID identifies a nation within a simulation. Provinces store the ID of
// their owner rather than a reference; the simulation resolves it.
type NationID int

// NoOwner marks an unowned province
const NoOwner NationID = -1

// Province is a single grid cell.
type Province struct {
	Development int
	Owner       NationID
}

// NewProvince creates an unowned province with the given development, clamped
// to the valid range.
func NewProvince(development int) *Province {
	return &Province{Development: clampDevelopment(development), Owner: NoOwner}
}

// NewRandomProvince creates an unowned province with a starting development
// drawn from [MinDevelopment, MaxStartingDevelopment).
func NewRandomProvince(rng *rand.Rand) *Province {
	return NewProvince(MinDevelopment + rng.Intn(MaxStartingDevelopment))
}

// ChangeDevelopment adds delta and clamps the result to [MinDevelopment, MaxDevelopment].
func (p *Province) ChangeDevelopment(delta int) {
	p.Development = clampDevelopment(p.Development + delta)
}

func (p *Province) SetOwner(id NationID) { p.Owner = id }
func (p *Province) ClearOwner()          { p.Owner = NoOwner }
func (p *Province) IsOwned() bool        { return p.Owner != NoOwner }
func (p *Province) OwnedBy(id NationID) bool {
	return p.Owner != NoOwner && p.Owner == id
}

func (p *Province) String() string {
	if !p.IsOwned() {
		return fmt.Sprintf("%d:.", p.Development)
	}
	return fmt.Sprintf("%d:%d", p.Development, p.Owner)
}

func clampDevelopment(v int) int {
	switch {
	case v < MinDevelopment:
		return MinDevelopment
	case v > MaxDevelopment:
		return MaxDevelopment
	default:
		return v
	}
}
