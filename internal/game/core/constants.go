package core

// Province development bounds
const (
	MinDevelopment         = 0
	MaxDevelopment         = 25
	MaxStartingDevelopment = 3
)

// Army economy
const (
	MinimumArmySize           = 1
	ArmyGrowthModifier        = 5
	ArmyCapModifier           = 8
	ArmyLossFactor            = 2
	CaptureDevelopmentPenalty = -1
	LowArmyRatio              = 0.2
)

// Defensive strategy development rolls
const (
	DevelopmentChance   = 0.25
	DevelopmentIncrease = 1
)

// End of round development distribution
const (
	DevelopmentProvinceFactor = 2
	DistributedDevelopment    = 1
)

// DefaultMaxIdleTurns is the number of consecutive rounds without a change in
// total owned provinces after which a run is declared a stalemate.
const DefaultMaxIdleTurns = 250
