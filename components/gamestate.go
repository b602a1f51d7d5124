package components

import cfg "github.com/automoto/troveyball/config"

// GameStateData holds one round's counters. A round owns exactly one value;
// finishing the round replaces it with NewGameState rather than resetting
// fields in place.
type GameStateData struct {
	BasketPlaced   bool
	Power          float64
	RemainingBalls int
	Scored         bool
}

// NewGameState returns the counters every round starts from.
func NewGameState() *GameStateData {
	return &GameStateData{
		BasketPlaced:   false,
		Power:          cfg.Game.InitialPower,
		RemainingBalls: cfg.Game.InitialBallCount,
		Scored:         false,
	}
}

// Reset restores the charge power. Other fields are untouched.
func (g *GameStateData) Reset() {
	g.Power = cfg.Game.InitialPower
}

// BuildPower adds one charge step. It does nothing until a basket is placed.
func (g *GameStateData) BuildPower() {
	if !g.BasketPlaced {
		return
	}
	g.Power += cfg.Game.PowerStep
}

// Score ends the round as a success: no balls remain and Scored is set.
func (g *GameStateData) Score() {
	g.RemainingBalls = 0
	g.Scored = true
}

// RemoveAvailableBall consumes one ball. Callers check HasRemainingBalls
// first; going below zero is not prevented here.
func (g *GameStateData) RemoveAvailableBall() {
	g.RemainingBalls--
}

// HasRemainingBalls reports whether another throw is allowed.
func (g *GameStateData) HasRemainingBalls() bool {
	return g.RemainingBalls > 0
}

// AddBasket marks the hoop as placed and active.
func (g *GameStateData) AddBasket() {
	g.BasketPlaced = true
}
