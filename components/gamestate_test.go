package components

import (
	"testing"

	cfg "github.com/automoto/troveyball/config"
)

func TestNewGameStateStartsFromInitialCounters(t *testing.T) {
	g := NewGameState()
	if !g.HasRemainingBalls() {
		t.Fatalf("new round should have balls")
	}
	if g.Power != 1.0 {
		t.Fatalf("power = %f, want 1.0", g.Power)
	}
	if g.BasketPlaced {
		t.Fatalf("new round should not have a basket")
	}
	if g.Scored {
		t.Fatalf("new round should not be scored")
	}
	if g.RemainingBalls != cfg.Game.InitialBallCount {
		t.Fatalf("remaining = %d, want %d", g.RemainingBalls, cfg.Game.InitialBallCount)
	}
}

func TestBuildPowerIgnoredWithoutBasket(t *testing.T) {
	g := NewGameState()
	for i := 0; i < 50; i++ {
		g.BuildPower()
	}
	if g.Power != cfg.Game.InitialPower {
		t.Fatalf("power = %f without basket, want %f", g.Power, cfg.Game.InitialPower)
	}
}

func TestBuildPowerAccumulatesWithBasket(t *testing.T) {
	g := NewGameState()
	g.AddBasket()
	for i := 0; i < 5; i++ {
		g.BuildPower()
	}
	if g.Power != 6.0 {
		t.Fatalf("power after 5 builds = %f, want 6.0", g.Power)
	}
}

func TestResetRestoresOnlyPower(t *testing.T) {
	tests := []struct {
		name   string
		builds int
	}{
		{"no charge", 0},
		{"short charge", 3},
		{"long charge", 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGameState()
			g.AddBasket()
			g.RemoveAvailableBall()
			for i := 0; i < tt.builds; i++ {
				g.BuildPower()
			}
			g.Reset()
			if g.Power != cfg.Game.InitialPower {
				t.Fatalf("power after reset = %f, want %f", g.Power, cfg.Game.InitialPower)
			}
			if !g.BasketPlaced || g.RemainingBalls != cfg.Game.InitialBallCount-1 {
				t.Fatalf("reset touched other fields: %+v", g)
			}
		})
	}
}

func TestRemoveAvailableBallDepletesButDoesNotGuard(t *testing.T) {
	g := NewGameState()
	g.AddBasket()
	for i := 0; i < cfg.Game.InitialBallCount; i++ {
		g.RemoveAvailableBall()
	}
	if g.HasRemainingBalls() {
		t.Fatalf("balls should be depleted after %d removals", cfg.Game.InitialBallCount)
	}

	g.RemoveAvailableBall()
	if g.RemainingBalls != -1 {
		t.Fatalf("remaining = %d, want -1 (state does not guard)", g.RemainingBalls)
	}
}

func TestScoreForcesRoundEnd(t *testing.T) {
	g := NewGameState()
	g.AddBasket()
	if g.RemainingBalls != 3 {
		t.Fatalf("precondition: remaining = %d, want 3", g.RemainingBalls)
	}
	g.Score()
	if g.RemainingBalls != 0 {
		t.Fatalf("remaining after score = %d, want 0", g.RemainingBalls)
	}
	if !g.Scored {
		t.Fatalf("scored flag not set")
	}
	if g.HasRemainingBalls() {
		t.Fatalf("no throws should be possible after a score")
	}
}

func TestFreshStateIsIndependentOfPreviousRound(t *testing.T) {
	prev := NewGameState()
	prev.AddBasket()
	prev.BuildPower()
	prev.RemoveAvailableBall()
	prev.Score()

	next := NewGameState()
	want := GameStateData{
		BasketPlaced:   false,
		Power:          cfg.Game.InitialPower,
		RemainingBalls: cfg.Game.InitialBallCount,
		Scored:         false,
	}
	if *next != want {
		t.Fatalf("fresh state = %+v, want %+v", *next, want)
	}
	if next == prev {
		t.Fatalf("NewGameState returned the previous instance")
	}
}
