package betting

import (
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/tiltproof/holdembrain/internal/game"
	"github.com/tiltproof/holdembrain/internal/strength"
	"github.com/tiltproof/holdembrain/poker"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func testState(pot, buyIn, myBet, stack int) *game.State {
	return &game.State{
		Pot:          pot,
		CurrentBuyIn: buyIn,
		MinimumRaise: 20,
		InAction:     0,
		Players: []game.Player{
			{Name: "us", Status: game.StatusActive, Stack: stack, Bet: myBet},
			{Name: "them", Status: game.StatusActive, Stack: 1000},
		},
	}
}

func neverBluff() *Strategy {
	cfg := DefaultConfig()
	cfg.BluffFrequency = 0
	return New(cfg, rand.New(rand.NewSource(1)), testLogger())
}

func TestDecidePerTier(t *testing.T) {
	result := poker.HandResult{Description: "Pair of Ks"}

	tests := []struct {
		name   string
		tier   strength.Tier
		state  *game.State
		action Action
		amount int
	}{
		{name: "premium raises pot", tier: strength.Premium, state: testState(100, 40, 0, 1000), action: Raise, amount: 140},
		{name: "strong min raises", tier: strength.Strong, state: testState(100, 40, 0, 1000), action: Raise, amount: 60},
		{name: "decent calls", tier: strength.Decent, state: testState(100, 40, 0, 1000), action: Call, amount: 40},
		{name: "weak checks for free", tier: strength.WeakPlayable, state: testState(100, 0, 0, 1000), action: Check},
		{name: "weak calls cheap", tier: strength.WeakPlayable, state: testState(100, 20, 0, 1000), action: Call, amount: 20},
		{name: "weak folds expensive", tier: strength.WeakPlayable, state: testState(100, 80, 0, 1000), action: Fold},
		{name: "trash checks for free", tier: strength.Trash, state: testState(100, 0, 0, 1000), action: Check},
		{name: "trash folds to bet", tier: strength.Trash, state: testState(100, 40, 0, 1000), action: Fold},
		{name: "marginal folds to bet", tier: strength.Marginal, state: testState(100, 40, 0, 1000), action: Fold},
	}

	s := neverBluff()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := s.Decide(tt.state, result, tt.tier)
			assert.Equal(t, tt.action, decision.Action)
			assert.Equal(t, tt.amount, decision.Amount)
		})
	}
}

func TestDecideCapsAtStack(t *testing.T) {
	s := neverBluff()
	decision := s.Decide(testState(500, 100, 0, 120), poker.HandResult{}, strength.Premium)
	assert.Equal(t, Raise, decision.Action)
	assert.Equal(t, 120, decision.Amount)
}

// With a fixed seed the bluffing path is deterministic.
func TestBluffingIsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BluffFrequency = 1.0

	s := New(cfg, rand.New(rand.NewSource(7)), testLogger())
	decision := s.Decide(testState(100, 40, 0, 1000), poker.HandResult{}, strength.Trash)
	assert.Equal(t, Raise, decision.Action, "bluff frequency 1.0 always raises")

	s = New(Config{BluffFrequency: 0, MaxCallFraction: 0.25}, rand.New(rand.NewSource(7)), testLogger())
	decision = s.Decide(testState(100, 40, 0, 1000), poker.HandResult{}, strength.Trash)
	assert.Equal(t, Fold, decision.Action, "bluff frequency 0 never raises")
}
