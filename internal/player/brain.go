// Package player exposes the decision core to the game platform over
// HTTP and wires evaluation, classification and betting together.
package player

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/tiltproof/holdembrain/internal/betting"
	"github.com/tiltproof/holdembrain/internal/game"
	"github.com/tiltproof/holdembrain/internal/strength"
	"github.com/tiltproof/holdembrain/poker"
)

// Classifier assigns a strength tier to the current hand.
type Classifier interface {
	Classify(ctx context.Context, hole, community []poker.Card, headsUp bool) strength.Tier
}

// Brain makes a bet decision for one game state. Any malformed input
// folds; nothing on this path errors out.
type Brain struct {
	ranker     strength.HandRanker
	classifier Classifier
	strategy   *betting.Strategy
	logger     *log.Logger
}

// NewBrain wires the decision pipeline.
func NewBrain(r strength.HandRanker, c Classifier, s *betting.Strategy, logger *log.Logger) *Brain {
	return &Brain{
		ranker:     r,
		classifier: c,
		strategy:   s,
		logger:     logger.WithPrefix("brain"),
	}
}

// BetRequest returns the chips to put in for the current state: 0 for a
// fold or check, the call amount for a call, the full amount for a raise.
func (b *Brain) BetRequest(ctx context.Context, state *game.State) int {
	me, ok := state.Me()
	if !ok {
		b.logger.Warn("No player in action; folding", "inAction", state.InAction)
		return 0
	}
	if len(me.HoleCards) != 2 {
		b.logger.Warn("Unexpected hole card count; folding", "count", len(me.HoleCards))
		return 0
	}

	result, source := b.ranker.Evaluate(ctx, me.HoleCards, state.CommunityCards)
	tier := b.classifier.Classify(ctx, me.HoleCards, state.CommunityCards, state.HeadsUp())
	decision := b.strategy.Decide(state, result, tier)

	b.logger.Info("Bet decision",
		"street", state.Street(),
		"hand", result.Description,
		"source", source,
		"tier", tier,
		"action", decision.Action,
		"amount", decision.Amount,
		"pot", state.Pot)
	return decision.Amount
}
