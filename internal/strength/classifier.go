// Package strength maps raw cards and hand results onto the coarse
// strategic tiers the betting logic consumes. Classification is a
// stateless function of (hole cards, board, heads-up flag); all betting
// heuristics live downstream and only ever see the tier.
package strength

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/tiltproof/holdembrain/internal/ranker"
	"github.com/tiltproof/holdembrain/poker"
)

// Tier is the coarse strength bucket used in place of a raw hand category.
type Tier int

const (
	Trash Tier = iota
	Marginal
	WeakPlayable
	Decent
	Strong
	Premium
)

func (t Tier) String() string {
	switch t {
	case Trash:
		return "trash"
	case Marginal:
		return "marginal"
	case WeakPlayable:
		return "weak-playable"
	case Decent:
		return "decent"
	case Strong:
		return "strong"
	case Premium:
		return "premium"
	default:
		return "unknown"
	}
}

// Config holds the heads-up widening thresholds. These moved around during
// live play tuning, so they are knobs rather than constants; the defaults
// are the settled values.
type Config struct {
	// HeadsUpDecentMinRank widens Decent to any hand holding a card at or
	// above this rank.
	HeadsUpDecentMinRank poker.Rank

	// HeadsUpDecentSuitedGap widens Decent to suited cards within this gap.
	HeadsUpDecentSuitedGap int

	// HeadsUpDecentConnectedGap widens Decent to connectors within this gap.
	HeadsUpDecentConnectedGap int

	// HeadsUpPlayableMinRank widens WeakPlayable to any hand holding a card
	// at or above this rank.
	HeadsUpPlayableMinRank poker.Rank

	// HeadsUpPlayableGap widens WeakPlayable to cards within this gap.
	HeadsUpPlayableGap int
}

// DefaultConfig returns the settled heads-up widening thresholds.
func DefaultConfig() Config {
	return Config{
		HeadsUpDecentMinRank:      poker.Eight,
		HeadsUpDecentSuitedGap:    3,
		HeadsUpDecentConnectedGap: 1,
		HeadsUpPlayableMinRank:    poker.Six,
		HeadsUpPlayableGap:        2,
	}
}

// HandRanker is the evaluation dependency of the classifier.
type HandRanker interface {
	Evaluate(ctx context.Context, hole, community []poker.Card) (poker.HandResult, ranker.Source)
}

// Classifier assigns strength tiers. It is safe for concurrent use.
type Classifier struct {
	cfg    Config
	ranker HandRanker
	logger *log.Logger
}

// New creates a classifier with the given widening config and ranker.
func New(cfg Config, r HandRanker, logger *log.Logger) *Classifier {
	return &Classifier{
		cfg:    cfg,
		ranker: r,
		logger: logger.WithPrefix("strength"),
	}
}

// Classify returns exactly one tier for the given cards. Preflop hands go
// through the precedence table; with three or more community cards the
// tier derives from the evaluated hand and is refined against the board.
// Heads-up classification never returns a lower tier than the same hand
// classified full-ring.
func (c *Classifier) Classify(ctx context.Context, hole, community []poker.Card, headsUp bool) Tier {
	if len(hole) != 2 {
		return Trash
	}

	if len(community) < 3 {
		tier := preflopTier(hole)
		if headsUp {
			tier = max(tier, c.headsUpTier(hole))
		}
		return tier
	}

	return c.postflopTier(ctx, hole, community)
}

// preflopTier walks the precedence table; the first matching row wins.
func preflopTier(hole []poker.Card) Tier {
	hi, lo := hole[0].Rank, hole[1].Rank
	if lo > hi {
		hi, lo = lo, hi
	}
	pair := hi == lo
	suited := hole[0].Suit == hole[1].Suit
	gap := int(hi - lo)

	switch {
	case pair && hi >= poker.Ten,
		hi == poker.Ace && lo >= poker.Queen:
		return Strong

	case pair,
		hi >= poker.Nine,
		suited && gap <= 2,
		hi == poker.Ace || hi == poker.King,
		hi >= poker.Ten && lo >= poker.Ten:
		return Decent

	case suited,
		gap <= 1,
		hi >= poker.Jack,
		lo >= poker.Eight:
		return WeakPlayable

	case hi >= poker.Ten,
		suited && gap <= 3,
		gap <= 2:
		return Marginal

	default:
		return Trash
	}
}

// headsUpTier applies the widened predicates used when only one opponent
// remains. Ranges open up dramatically heads-up, so hands that fold
// full-ring become playable or better.
func (c *Classifier) headsUpTier(hole []poker.Card) Tier {
	hi, lo := hole[0].Rank, hole[1].Rank
	if lo > hi {
		hi, lo = lo, hi
	}
	suited := hole[0].Suit == hole[1].Suit
	gap := int(hi - lo)

	switch {
	case hi >= c.cfg.HeadsUpDecentMinRank,
		suited && gap <= c.cfg.HeadsUpDecentSuitedGap,
		gap <= c.cfg.HeadsUpDecentConnectedGap:
		return Decent

	case hi >= c.cfg.HeadsUpPlayableMinRank,
		suited,
		gap <= c.cfg.HeadsUpPlayableGap:
		return WeakPlayable

	default:
		return Trash
	}
}

// postflopTier derives a base tier from the evaluated hand, then refines
// it against the board texture.
func (c *Classifier) postflopTier(ctx context.Context, hole, community []poker.Card) Tier {
	result, source := c.ranker.Evaluate(ctx, hole, community)
	tier := baseTier(result)

	switch result.Category {
	case poker.OnePair:
		// A bare pair shrinks fast on dangerous boards.
		if boardPaired(community) || flushPossible(community) {
			tier = demote(tier)
		}
	case poker.TwoPair:
		if boardPaired(community) || flushPossible(community) {
			tier = Decent
		}
	case poker.HighCard:
		// The evaluator's primary can come from the board; an unimproved
		// hand is only worth what the hole cards carry.
		tier = Trash
		if topRank(hole) >= poker.Queen {
			tier = Marginal
		}
		if overcards(hole, community) || liveDraw(hole, community) {
			tier = max(tier, WeakPlayable)
		}
	}

	c.logger.Debug("Classified hand",
		"hand", result.Description,
		"source", source,
		"tier", tier)
	return tier
}

// baseTier maps a hand category (and its primary value) to a tier before
// board refinement.
func baseTier(result poker.HandResult) Tier {
	switch result.Category {
	case poker.RoyalFlush, poker.StraightFlush, poker.FourOfAKind,
		poker.FullHouse, poker.Flush, poker.Straight:
		return Premium
	case poker.ThreeOfAKind, poker.TwoPair:
		return Strong
	case poker.OnePair:
		if result.Primary >= int(poker.Ten) {
			return Decent
		}
		return WeakPlayable
	default:
		return Trash
	}
}

func topRank(cards []poker.Card) poker.Rank {
	var top poker.Rank
	for _, c := range cards {
		if c.Rank > top {
			top = c.Rank
		}
	}
	return top
}

func demote(t Tier) Tier {
	if t > Trash {
		return t - 1
	}
	return t
}
