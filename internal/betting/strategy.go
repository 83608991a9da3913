// Package betting turns strength tiers into bet amounts.
//
// By contract it never inspects raw cards: the evaluated hand result and
// the strength tier are the only strength signals crossing this boundary.
package betting

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/tiltproof/holdembrain/internal/game"
	"github.com/tiltproof/holdembrain/internal/strength"
	"github.com/tiltproof/holdembrain/poker"
)

// Action is what we do with the betting round.
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
)

func (a Action) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Raise:
		return "raise"
	default:
		return "unknown"
	}
}

// Decision is a concrete bet. Amount is the total chips to put in, so Fold
// and Check carry 0 and Call carries the call amount.
type Decision struct {
	Action    Action
	Amount    int
	Reasoning string
}

// Config holds the betting knobs.
type Config struct {
	// BluffFrequency is how often a trash hand fires a minimum-raise bluff
	// when checking is not free.
	BluffFrequency float64

	// MaxCallFraction caps a speculative call at this fraction of the pot.
	MaxCallFraction float64
}

// DefaultConfig returns the settled betting knobs.
func DefaultConfig() Config {
	return Config{
		BluffFrequency:  0.05,
		MaxCallFraction: 0.25,
	}
}

// Strategy decides bets from tiers. The random source is injected so tests
// can fix bluffing outcomes.
type Strategy struct {
	cfg    Config
	rng    *rand.Rand
	logger *log.Logger
}

// New creates a Strategy with the given knobs and random source.
func New(cfg Config, rng *rand.Rand, logger *log.Logger) *Strategy {
	return &Strategy{
		cfg:    cfg,
		rng:    rng,
		logger: logger.WithPrefix("betting"),
	}
}

// Decide maps the tier onto a bet for the current state. The hand result
// only feeds logging and reasoning strings; strength decisions key off the
// tier alone.
func (s *Strategy) Decide(state *game.State, result poker.HandResult, tier strength.Tier) Decision {
	call := state.CallAmount()
	raise := state.RaiseTo()

	var decision Decision
	switch tier {
	case strength.Premium:
		// Pot-sized raise, capped by a min-raise floor.
		amount := max(raise, call+state.Pot)
		decision = Decision{Action: Raise, Amount: amount, Reasoning: "premium: " + result.Description}

	case strength.Strong:
		decision = Decision{Action: Raise, Amount: raise, Reasoning: "strong: " + result.Description}

	case strength.Decent:
		decision = Decision{Action: Call, Amount: call, Reasoning: "decent: " + result.Description}

	case strength.WeakPlayable:
		if call == 0 {
			decision = Decision{Action: Check, Reasoning: "weak-playable, free card"}
		} else if float64(call) <= s.cfg.MaxCallFraction*float64(state.Pot) {
			decision = Decision{Action: Call, Amount: call, Reasoning: "weak-playable, cheap call"}
		} else {
			decision = Decision{Action: Fold, Reasoning: "weak-playable, too expensive"}
		}

	default: // Marginal, Trash
		if call == 0 {
			decision = Decision{Action: Check, Reasoning: tier.String() + ", free card"}
		} else if s.rng.Float64() < s.cfg.BluffFrequency {
			decision = Decision{Action: Raise, Amount: raise, Reasoning: tier.String() + ", bluff"}
		} else {
			decision = Decision{Action: Fold, Reasoning: tier.String()}
		}
	}

	if me, ok := state.Me(); ok && decision.Amount > me.Stack {
		decision.Amount = me.Stack // all in
	}

	s.logger.Debug("Decision",
		"street", state.Street(),
		"tier", tier,
		"action", decision.Action,
		"amount", decision.Amount,
		"reasoning", decision.Reasoning)
	return decision
}
