// Package ranker unifies oracle-backed and local hand evaluation behind a
// single result shape. The oracle is strictly an accelerant: local
// evaluation is total, and a forced oracle outage never changes the
// category a caller observes.
package ranker

import (
	"context"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/tiltproof/holdembrain/internal/oracle"
	"github.com/tiltproof/holdembrain/poker"
)

// Source tags where a result came from. It is provenance for logging and
// tests only and never affects the result's content.
type Source int

const (
	SourceLocal Source = iota
	SourceOracle
)

func (s Source) String() string {
	switch s {
	case SourceLocal:
		return "local"
	case SourceOracle:
		return "oracle"
	default:
		return "unknown"
	}
}

// OracleClient is the subset of the oracle client the ranker needs.
type OracleClient interface {
	Rank(ctx context.Context, cards []poker.Card) (*oracle.Result, error)
}

// Ranker evaluates hands oracle-first with a deterministic local fallback.
type Ranker struct {
	oracle OracleClient
	logger *log.Logger
}

// New creates a Ranker. A nil client disables the oracle entirely and
// every evaluation runs locally.
func New(client OracleClient, logger *log.Logger) *Ranker {
	return &Ranker{
		oracle: client,
		logger: logger.WithPrefix("ranker"),
	}
}

// Evaluate returns the best hand for the hole and community cards plus the
// provenance of the answer. The oracle is consulted once, only when five
// or more cards are known; any failure falls back to local evaluation of
// the identical input.
func (r *Ranker) Evaluate(ctx context.Context, hole, community []poker.Card) (poker.HandResult, Source) {
	cards := make([]poker.Card, 0, len(hole)+len(community))
	cards = append(cards, hole...)
	cards = append(cards, community...)

	if len(cards) >= 5 && r.oracle != nil {
		if result, err := r.oracle.Rank(ctx, cards); err == nil {
			return r.translate(result), SourceOracle
		} else {
			r.logger.Debug("Falling back to local evaluation", "error", err)
		}
	}

	return poker.Evaluate(cards), SourceLocal
}

// translate converts an oracle payload into the local result shape,
// reconstructing kicker order from the returned card list when the service
// omits it.
func (r *Ranker) translate(res *oracle.Result) poker.HandResult {
	kickers := make([]int, len(res.Kickers))
	copy(kickers, res.Kickers)
	sort.Sort(sort.Reverse(sort.IntSlice(kickers)))

	if len(kickers) == 0 && len(res.CardsUsed) > 0 {
		kickers = kickersFromCards(res)
	}

	result := poker.HandResult{
		Category:  res.Category,
		Primary:   res.Value,
		Secondary: res.SecondValue,
		Kickers:   kickers,
		CardsUsed: res.CardsUsed,
	}
	result.Description = result.Category.String()
	return result
}

// kickersFromCards derives descending kickers from the used cards, minus
// the ranks already accounted for by the primary and secondary values.
func kickersFromCards(res *oracle.Result) []int {
	var kickers []int
	for _, card := range res.CardsUsed {
		rank := int(card.Rank)
		if rank == res.Value || rank == res.SecondValue {
			continue
		}
		kickers = append(kickers, rank)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(kickers)))
	return kickers
}
