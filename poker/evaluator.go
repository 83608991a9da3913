package poker

import (
	"fmt"
	"sort"
)

// Evaluate returns the best possible hand for 2-7 cards.
//
// With five or more cards every 5-card subset is scored and the maximum
// under HandResult ordering is returned. With exactly two cards (preflop)
// the result is a starting-hand descriptor rather than a 5-card category.
// With three or four cards only rank groupings are considered, so a caller
// holding a short board still gets a usable result. Zero or one card is
// malformed input and yields a sentinel high-card result instead of an
// error, so a bad upstream payload can never crash a decision cycle.
//
// Evaluate is pure and order-independent: permuting the input yields an
// identical result.
func Evaluate(cards []Card) HandResult {
	switch {
	case len(cards) < 2:
		return HandResult{
			Category:    HighCard,
			Description: "Invalid hole cards",
		}
	case len(cards) == 2:
		return evaluateStartingHand(cards[0], cards[1])
	}

	sorted := sortCards(cards)
	if len(sorted) < 5 {
		return evaluateGroups(sorted)
	}
	return bestFiveOf(sorted)
}

// sortCards returns a copy sorted by rank descending, suit ascending.
// Suit order carries no hand-strength meaning; it only makes subset
// enumeration deterministic regardless of input order.
func sortCards(cards []Card) []Card {
	sorted := make([]Card, len(cards))
	copy(sorted, cards)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Rank != sorted[j].Rank {
			return sorted[i].Rank > sorted[j].Rank
		}
		return sorted[i].Suit < sorted[j].Suit
	})
	return sorted
}

// bestFiveOf enumerates every 5-card subset (at most C(7,5) = 21) and
// keeps the maximum under HandResult ordering.
func bestFiveOf(sorted []Card) HandResult {
	n := len(sorted)
	var best HandResult
	found := false
	for a := 0; a <= n-5; a++ {
		for b := a + 1; b <= n-4; b++ {
			for c := b + 1; c <= n-3; c++ {
				for d := c + 1; d <= n-2; d++ {
					for e := d + 1; e <= n-1; e++ {
						five := []Card{sorted[a], sorted[b], sorted[c], sorted[d], sorted[e]}
						res := scoreFive(five)
						if !found || res.Beats(best) {
							best = res
							found = true
						}
					}
				}
			}
		}
	}
	return best
}

// scoreFive scores exactly five cards sorted by rank descending.
func scoreFive(five []Card) HandResult {
	flush := true
	for _, c := range five[1:] {
		if c.Suit != five[0].Suit {
			flush = false
			break
		}
	}

	high := straightHigh(five)
	if flush && high > 0 {
		category := StraightFlush
		if high == int(Ace) {
			category = RoyalFlush
		}
		return describe(HandResult{
			Category:  category,
			Primary:   high,
			CardsUsed: five,
		})
	}

	groups := rankGroups(five)

	switch {
	case groups[0].count == 4:
		return describe(HandResult{
			Category:  FourOfAKind,
			Primary:   groups[0].rank,
			Kickers:   groupKickers(groups, 1),
			CardsUsed: five,
		})
	case groups[0].count == 3 && groups[1].count == 2:
		return describe(HandResult{
			Category:  FullHouse,
			Primary:   groups[0].rank,
			Secondary: groups[1].rank,
			CardsUsed: five,
		})
	case flush:
		return describe(HandResult{
			Category:  Flush,
			Primary:   int(five[0].Rank),
			Kickers:   ranksOf(five[1:]),
			CardsUsed: five,
		})
	case high > 0:
		return describe(HandResult{
			Category:  Straight,
			Primary:   high,
			CardsUsed: five,
		})
	case groups[0].count == 3:
		return describe(HandResult{
			Category:  ThreeOfAKind,
			Primary:   groups[0].rank,
			Kickers:   groupKickers(groups, 1),
			CardsUsed: five,
		})
	case groups[0].count == 2 && groups[1].count == 2:
		return describe(HandResult{
			Category:  TwoPair,
			Primary:   groups[0].rank,
			Secondary: groups[1].rank,
			Kickers:   groupKickers(groups, 2),
			CardsUsed: five,
		})
	case groups[0].count == 2:
		return describe(HandResult{
			Category:  OnePair,
			Primary:   groups[0].rank,
			Kickers:   groupKickers(groups, 1),
			CardsUsed: five,
		})
	default:
		return describe(HandResult{
			Category:  HighCard,
			Primary:   int(five[0].Rank),
			Kickers:   ranksOf(five[1:]),
			CardsUsed: five,
		})
	}
}

// straightHigh returns the high-card rank of a straight formed by five
// rank-descending cards, or 0 when they do not form one. The wheel
// (A-2-3-4-5) is valued as a 5-high straight, never ace-high.
func straightHigh(five []Card) int {
	for i := 1; i < len(five); i++ {
		if five[i].Rank == five[i-1].Rank {
			return 0
		}
	}
	if five[0].Rank-five[4].Rank == 4 {
		return int(five[0].Rank)
	}
	// Wheel: ace plus 5-4-3-2.
	if five[0].Rank == Ace && five[1].Rank == Five && five[1].Rank-five[4].Rank == 3 {
		return int(Five)
	}
	return 0
}

type rankGroup struct {
	rank  int
	count int
}

// rankGroups builds the rank-count histogram sorted by count descending
// then rank descending, the order tie-breaks are resolved in.
func rankGroups(cards []Card) []rankGroup {
	counts := make(map[int]int)
	for _, c := range cards {
		counts[int(c.Rank)]++
	}
	groups := make([]rankGroup, 0, len(counts))
	for rank, count := range counts {
		groups = append(groups, rankGroup{rank: rank, count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})
	return groups
}

// groupKickers flattens the groups at index from onwards into a descending
// kicker list.
func groupKickers(groups []rankGroup, from int) []int {
	var kickers []int
	for _, g := range groups[from:] {
		for i := 0; i < g.count; i++ {
			kickers = append(kickers, g.rank)
		}
	}
	return kickers
}

func ranksOf(cards []Card) []int {
	ranks := make([]int, len(cards))
	for i, c := range cards {
		ranks[i] = int(c.Rank)
	}
	return ranks
}

// evaluateGroups scores 3 or 4 cards on rank groupings alone. Straights
// and flushes need five cards, so they cannot occur here.
func evaluateGroups(sorted []Card) HandResult {
	groups := rankGroups(sorted)

	switch {
	case groups[0].count == 4:
		return describe(HandResult{
			Category:  FourOfAKind,
			Primary:   groups[0].rank,
			CardsUsed: sorted,
		})
	case groups[0].count == 3:
		return describe(HandResult{
			Category:  ThreeOfAKind,
			Primary:   groups[0].rank,
			Kickers:   groupKickers(groups, 1),
			CardsUsed: sorted,
		})
	case groups[0].count == 2 && len(groups) > 1 && groups[1].count == 2:
		return describe(HandResult{
			Category:  TwoPair,
			Primary:   groups[0].rank,
			Secondary: groups[1].rank,
			CardsUsed: sorted,
		})
	case groups[0].count == 2:
		return describe(HandResult{
			Category:  OnePair,
			Primary:   groups[0].rank,
			Kickers:   groupKickers(groups, 1),
			CardsUsed: sorted,
		})
	default:
		return describe(HandResult{
			Category:  HighCard,
			Primary:   int(sorted[0].Rank),
			Kickers:   ranksOf(sorted[1:]),
			CardsUsed: sorted,
		})
	}
}

// evaluateStartingHand describes two hole cards before any board exists.
// The category is always HighCard; the label carries the preflop shape.
func evaluateStartingHand(c1, c2 Card) HandResult {
	hi, lo := c1, c2
	if lo.Rank > hi.Rank {
		hi, lo = lo, hi
	}

	var desc string
	switch {
	case hi.Rank == lo.Rank:
		desc = fmt.Sprintf("Pocket %ss", hi.Rank.Wire())
	case hi.Suit == lo.Suit:
		desc = fmt.Sprintf("Suited %s%s", hi.Rank.Wire(), lo.Rank.Wire())
	default:
		desc = fmt.Sprintf("Offsuit %s%s", hi.Rank.Wire(), lo.Rank.Wire())
	}

	return HandResult{
		Category:    HighCard,
		Primary:     int(hi.Rank),
		Kickers:     []int{int(hi.Rank), int(lo.Rank)},
		Description: desc,
		CardsUsed:   []Card{hi, lo},
	}
}

// describe fills in the human-readable summary for a scored hand.
func describe(r HandResult) HandResult {
	primary := Rank(r.Primary).Wire()
	switch r.Category {
	case RoyalFlush:
		r.Description = "Royal Flush"
	case StraightFlush:
		r.Description = fmt.Sprintf("Straight Flush, %s high", primary)
	case FourOfAKind:
		r.Description = fmt.Sprintf("Four of a Kind, %ss", primary)
	case FullHouse:
		r.Description = fmt.Sprintf("Full House, %ss over %ss", primary, Rank(r.Secondary).Wire())
	case Flush:
		r.Description = fmt.Sprintf("Flush, %s high", primary)
	case Straight:
		r.Description = fmt.Sprintf("Straight, %s high", primary)
	case ThreeOfAKind:
		r.Description = fmt.Sprintf("Three of a Kind, %ss", primary)
	case TwoPair:
		r.Description = fmt.Sprintf("Two Pair, %ss and %ss", primary, Rank(r.Secondary).Wire())
	case OnePair:
		r.Description = fmt.Sprintf("Pair of %ss", primary)
	default:
		r.Description = fmt.Sprintf("High Card %s", primary)
	}
	return r
}
