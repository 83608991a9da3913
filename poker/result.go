package poker

// HandCategory enumerates the categories of poker hands ordered from weakest
// to strongest.
type HandCategory int

const (
	HighCard HandCategory = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns a human-readable category name.
func (hc HandCategory) String() string {
	switch hc {
	case HighCard:
		return "High Card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// HandResult describes the best hand found for a set of cards.
//
// Primary is the defining rank of the category: the quad rank, the trip
// rank, the pair rank, or the high card of a straight or flush. The wheel
// straight carries Primary 5, never 14. Secondary is only set for hands
// with a second defining rank (the full house pair, the low pair of two
// pair). Kickers hold the remaining tie-break ranks in descending order.
type HandResult struct {
	Category    HandCategory
	Primary     int
	Secondary   int
	Kickers     []int
	Description string
	CardsUsed   []Card
}

// Compare returns 1 if r is the stronger hand, -1 if other is stronger
// and 0 for an exact tie. The order is (category, primary, secondary,
// kickers) lexicographic.
func (r HandResult) Compare(other HandResult) int {
	if r.Category != other.Category {
		if r.Category > other.Category {
			return 1
		}
		return -1
	}
	if r.Primary != other.Primary {
		if r.Primary > other.Primary {
			return 1
		}
		return -1
	}
	if r.Secondary != other.Secondary {
		if r.Secondary > other.Secondary {
			return 1
		}
		return -1
	}
	for i := 0; i < len(r.Kickers) && i < len(other.Kickers); i++ {
		if r.Kickers[i] != other.Kickers[i] {
			if r.Kickers[i] > other.Kickers[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Beats returns true if r strictly beats other.
func (r HandResult) Beats(other HandResult) bool {
	return r.Compare(other) > 0
}
