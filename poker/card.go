package poker

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a rank or suit cannot be parsed.
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit. Suits have no intrinsic ordering.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the symbol representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Name returns the wire name of a suit ("spades", "hearts", ...)
func (s Suit) Name() string {
	switch s {
	case Spades:
		return "spades"
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	default:
		return "unknown"
	}
}

// ParseSuit parses a wire suit name into a Suit.
func ParseSuit(name string) (Suit, error) {
	switch strings.ToLower(name) {
	case "spades":
		return Spades, nil
	case "hearts":
		return Hearts, nil
	case "diamonds":
		return Diamonds, nil
	case "clubs":
		return Clubs, nil
	}
	return 0, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, name)
}

// Rank represents a card rank with aces high (14)
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the compact representation of a rank (T for ten)
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Nine:
		return fmt.Sprintf("%d", int(r))
	case r == Ten:
		return "T"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Wire returns the rank as it appears in game-state payloads ("10" for ten)
func (r Rank) Wire() string {
	if r == Ten {
		return "10"
	}
	return r.String()
}

// ParseRank parses a wire rank ("2".."10", "J", "Q", "K", "A") into a Rank.
// The compact "T" form is accepted as well.
func ParseRank(name string) (Rank, error) {
	switch strings.ToUpper(name) {
	case "2", "3", "4", "5", "6", "7", "8", "9":
		return Rank(name[0] - '0'), nil
	case "10", "T":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	}
	return 0, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, name)
}

// Card represents a playing card. Cards compare by value; there is no
// ordering between suits.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// ParseCard parses wire rank and suit names into a Card.
func ParseCard(rank, suit string) (Card, error) {
	r, err := ParseRank(rank)
	if err != nil {
		return Card{}, err
	}
	s, err := ParseSuit(suit)
	if err != nil {
		return Card{}, err
	}
	return Card{Rank: r, Suit: s}, nil
}

// String returns the display representation of a card (e.g. "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Compact returns the two-character representation of a card (e.g. "As")
func (c Card) Compact() string {
	var s string
	switch c.Suit {
	case Spades:
		s = "s"
	case Hearts:
		s = "h"
	case Diamonds:
		s = "d"
	case Clubs:
		s = "c"
	}
	return c.Rank.String() + s
}

// Broadway returns true for T, J, Q, K and A
func (c Card) Broadway() bool {
	return c.Rank >= Ten
}

type wireCard struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

// MarshalJSON encodes the card in the game-state wire format,
// e.g. {"rank":"10","suit":"hearts"}.
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireCard{Rank: c.Rank.Wire(), Suit: c.Suit.Name()})
}

// UnmarshalJSON decodes a card from the game-state wire format.
func (c *Card) UnmarshalJSON(data []byte) error {
	var w wireCard
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCard, err)
	}
	card, err := ParseCard(w.Rank, w.Suit)
	if err != nil {
		return err
	}
	*c = card
	return nil
}

// ParseCards parses a compact card string like "AsKhQd" or "As Kh, Qd"
// into cards. Rank "10" and "T" are both accepted. Case-insensitive.
func ParseCards(s string) ([]Card, error) {
	cleaned := strings.NewReplacer(" ", "", ",", "").Replace(s)
	var cards []Card
	i := 0
	for i < len(cleaned) {
		rankLen := 1
		if cleaned[i] == '1' {
			rankLen = 2 // "10"
		}
		if i+rankLen >= len(cleaned) {
			return nil, fmt.Errorf("%w: truncated card in %q", ErrInvalidCard, s)
		}
		rankStr := cleaned[i : i+rankLen]
		suitStr := cleaned[i+rankLen]

		rank, err := ParseRank(rankStr)
		if err != nil {
			return nil, err
		}
		var suit Suit
		switch suitStr {
		case 's', 'S':
			suit = Spades
		case 'h', 'H':
			suit = Hearts
		case 'd', 'D':
			suit = Diamonds
		case 'c', 'C':
			suit = Clubs
		default:
			return nil, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, string(suitStr))
		}
		cards = append(cards, Card{Rank: rank, Suit: suit})
		i += rankLen + 1
	}
	return cards, nil
}

// MustCards parses a compact card string and panics on failure. Test helper.
func MustCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}
