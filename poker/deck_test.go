package poker

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeckDealsDistinctCards(t *testing.T) {
	deck := NewDeck(rand.New(rand.NewSource(1)))

	seen := make(map[Card]bool)
	for deck.CardsRemaining() > 0 {
		card, ok := deck.DealOne()
		require.True(t, ok)
		assert.False(t, seen[card], "duplicate card %s", card)
		seen[card] = true
	}
	assert.Len(t, seen, 52)

	_, ok := deck.DealOne()
	assert.False(t, ok)
}

func TestDeckDeterministicWithSeed(t *testing.T) {
	a := NewDeck(rand.New(rand.NewSource(99)))
	b := NewDeck(rand.New(rand.NewSource(99)))
	assert.Equal(t, a.Deal(10), b.Deal(10))
}
