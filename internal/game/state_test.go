package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiltproof/holdembrain/poker"
)

const samplePayload = `{
	"tournament_id": "550d1d68cd7bd10003000003",
	"game_id": "550da1cb2d909006e90004b1",
	"round": 0,
	"bet_index": 0,
	"small_blind": 10,
	"current_buy_in": 320,
	"pot": 400,
	"minimum_raise": 240,
	"dealer": 1,
	"orbits": 7,
	"in_action": 1,
	"players": [
		{
			"id": 0,
			"name": "Albert",
			"status": "active",
			"version": "Default random player",
			"stack": 1010,
			"bet": 320
		},
		{
			"id": 1,
			"name": "Bob",
			"status": "active",
			"version": "v1",
			"stack": 1590,
			"bet": 80,
			"hole_cards": [
				{"rank": "6", "suit": "hearts"},
				{"rank": "K", "suit": "spades"}
			]
		},
		{
			"id": 2,
			"name": "Chuck",
			"status": "out",
			"version": "Default random player",
			"stack": 0,
			"bet": 0
		}
	],
	"community_cards": [
		{"rank": "4", "suit": "spades"},
		{"rank": "A", "suit": "hearts"},
		{"rank": "6", "suit": "clubs"}
	]
}`

func TestParseState(t *testing.T) {
	state, err := Parse([]byte(samplePayload))
	require.NoError(t, err)

	assert.Equal(t, 400, state.Pot)
	assert.Equal(t, 320, state.CurrentBuyIn)
	assert.Len(t, state.Players, 3)

	me, ok := state.Me()
	require.True(t, ok)
	assert.Equal(t, "Bob", me.Name)
	assert.Equal(t, []poker.Card{
		{Rank: poker.Six, Suit: poker.Hearts},
		{Rank: poker.King, Suit: poker.Spades},
	}, me.HoleCards)

	assert.Equal(t, 240, state.CallAmount())
	assert.Equal(t, 480, state.RaiseTo())
	assert.Equal(t, "flop", state.Street())
	assert.Equal(t, 2, state.ActivePlayers())
	assert.True(t, state.HeadsUp())
}

func TestParseStateInvalid(t *testing.T) {
	_, err := Parse([]byte(`{"players": "nope"`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"community_cards": [{"rank":"1","suit":"hearts"}]}`))
	assert.Error(t, err)
	assert.ErrorIs(t, err, poker.ErrInvalidCard)
}

func TestCallAmountNeverNegative(t *testing.T) {
	state := &State{
		CurrentBuyIn: 50,
		InAction:     0,
		Players:      []Player{{Bet: 80, Status: StatusActive}},
	}
	assert.Zero(t, state.CallAmount())
}

func TestMeOutOfRange(t *testing.T) {
	state := &State{InAction: 5, Players: []Player{{Name: "only"}}}
	_, ok := state.Me()
	assert.False(t, ok)
}
