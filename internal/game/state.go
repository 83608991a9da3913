// Package game models the inbound game-state payload the platform posts
// with every decision request.
package game

import (
	"encoding/json"
	"fmt"

	"github.com/tiltproof/holdembrain/poker"
)

// Player statuses used by the platform.
const (
	StatusActive = "active"
	StatusFolded = "folded"
	StatusOut    = "out"
)

// Player is one seat in the game state. Hole cards are only present for
// our own seat (and for everyone at showdown).
type Player struct {
	ID        int          `json:"id"`
	Name      string       `json:"name"`
	Status    string       `json:"status"`
	Version   string       `json:"version"`
	Stack     int          `json:"stack"`
	Bet       int          `json:"bet"`
	HoleCards []poker.Card `json:"hole_cards,omitempty"`
}

// State is the platform's view of the table at decision time.
type State struct {
	TournamentID   string       `json:"tournament_id"`
	GameID         string       `json:"game_id"`
	Round          int          `json:"round"`
	BetIndex       int          `json:"bet_index"`
	SmallBlind     int          `json:"small_blind"`
	CurrentBuyIn   int          `json:"current_buy_in"`
	Pot            int          `json:"pot"`
	MinimumRaise   int          `json:"minimum_raise"`
	Dealer         int          `json:"dealer"`
	Orbits         int          `json:"orbits"`
	InAction       int          `json:"in_action"`
	Players        []Player    `json:"players"`
	CommunityCards []poker.Card `json:"community_cards"`
}

// Parse decodes a game-state payload.
func Parse(data []byte) (*State, error) {
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse game state: %w", err)
	}
	return &state, nil
}

// Me returns the player whose turn it is, i.e. us.
func (s *State) Me() (*Player, bool) {
	if s.InAction < 0 || s.InAction >= len(s.Players) {
		return nil, false
	}
	return &s.Players[s.InAction], true
}

// CallAmount returns the chips needed to call the current bet.
func (s *State) CallAmount() int {
	me, ok := s.Me()
	if !ok {
		return 0
	}
	amount := s.CurrentBuyIn - me.Bet
	if amount < 0 {
		return 0
	}
	return amount
}

// RaiseTo returns the chips needed for a minimum raise.
func (s *State) RaiseTo() int {
	return s.CallAmount() + s.MinimumRaise
}

// ActivePlayers counts players still contesting the pot.
func (s *State) ActivePlayers() int {
	count := 0
	for _, p := range s.Players {
		if p.Status == StatusActive {
			count++
		}
	}
	return count
}

// HeadsUp reports whether only one opponent remains active.
func (s *State) HeadsUp() bool {
	return s.ActivePlayers() == 2
}

// Street names the current betting round from the board size.
func (s *State) Street() string {
	switch len(s.CommunityCards) {
	case 0:
		return "preflop"
	case 3:
		return "flop"
	case 4:
		return "turn"
	case 5:
		return "river"
	default:
		return fmt.Sprintf("unknown(%d)", len(s.CommunityCards))
	}
}
