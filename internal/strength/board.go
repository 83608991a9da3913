package strength

import (
	"github.com/tiltproof/holdembrain/poker"
)

// boardPaired reports whether the community cards contain a pair, which
// puts trips and full houses in opponents' ranges.
func boardPaired(board []poker.Card) bool {
	seen := make(map[poker.Rank]bool, len(board))
	for _, c := range board {
		if seen[c.Rank] {
			return true
		}
		seen[c.Rank] = true
	}
	return false
}

// flushPossible reports whether three or more community cards share a
// suit, meaning a made flush is live.
func flushPossible(board []poker.Card) bool {
	var counts [4]int
	for _, c := range board {
		counts[c.Suit]++
		if counts[c.Suit] >= 3 {
			return true
		}
	}
	return false
}

// overcards reports whether both hole cards outrank the entire board.
func overcards(hole, board []poker.Card) bool {
	if len(hole) != 2 || len(board) == 0 {
		return false
	}
	top := board[0].Rank
	for _, c := range board[1:] {
		if c.Rank > top {
			top = c.Rank
		}
	}
	return hole[0].Rank > top && hole[1].Rank > top
}

// flushDraw reports whether the hole cards are suited and two or more
// community cards share that suit.
func flushDraw(hole, board []poker.Card) bool {
	if len(hole) != 2 || hole[0].Suit != hole[1].Suit {
		return false
	}
	count := 0
	for _, c := range board {
		if c.Suit == hole[0].Suit {
			count++
		}
	}
	return count >= 2
}

// straightDraw reports whether some five-rank window holds four distinct
// ranks from the combined cards, at least one of them from the hole. The
// ace is counted both high and low.
func straightDraw(hole, board []poker.Card) bool {
	present := make(map[int]bool)
	fromHole := make(map[int]bool)

	mark := func(cards []poker.Card, hole bool) {
		for _, c := range cards {
			ranks := []int{int(c.Rank)}
			if c.Rank == poker.Ace {
				ranks = append(ranks, 1)
			}
			for _, r := range ranks {
				present[r] = true
				if hole {
					fromHole[r] = true
				}
			}
		}
	}
	mark(hole, true)
	mark(board, false)

	for low := 1; low <= 10; low++ {
		count, holeCount := 0, 0
		for r := low; r < low+5; r++ {
			if present[r] {
				count++
			}
			if fromHole[r] {
				holeCount++
			}
		}
		if count >= 4 && holeCount >= 1 {
			return true
		}
	}
	return false
}

// liveDraw reports whether unimproved hole cards still have meaningful
// equity against the board.
func liveDraw(hole, board []poker.Card) bool {
	return flushDraw(hole, board) || straightDraw(hole, board)
}
