// Package engine implements the solve driver: input validation,
// dispatch between the pre-flop fast path and full enumeration, result
// aggregation, and ordering (spec.md §4.7).
package engine

import (
	"github.com/lox/holdem-equity/internal/cards"
)

// BoardSlots is the fixed number of community-card slots on a table.
const BoardSlots = 5

// Table is a solve request: two concrete hole cards and up to five
// board cards, each slot either filled or empty.
type Table struct {
	Hand  [2]cards.Card
	Board [BoardSlots]*cards.Card
}

// FixedBoardCards returns the board's non-empty cards, in slot order.
func (t Table) FixedBoardCards() []cards.Card {
	cs := make([]cards.Card, 0, BoardSlots)
	for _, c := range t.Board {
		if c != nil {
			cs = append(cs, *c)
		}
	}
	return cs
}

// EmptySlots reports how many board slots are unfilled.
func (t Table) EmptySlots() int {
	n := 0
	for _, c := range t.Board {
		if c == nil {
			n++
		}
	}
	return n
}

// HandSolution is one candidate opponent hand's outcome breakdown
// against the player's hand over every board completion.
type HandSolution struct {
	Hand          [2]cards.Card
	BeatsMeCount  uint64
	IsBeatenCount uint64
}

// Solution is the full result of a solve: every candidate opponent
// hand's breakdown, sorted, plus the aggregate counts (spec.md §3).
type Solution struct {
	Hands              []HandSolution
	BoardPossibilities uint64
	WinCount           uint64
	LoseCount          uint64
}
