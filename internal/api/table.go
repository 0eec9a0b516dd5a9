package api

import (
	"github.com/lox/holdem-equity/internal/cards"
	"github.com/lox/holdem-equity/internal/engine"
)

// MaybeCard is an optional wire card: nil means the slot is blank.
type MaybeCard = *Card

// Table is the flat wire request at the live solve boundary
// (spec.md §5): a 2-card hand and a 5-slot board, any of whose
// slots may be blank.
type Table struct {
	Hand  [2]MaybeCard `json:"hand"`
	Board [5]MaybeCard `json:"board"`
}

// ToInternal converts Table to engine.Table, failing with
// ErrBlankHandCard if either hand slot is unset or with
// ErrUnrecognizedRank/ErrUnrecognizedSuit if a card token doesn't
// parse (spec.md §5, ported from wasm_types.rs's from_wasm_table).
func (t Table) ToInternal() (engine.Table, error) {
	var hand [2]cards.Card
	for i, mc := range t.Hand {
		if mc == nil {
			return engine.Table{}, engine.NewBlankHandCardError()
		}
		c, err := cardFromWire(*mc)
		if err != nil {
			return engine.Table{}, err
		}
		hand[i] = c
	}

	var board [engine.BoardSlots]*cards.Card
	for i, mc := range t.Board {
		if mc == nil {
			continue
		}
		c, err := cardFromWire(*mc)
		if err != nil {
			return engine.Table{}, err
		}
		board[i] = &c
	}

	return engine.Table{Hand: hand, Board: board}, nil
}

// HandSolution is the flat wire representation of engine.HandSolution.
type HandSolution struct {
	Hand          [2]Card `json:"hand"`
	BeatsMeCount  uint64  `json:"beatsMeCount"`
	IsBeatenCount uint64  `json:"isBeatenCount"`
}

// Solution is the flat wire representation of engine.Solution
// (spec.md §5), distinct from the compact internal/preflop table
// file format.
type Solution struct {
	Hands              []HandSolution `json:"hands"`
	BoardPossibilities uint64         `json:"boardPossibilities"`
	WinCount           uint64         `json:"winCount"`
	LoseCount          uint64         `json:"loseCount"`
}

// FromInternal converts an engine.Solution to its wire representation.
func FromInternal(sol engine.Solution) Solution {
	hands := make([]HandSolution, len(sol.Hands))
	for i, h := range sol.Hands {
		hands[i] = HandSolution{
			Hand:          [2]Card{cardToWire(h.Hand[0]), cardToWire(h.Hand[1])},
			BeatsMeCount:  h.BeatsMeCount,
			IsBeatenCount: h.IsBeatenCount,
		}
	}
	return Solution{
		Hands:              hands,
		BoardPossibilities: sol.BoardPossibilities,
		WinCount:           sol.WinCount,
		LoseCount:          sol.LoseCount,
	}
}
