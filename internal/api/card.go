// Package api defines the flat wire types used at the live solve
// boundary (spec.md §5), distinct from the compact pre-flop table
// file format in internal/preflop. It converts between those wire
// types and internal/engine.Table / internal/engine.Solution,
// ported from the original Rust/WASM bridge in
// original_source/rust-wasm/src/wasm_types.rs.
package api

import (
	"github.com/lox/holdem-equity/internal/cards"
	"github.com/lox/holdem-equity/internal/engine"
)

// Card is the flat wire representation of a card: {"rank": "A", "suit": "h"}.
type Card struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

func cardToWire(c cards.Card) Card {
	return Card{Rank: c.Rank.String(), Suit: c.Suit.String()}
}

func cardFromWire(c Card) (cards.Card, error) {
	rank, ok := cards.ParseRank(c.Rank)
	if !ok {
		return cards.Card{}, engine.NewUnrecognizedRankError(c.Rank)
	}
	suit, ok := cards.ParseSuit(c.Suit)
	if !ok {
		return cards.Card{}, engine.NewUnrecognizedSuitError(c.Suit)
	}
	return cards.New(rank, suit), nil
}
