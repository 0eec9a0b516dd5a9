package api

import (
	"errors"
	"testing"

	"github.com/lox/holdem-equity/internal/cards"
	"github.com/lox/holdem-equity/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInternalRejectsBlankHandCard(t *testing.T) {
	table := Table{Hand: [2]MaybeCard{{Rank: "A", Suit: "h"}, nil}}
	_, err := table.ToInternal()
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrBlankHandCard))
}

func TestToInternalRejectsUnrecognizedRank(t *testing.T) {
	table := Table{Hand: [2]MaybeCard{{Rank: "X", Suit: "h"}, {Rank: "K", Suit: "h"}}}
	_, err := table.ToInternal()
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrUnrecognizedRank))
	assert.Contains(t, err.Error(), `unrecognized rank "X"`)
}

func TestToInternalRejectsUnrecognizedSuit(t *testing.T) {
	table := Table{Hand: [2]MaybeCard{{Rank: "A", Suit: "z"}, {Rank: "K", Suit: "h"}}}
	_, err := table.ToInternal()
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrUnrecognizedSuit))
	assert.Contains(t, err.Error(), `unrecognized suit "z"`)
}

func TestToInternalConvertsFixedBoard(t *testing.T) {
	table := Table{
		Hand: [2]MaybeCard{{Rank: "A", Suit: "c"}, {Rank: "K", Suit: "c"}},
		Board: [5]MaybeCard{
			{Rank: "Q", Suit: "c"}, {Rank: "J", Suit: "c"}, {Rank: "10", Suit: "c"}, nil, nil,
		},
	}

	internal, err := table.ToInternal()
	require.NoError(t, err)
	assert.Equal(t, cards.New(cards.Ace, cards.Clubs), internal.Hand[0])
	assert.Equal(t, cards.New(cards.King, cards.Clubs), internal.Hand[1])
	require.NotNil(t, internal.Board[0])
	assert.Equal(t, cards.New(cards.Queen, cards.Clubs), *internal.Board[0])
	assert.Nil(t, internal.Board[3])
	assert.Nil(t, internal.Board[4])
}

func TestFromInternalConvertsCountsAndCards(t *testing.T) {
	sol := engine.Solution{
		Hands: []engine.HandSolution{
			{Hand: [2]cards.Card{cards.New(cards.Two, cards.Hearts), cards.New(cards.Three, cards.Hearts)}, BeatsMeCount: 1, IsBeatenCount: 2},
		},
		BoardPossibilities: 990,
		WinCount:           1,
		LoseCount:          0,
	}

	wire := FromInternal(sol)
	require.Len(t, wire.Hands, 1)
	assert.Equal(t, "2", wire.Hands[0].Hand[0].Rank)
	assert.Equal(t, "h", wire.Hands[0].Hand[0].Suit)
	assert.Equal(t, uint64(990), wire.BoardPossibilities)
}
