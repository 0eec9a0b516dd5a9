package engine

import (
	"errors"
	"testing"

	"github.com/lox/holdem-equity/internal/cards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func c(r cards.Rank, s cards.Suit) cards.Card { return cards.New(r, s) }

func ptr(card cards.Card) *cards.Card { return &card }

func TestValidateDuplicateCardAcrossHandAndBoard(t *testing.T) {
	table := Table{
		Hand: [2]cards.Card{c(cards.Ace, cards.Spades), c(cards.King, cards.Spades)},
		Board: [BoardSlots]*cards.Card{
			ptr(c(cards.Ace, cards.Spades)), nil, nil, nil, nil,
		},
	}
	_, err := validate(table)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateCard))
}

func TestValidateRemainingDeckExcludesUsedCards(t *testing.T) {
	table := Table{
		Hand: [2]cards.Card{c(cards.Ace, cards.Spades), c(cards.King, cards.Spades)},
		Board: [BoardSlots]*cards.Card{
			ptr(c(cards.Queen, cards.Spades)), ptr(c(cards.Jack, cards.Spades)), ptr(c(cards.Ten, cards.Spades)), nil, nil,
		},
	}
	remaining, err := validate(table)
	require.NoError(t, err)
	assert.Equal(t, 47, len(remaining))
	for _, used := range []cards.Card{table.Hand[0], table.Hand[1]} {
		assert.NotContains(t, remaining, used)
	}
}
