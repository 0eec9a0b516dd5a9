package enumerate

import (
	"testing"

	"github.com/lox/holdem-equity/internal/cards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpponentHandsCountAndSortKey(t *testing.T) {
	deck := cards.FullDeck()[:6]
	hands := OpponentHands(deck)
	require.Equal(t, 15, len(hands)) // C(6,2)

	for _, h := range hands {
		assert.True(t, handLess(h[0], h[1]), "hand must be stored (rank desc, suit asc)")
	}
}

func TestBoardPossibilitiesMatchesKnownScenarios(t *testing.T) {
	// spec.md §8 scenario: reduced deck flop, board_possibilities=6.
	assert.Equal(t, uint64(6), BoardPossibilities(4, 2))
	// Turn-only completion (one card from a 46-card deck).
	assert.Equal(t, uint64(46), BoardPossibilities(46, 1))
	assert.Equal(t, uint64(1), BoardPossibilities(5, 0))
	assert.Equal(t, uint64(0), BoardPossibilities(1, 2))
}

func TestBoardCompletionsEnumeratesAllKSubsetsLexicographically(t *testing.T) {
	remaining := cards.FullDeck()[:5]
	fixed := []cards.Card{}
	playerHand := [2]cards.Card{cards.New(cards.Two, cards.Hearts), cards.New(cards.Three, cards.Hearts)}
	opponentHand := [2]cards.Card{cards.New(cards.Four, cards.Hearts), cards.New(cards.Five, cards.Hearts)}

	bc := NewBoardCompletions(fixed, playerHand, opponentHand, remaining, 2)

	var seen [][2]int
	for bc.Next() {
		player, opponent := bc.Cards()
		require.Equal(t, 4, len(player))
		require.Equal(t, 4, len(opponent))
		seen = append(seen, [2]int{
			indexOf(remaining, player[2]),
			indexOf(remaining, player[3]),
		})
		assert.Equal(t, player[2], opponent[2])
		assert.Equal(t, player[3], opponent[3])
	}

	want := int(BoardPossibilities(len(remaining), 2))
	assert.Equal(t, want, len(seen))

	seenSet := make(map[[2]int]bool)
	for _, pair := range seen {
		assert.True(t, pair[0] < pair[1], "index vector must stay strictly increasing")
		seenSet[pair] = true
	}
	assert.Equal(t, len(seen), len(seenSet), "every board completion must be distinct")
}

func TestBoardCompletionsZeroSlotsYieldsExactlyOneCompletion(t *testing.T) {
	remaining := []cards.Card{}
	fixed := []cards.Card{
		cards.New(cards.Two, cards.Hearts), cards.New(cards.Three, cards.Hearts), cards.New(cards.Four, cards.Hearts),
		cards.New(cards.Five, cards.Hearts), cards.New(cards.Six, cards.Hearts),
	}
	playerHand := [2]cards.Card{cards.New(cards.Seven, cards.Clubs), cards.New(cards.Eight, cards.Clubs)}
	opponentHand := [2]cards.Card{cards.New(cards.Nine, cards.Clubs), cards.New(cards.Ten, cards.Clubs)}

	bc := NewBoardCompletions(fixed, playerHand, opponentHand, remaining, 0)
	count := 0
	for bc.Next() {
		count++
		player, _ := bc.Cards()
		assert.Equal(t, 7, len(player))
	}
	assert.Equal(t, 1, count)
}

func indexOf(deck []cards.Card, c cards.Card) int {
	for i, d := range deck {
		if d == c {
			return i
		}
	}
	return -1
}
