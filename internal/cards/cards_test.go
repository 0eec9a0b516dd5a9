package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankStringRoundTrips(t *testing.T) {
	for r := Rank(0); r < RankCount; r++ {
		got, ok := ParseRank(r.String())
		assert.True(t, ok)
		assert.Equal(t, r, got)
	}
}

func TestSuitStringRoundTrips(t *testing.T) {
	for s := Suit(0); s < SuitCount; s++ {
		got, ok := ParseSuit(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}
}

func TestParseRankRejectsUnknownToken(t *testing.T) {
	_, ok := ParseRank("X")
	assert.False(t, ok)
}

func TestParseSuitRejectsUnknownToken(t *testing.T) {
	_, ok := ParseSuit("z")
	assert.False(t, ok)
}

func TestFullDeckHas52DistinctCards(t *testing.T) {
	deck := FullDeck()
	assert.Equal(t, 52, len(deck))
	seen := make(map[Card]bool, 52)
	for _, c := range deck {
		seen[c] = true
	}
	assert.Equal(t, 52, len(seen))
}

func TestCardStringFormat(t *testing.T) {
	assert.Equal(t, "Ah", New(Ace, Hearts).String())
	assert.Equal(t, "10c", New(Ten, Clubs).String())
}
