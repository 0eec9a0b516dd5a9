package evaluator

import (
	"sort"

	"github.com/lox/holdem-equity/internal/cards"
)

// reducedCard is the evaluator's canonical cache key unit: a card
// stripped down to whether it belongs to the single flush suit (if
// any) and its rank. Collapsing all non-flush suits this way is what
// lets two card sets that differ only by a non-flush suit permutation
// share one cache entry (spec.md §4.2, §8).
type reducedCard struct {
	isFlush bool
	rank    cards.Rank
}

// reduce finds the flush suit (the suit with >=5 cards among the input,
// or none) and returns the reduced cards sorted descending by
// (isFlush, rank) so flush-suited cards sort first, then by rank.
func reduce(cs []cards.Card) []reducedCard {
	var suitCounts [cards.SuitCount]int
	for _, c := range cs {
		suitCounts[c.Suit]++
	}
	flushSuit := cards.Suit(255)
	for s := cards.Suit(0); s < cards.SuitCount; s++ {
		if suitCounts[s] >= 5 {
			flushSuit = s
			break
		}
	}

	reduced := make([]reducedCard, len(cs))
	for i, c := range cs {
		reduced[i] = reducedCard{isFlush: c.Suit == flushSuit, rank: c.Rank}
	}
	sort.Slice(reduced, func(i, j int) bool {
		if reduced[i].isFlush != reduced[j].isFlush {
			return reduced[i].isFlush // true (flush) sorts first
		}
		return reduced[i].rank > reduced[j].rank
	})
	return reduced
}

// key renders a fixed-width byte sequence for reduced so that equal
// reduced-card multisets always hash identically as a map key,
// regardless of how they were constructed (spec.md §9 "Cache key
// canonicalization").
func key(reduced []reducedCard) string {
	buf := make([]byte, len(reduced))
	for i, rc := range reduced {
		b := byte(rc.rank) << 1
		if rc.isFlush {
			b |= 1
		}
		buf[i] = b
	}
	return string(buf)
}
