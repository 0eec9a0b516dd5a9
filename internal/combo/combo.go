// Package combo implements the nine-variant poker combination algebra
// and its total order, as an integer score (spec.md §4.1).
package combo

import "github.com/lox/holdem-equity/internal/cards"

// Kind is one of the nine poker combination classes, weakest to strongest.
type Kind uint8

const (
	HighCard Kind = iota
	Pair
	TwoPairs
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// Combination is a tagged poker combination: a Kind plus the ranks that
// break ties within that kind, in the comparison order described for
// each variant in spec.md §4.1. Unused rank slots are left at their
// zero value and do not participate in Score.
type Combination struct {
	Kind  Kind
	Ranks [5]cards.Rank
}

// weightMultiplier is B, the rank count; weights is [B^5, B^4, B^3, B^2, B^1].
const weightMultiplier = uint64(cards.RankCount)

var weights = [5]uint64{
	pow(weightMultiplier, 5),
	pow(weightMultiplier, 4),
	pow(weightMultiplier, 3),
	pow(weightMultiplier, 2),
	pow(weightMultiplier, 1),
}

// classWeight is T = B^6, guaranteeing class always dominates kickers:
// the maximum kicker contribution is 12*(B^5+B^4+B^3+B^2+B) = B^6-B < B^6.
const classWeightPow = 6

var classWeight = pow(weightMultiplier, classWeightPow)

func pow(base uint64, exp int) uint64 {
	result := uint64(1)
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}

// rankCount returns how many of c.Ranks participate in the score for c's kind.
func (k Kind) rankCount() int {
	switch k {
	case HighCard, Flush:
		return 5
	case Pair:
		return 4
	case TwoPairs, ThreeOfAKind:
		return 3
	case FullHouse, FourOfAKind:
		return 2
	case Straight, StraightFlush:
		return 1
	default:
		return 0
	}
}

// Score computes the integer total-order score from spec.md §4.1:
// score = c*T + sum(W[i] * ordinal(r_i)).
func (c Combination) Score() uint64 {
	score := uint64(c.Kind) * classWeight
	n := c.Kind.rankCount()
	for i := 0; i < n; i++ {
		score += weights[i] * uint64(c.Ranks[i])
	}
	return score
}

// Less reports whether c is a strictly weaker combination than other.
func (c Combination) Less(other Combination) bool {
	return c.Score() < other.Score()
}

// Compare returns -1, 0 or 1 as c is weaker than, equal to, or stronger
// than other, by score.
func (c Combination) Compare(other Combination) int {
	cs, os := c.Score(), other.Score()
	switch {
	case cs < os:
		return -1
	case cs > os:
		return 1
	default:
		return 0
	}
}

// NewHighCard builds a HighCard combination from 5 ranks, descending.
func NewHighCard(ranks [5]cards.Rank) Combination { return Combination{Kind: HighCard, Ranks: ranks} }

// NewPair builds a Pair combination: (pair rank, top 3 kickers descending).
func NewPair(pairRank cards.Rank, kickers [3]cards.Rank) Combination {
	return Combination{Kind: Pair, Ranks: [5]cards.Rank{pairRank, kickers[0], kickers[1], kickers[2]}}
}

// NewTwoPairs builds a TwoPairs combination: (higher pair, lower pair, kicker).
func NewTwoPairs(highPair, lowPair, kicker cards.Rank) Combination {
	return Combination{Kind: TwoPairs, Ranks: [5]cards.Rank{highPair, lowPair, kicker}}
}

// NewThreeOfAKind builds a ThreeOfAKind combination: (trip rank, 2 kickers descending).
func NewThreeOfAKind(tripRank cards.Rank, kickers [2]cards.Rank) Combination {
	return Combination{Kind: ThreeOfAKind, Ranks: [5]cards.Rank{tripRank, kickers[0], kickers[1]}}
}

// NewStraight builds a Straight combination from its highest rank.
func NewStraight(high cards.Rank) Combination {
	return Combination{Kind: Straight, Ranks: [5]cards.Rank{high}}
}

// NewFlush builds a Flush combination from 5 ranks, descending.
func NewFlush(ranks [5]cards.Rank) Combination { return Combination{Kind: Flush, Ranks: ranks} }

// NewFullHouse builds a FullHouse combination: (trip rank, pair rank).
func NewFullHouse(tripRank, pairRank cards.Rank) Combination {
	return Combination{Kind: FullHouse, Ranks: [5]cards.Rank{tripRank, pairRank}}
}

// NewFourOfAKind builds a FourOfAKind combination: (quad rank, kicker).
func NewFourOfAKind(quadRank, kicker cards.Rank) Combination {
	return Combination{Kind: FourOfAKind, Ranks: [5]cards.Rank{quadRank, kicker}}
}

// NewStraightFlush builds a StraightFlush combination from its highest rank.
func NewStraightFlush(high cards.Rank) Combination {
	return Combination{Kind: StraightFlush, Ranks: [5]cards.Rank{high}}
}

// String names the combination class, for display and test failure messages.
func (k Kind) String() string {
	switch k {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPairs:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}
