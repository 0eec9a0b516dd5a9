// Package enumerate implements the combinatorial enumeration at the
// heart of the engine: candidate opponent hole-card pairs, and the
// ordered k-combinations of remaining board cards used to complete
// each one (spec.md §4.3).
package enumerate

import "github.com/lox/holdem-equity/internal/cards"

// OpponentHands returns every unordered pair of cards drawn from
// remaining, each stored sorted by (rank descending, suit ascending)
// so sort keys are deterministic (spec.md §4.3).
func OpponentHands(remaining []cards.Card) [][2]cards.Card {
	n := len(remaining)
	hands := make([][2]cards.Card, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			hands = append(hands, sortPair(remaining[i], remaining[j]))
		}
	}
	return hands
}

func sortPair(a, b cards.Card) [2]cards.Card {
	if handLess(a, b) {
		return [2]cards.Card{a, b}
	}
	return [2]cards.Card{b, a}
}

// handLess orders by (rank descending, suit ascending), the candidate
// hand sort key spec.md §4.3 requires.
func handLess(a, b cards.Card) bool {
	if a.Rank != b.Rank {
		return a.Rank > b.Rank
	}
	return a.Suit < b.Suit
}

// BoardPossibilities computes C(n, m) via the product form spec.md
// §4.3 prescribes: ((n-m+1)...n) / (1...m).
func BoardPossibilities(n, m int) uint64 {
	if m == 0 {
		return 1
	}
	if m > n {
		return 0
	}
	num := uint64(1)
	for v := n - m + 1; v <= n; v++ {
		num *= uint64(v)
	}
	den := uint64(1)
	for v := 1; v <= m; v++ {
		den *= uint64(v)
	}
	return num / den
}

// BoardCompletions enumerates, in lexicographic order, every ordered
// k-subset of remaining used to fill a board's empty slots, patching
// two "final cards" buffers (one for the player, one for the
// candidate opponent hand) in place at only the trailing k positions
// on each advance — the hot-path optimization spec.md §4.3 calls for.
type BoardCompletions struct {
	remaining []cards.Card
	k         int
	fillIdx   []int

	playerFinal   []cards.Card
	opponentFinal []cards.Card
	tailStart     int

	started bool
}

// NewBoardCompletions prepares an enumerator for one candidate
// opponent hand. fixed is the set of already-revealed board cards (in
// any stable order); remaining is the deck minus the player hand, the
// fixed board cards, and this candidate opponent hand. k is the
// number of empty board slots to fill.
func NewBoardCompletions(fixed []cards.Card, playerHand, opponentHand [2]cards.Card, remaining []cards.Card, k int) *BoardCompletions {
	fillIdx := make([]int, k)
	for i := range fillIdx {
		fillIdx[i] = i
	}

	base := len(fixed) + 2
	playerFinal := make([]cards.Card, 0, base+k)
	playerFinal = append(playerFinal, fixed...)
	playerFinal = append(playerFinal, playerHand[0], playerHand[1])

	opponentFinal := make([]cards.Card, 0, base+k)
	opponentFinal = append(opponentFinal, fixed...)
	opponentFinal = append(opponentFinal, opponentHand[0], opponentHand[1])

	for _, idx := range fillIdx {
		playerFinal = append(playerFinal, remaining[idx])
		opponentFinal = append(opponentFinal, remaining[idx])
	}

	return &BoardCompletions{
		remaining:     remaining,
		k:             k,
		fillIdx:       fillIdx,
		playerFinal:   playerFinal,
		opponentFinal: opponentFinal,
		tailStart:     base,
	}
}

// Cards returns the current completion's full card sets for the
// player and the candidate opponent hand. The returned slices are
// reused on every Next() call and must not be retained.
func (b *BoardCompletions) Cards() (player, opponent []cards.Card) {
	return b.playerFinal, b.opponentFinal
}

// Next advances to the next board completion in lexicographic order.
// It returns true and leaves Cards() valid for the new completion, or
// false once every completion (including the very first, when k=0)
// has been produced.
func (b *BoardCompletions) Next() bool {
	if !b.started {
		b.started = true
		return true
	}
	if b.k == 0 {
		return false
	}

	n := len(b.remaining)
	j := b.k - 1
	for b.fillIdx[j]+(b.k-j) >= n {
		if j == 0 {
			return false
		}
		j--
	}

	b.fillIdx[j]++
	b.playerFinal[b.tailStart+j] = b.remaining[b.fillIdx[j]]
	b.opponentFinal[b.tailStart+j] = b.remaining[b.fillIdx[j]]

	for jp := j + 1; jp < b.k; jp++ {
		b.fillIdx[jp] = b.fillIdx[jp-1] + 1
		b.playerFinal[b.tailStart+jp] = b.remaining[b.fillIdx[jp]]
		b.opponentFinal[b.tailStart+jp] = b.remaining[b.fillIdx[jp]]
	}
	return true
}
