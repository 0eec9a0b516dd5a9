package evaluator

import (
	"sort"

	"github.com/lox/holdem-equity/internal/cards"
	"github.com/lox/holdem-equity/internal/combo"
)

// classify implements spec.md §4.2's ten-step classification over a
// descending-sorted reduced card list.
func classify(sorted []reducedCard) combo.Combination {
	flushEnd := 0
	for flushEnd < len(sorted) && sorted[flushEnd].isFlush {
		flushEnd++
	}
	flushCards := sorted[:flushEnd]

	if len(flushCards) >= 5 {
		if high, ok := straightHigh(flushCards); ok {
			return combo.NewStraightFlush(high)
		}
	}

	counts, ranksDescByCount := countRanks(sorted)

	if counts[ranksDescByCount[0]] == 4 {
		quad := ranksDescByCount[0]
		kicker := nextRank(ranksDescByCount, 1)
		return combo.NewFourOfAKind(quad, kicker)
	}

	if counts[ranksDescByCount[0]] == 3 && counts[ranksDescByCount[1]] >= 2 {
		return combo.NewFullHouse(ranksDescByCount[0], ranksDescByCount[1])
	}

	if len(flushCards) >= 5 {
		var ranks [5]cards.Rank
		for i := 0; i < 5; i++ {
			ranks[i] = flushCards[i].rank
		}
		return combo.NewFlush(ranks)
	}

	if high, ok := straightHigh(byRankDesc(sorted)); ok {
		return combo.NewStraight(high)
	}

	if counts[ranksDescByCount[0]] == 3 {
		return combo.NewThreeOfAKind(ranksDescByCount[0], [2]cards.Rank{ranksDescByCount[1], ranksDescByCount[2]})
	}

	if counts[ranksDescByCount[0]] == 2 && counts[ranksDescByCount[1]] == 2 {
		// The kicker is the highest remaining rank, which may be a single
		// card ranked above a third pair.
		kicker := ranksDescByCount[2]
		for _, r := range ranksDescByCount[3:] {
			if r > kicker {
				kicker = r
			}
		}
		return combo.NewTwoPairs(ranksDescByCount[0], ranksDescByCount[1], kicker)
	}

	if counts[ranksDescByCount[0]] == 2 {
		return combo.NewPair(ranksDescByCount[0], [3]cards.Rank{ranksDescByCount[1], ranksDescByCount[2], ranksDescByCount[3]})
	}

	return combo.NewHighCard([5]cards.Rank{
		ranksDescByCount[0], ranksDescByCount[1], ranksDescByCount[2], ranksDescByCount[3], ranksDescByCount[4],
	})
}

// countRanks counts occurrences of each rank present in sorted and
// returns those counts alongside the ranks present, ordered descending
// by (count, rank) as spec.md §4.2 step 2 describes. Ranks not present
// are omitted.
func countRanks(sorted []reducedCard) (counts [cards.RankCount]int, ordered []cards.Rank) {
	present := make(map[cards.Rank]bool)
	for _, rc := range sorted {
		counts[rc.rank]++
		present[rc.rank] = true
	}
	for r := range present {
		ordered = append(ordered, r)
	}
	sort.Slice(ordered, func(i, j int) bool {
		ci, cj := counts[ordered[i]], counts[ordered[j]]
		if ci != cj {
			return ci > cj
		}
		return ordered[i] > ordered[j]
	})
	return counts, ordered
}

// nextRank returns the rank at position idx in ordered, matching
// spec.md §4.2's "next N ranks ... starting at the first position
// whose count is below the consumed quantity" rule: since ordered is
// already sorted by (count desc, rank desc), the rank immediately
// following the consumed ones is exactly ordered[idx].
func nextRank(ordered []cards.Rank, idx int) cards.Rank {
	if idx < len(ordered) {
		return ordered[idx]
	}
	return 0
}

// byRankDesc returns a copy of sorted ordered purely by descending
// rank, ignoring flush membership, so the ordinary straight check does
// not depend on reduce's flush-first grouping. classify only reaches
// that check when no suit has five cards, in which case every card is
// non-flush and sorted is already in descending rank order.
func byRankDesc(sorted []reducedCard) []reducedCard {
	out := make([]reducedCard, len(sorted))
	copy(out, sorted)
	sort.SliceStable(out, func(i, j int) bool { return out[i].rank > out[j].rank })
	return out
}

// straightHigh implements spec.md §4.2's straight rule: scanning a
// descending rank list from the back (ascending), track a run over
// strictly consecutive non-equal ranks, skipping duplicates without
// resetting the run, and keep the highest rank at which the run first
// reached length 5 (later, higher overwrites win). No wheel straight.
func straightHigh(descending []reducedCard) (cards.Rank, bool) {
	if len(descending) < 5 {
		return 0, false
	}
	lastRank := descending[len(descending)-1].rank
	runLen := 1
	var high cards.Rank
	found := false
	for i := len(descending) - 2; i >= 0; i-- {
		rank := descending[i].rank
		if rank == lastRank {
			continue
		}
		if uint8(lastRank)+1 == uint8(rank) {
			runLen++
			if runLen >= 5 {
				high = rank
				found = true
			}
		} else {
			runLen = 1
		}
		lastRank = rank
	}
	return high, found
}
