package preflop

import (
	"github.com/lox/holdem-equity/internal/cards"
	"github.com/opencoff/go-chd"
)

// index provides O(1) lookup from a representative hand to its slot
// in a parallel Solution slice. It prefers a minimal perfect hash over
// the 169 representatives (spec.md §4.6); if construction of the hash
// fails for any reason, it falls back to a linear scan and logs a
// warning, rather than failing the lookup outright.
type index struct {
	table       []Solution
	reps        []Representative
	perfectHash *chd.CHD
}

func buildIndex(table []Solution, warn func(msg string, keyvals ...any)) *index {
	reps := Representatives()
	keys := make([][]byte, len(reps))
	for i, r := range reps {
		keys[i] = repKey(r.Hand)
	}

	idx := &index{table: table, reps: reps}

	builder, err := chd.NewBuilder()
	if err != nil {
		warn("pre-flop perfect hash builder unavailable, falling back to linear scan", "error", err)
		return idx
	}
	for _, k := range keys {
		builder.Add(k)
	}
	h, err := builder.Build()
	if err != nil {
		warn("pre-flop perfect hash construction failed, falling back to linear scan", "error", err)
		return idx
	}
	idx.perfectHash = h
	return idx
}

func repKey(hand [2]cards.Card) []byte {
	return []byte{
		byte(hand[0].Rank)<<2 | byte(hand[0].Suit),
		byte(hand[1].Rank)<<2 | byte(hand[1].Suit),
	}
}

// lookup returns the Solution for the representative matching
// canonical, or false if no such representative exists (which would
// indicate a bug in canonicalHand, since every dealt hand must map to
// one of the 169 representatives).
func (idx *index) lookup(canonical [2]cards.Card) (Solution, bool) {
	key := repKey(canonical)
	if idx.perfectHash != nil {
		slot := idx.perfectHash.Find(key)
		if int(slot) < len(idx.reps) && idx.reps[slot].Hand == canonical {
			return idx.table[slot], true
		}
		// Fall through to a linear scan: a perfect hash built over the
		// known 169 keys never misdirects a member key, but guards
		// against a corrupted table regardless.
	}
	for i, r := range idx.reps {
		if r.Hand == canonical {
			return idx.table[i], true
		}
	}
	return Solution{}, false
}
