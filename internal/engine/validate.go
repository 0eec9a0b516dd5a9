package engine

import "github.com/lox/holdem-equity/internal/cards"

// validate computes the remaining deck for table, or fails with
// DuplicateCard if any used card repeats, or UnknownCard if a used
// card is not one of the standard 52 (spec.md §4.7 step 1).
func validate(table Table) (remaining []cards.Card, err error) {
	used := append([]cards.Card{table.Hand[0], table.Hand[1]}, table.FixedBoardCards()...)

	seen := make(map[cards.Card]bool, len(used))
	for _, c := range used {
		if seen[c] {
			return nil, errDuplicateCard(c)
		}
		seen[c] = true
	}

	full := cards.FullDeck()
	inDeck := make(map[cards.Card]bool, len(full))
	for _, c := range full {
		inDeck[c] = true
	}

	var unknown []cards.Card
	for _, c := range used {
		if !inDeck[c] {
			unknown = append(unknown, c)
		}
	}
	if len(unknown) > 0 {
		return nil, errUnknownCard(unknown)
	}

	remaining = make([]cards.Card, 0, len(full)-len(used))
	for _, c := range full {
		if !seen[c] {
			remaining = append(remaining, c)
		}
	}
	return remaining, nil
}
