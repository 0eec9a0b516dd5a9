// Package evaluator scores 5-to-7 card sets against the nine-variant
// combination algebra in internal/combo, with a per-solve memoization
// cache keyed on the suit-reduced card representation (spec.md §4.2).
package evaluator

import "github.com/lox/holdem-equity/internal/cards"

// Evaluator holds a memoization cache for one solve. It must not be
// shared across concurrent solves: the cache is exclusively owned by
// the invocation that created it (spec.md §5 "Shared resources").
type Evaluator struct {
	cache map[string]uint64
}

// New constructs an Evaluator with an empty cache.
func New() *Evaluator {
	return &Evaluator{cache: make(map[string]uint64)}
}

// Score returns the score of the best five-card combination in cs,
// which must contain between 5 and 7 cards. The evaluator is a pure
// function of its input and never errors (spec.md §4.2 "Error conditions").
func (e *Evaluator) Score(cs []cards.Card) uint64 {
	reduced := reduce(cs)
	k := key(reduced)
	if score, ok := e.cache[k]; ok {
		return score
	}
	score := classify(reduced).Score()
	e.cache[k] = score
	return score
}

// Len reports how many distinct reduced-card keys have been scored so
// far, mostly useful for tests and diagnostics.
func (e *Evaluator) Len() int {
	return len(e.cache)
}
