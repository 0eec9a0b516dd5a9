package preflop

import (
	"encoding/json"
	"fmt"

	"github.com/lox/holdem-equity/internal/cards"
)

// Solution is one representative's precalculated result. Field names
// mirror spec.md §6's wire format exactly, including the fact that
// this outer type's "w"/"l" mean win_count/lose_count while the
// nested HandSolution's "w"/"l" mean the opposite: is_beaten_count and
// beats_me_count. That inversion is preserved deliberately; it is the
// format the original implementation produced.
type Solution struct {
	HandSolutions      []HandSolution `json:"h"`
	BoardPossibilities uint64         `json:"b"`
	WinCount           uint64         `json:"w"`
	LoseCount          uint64         `json:"l"`
}

// HandSolution is one candidate opponent hand's outcome breakdown
// against a fixed player hand.
type HandSolution struct {
	Hand          [2]cards.Card `json:"h"`
	BeatsMeCount  uint64        `json:"l"`
	IsBeatenCount uint64        `json:"w"`
}

// tableEntry is one row of the pre-flop table file: a representative
// hand paired with its solution.
type tableEntry struct {
	Match    [2]cards.Card `json:"m"`
	Solution Solution      `json:"s"`
}

// wireCard is the JSON encoding used for cards.Card within the
// pre-flop table file (spec.md §6): {"r":"A","s":"h"}.
type wireCard struct {
	Rank string `json:"r"`
	Suit string `json:"s"`
}

func cardToWire(c cards.Card) wireCard {
	return wireCard{Rank: c.Rank.String(), Suit: c.Suit.String()}
}

func (w wireCard) toCard() (cards.Card, error) {
	rank, ok := cards.ParseRank(w.Rank)
	if !ok {
		return cards.Card{}, fmt.Errorf("unrecognized rank %q", w.Rank)
	}
	suit, ok := cards.ParseSuit(w.Suit)
	if !ok {
		return cards.Card{}, fmt.Errorf("unrecognized suit %q", w.Suit)
	}
	return cards.New(rank, suit), nil
}

// MarshalJSON renders the table entry using the {"m": ..., "s": ...} shape.
func (e tableEntry) MarshalJSON() ([]byte, error) {
	match := [2]wireCard{cardToWire(e.Match[0]), cardToWire(e.Match[1])}
	return json.Marshal(struct {
		Match    [2]wireCard `json:"m"`
		Solution wireSolution `json:"s"`
	}{Match: match, Solution: e.Solution.toWire()})
}

// UnmarshalJSON parses the {"m": ..., "s": ...} shape back into a tableEntry.
func (e *tableEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Match    [2]wireCard  `json:"m"`
		Solution wireSolution `json:"s"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m0, err := raw.Match[0].toCard()
	if err != nil {
		return err
	}
	m1, err := raw.Match[1].toCard()
	if err != nil {
		return err
	}
	e.Match = [2]cards.Card{m0, m1}
	sol, err := raw.Solution.toSolution()
	if err != nil {
		return err
	}
	e.Solution = sol
	return nil
}

type wireHandSolution struct {
	Hand          [2]wireCard `json:"h"`
	BeatsMeCount  uint64      `json:"l"`
	IsBeatenCount uint64      `json:"w"`
}

type wireSolution struct {
	HandSolutions      []wireHandSolution `json:"h"`
	BoardPossibilities uint64             `json:"b"`
	WinCount           uint64             `json:"w"`
	LoseCount          uint64             `json:"l"`
}

func (s Solution) toWire() wireSolution {
	hs := make([]wireHandSolution, len(s.HandSolutions))
	for i, h := range s.HandSolutions {
		hs[i] = wireHandSolution{
			Hand:          [2]wireCard{cardToWire(h.Hand[0]), cardToWire(h.Hand[1])},
			BeatsMeCount:  h.BeatsMeCount,
			IsBeatenCount: h.IsBeatenCount,
		}
	}
	return wireSolution{
		HandSolutions:      hs,
		BoardPossibilities: s.BoardPossibilities,
		WinCount:           s.WinCount,
		LoseCount:          s.LoseCount,
	}
}

func (w wireSolution) toSolution() (Solution, error) {
	hs := make([]HandSolution, len(w.HandSolutions))
	for i, h := range w.HandSolutions {
		c0, err := h.Hand[0].toCard()
		if err != nil {
			return Solution{}, err
		}
		c1, err := h.Hand[1].toCard()
		if err != nil {
			return Solution{}, err
		}
		hs[i] = HandSolution{Hand: [2]cards.Card{c0, c1}, BeatsMeCount: h.BeatsMeCount, IsBeatenCount: h.IsBeatenCount}
	}
	return Solution{
		HandSolutions:      hs,
		BoardPossibilities: w.BoardPossibilities,
		WinCount:           w.WinCount,
		LoseCount:          w.LoseCount,
	}, nil
}
