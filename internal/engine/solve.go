package engine

import (
	"sort"

	"github.com/coder/quartz"
	"github.com/lox/holdem-equity/internal/cancel"
	"github.com/lox/holdem-equity/internal/cards"
	"github.com/lox/holdem-equity/internal/enumerate"
	"github.com/lox/holdem-equity/internal/evaluator"
	"github.com/lox/holdem-equity/internal/preflop"
	"github.com/lox/holdem-equity/internal/yieldtimer"
)

// Progress reports how many candidate opponent hands have been fully
// evaluated out of the total, for a host to render as
// "i/N hands evaluated".
type Progress struct {
	Evaluated uint64
	Total     uint64
}

// Solve validates table and computes its Solution, taking the
// pre-flop fast path when the board is entirely empty and otherwise
// running the full enumeration (spec.md §4.7). sig is checked at
// every suspension point the yield timer introduces; clock drives
// that timer and should be quartz.NewReal() outside of tests. pf may
// be nil when the board has any card revealed, since the fast path is
// never taken in that case. onProgress may be nil.
func Solve(sig *cancel.Signal, table Table, clock quartz.Clock, pf preflop.Source, onProgress func(Progress)) (Solution, error) {
	remaining, err := validate(table)
	if err != nil {
		return Solution{}, err
	}

	if table.EmptySlots() == BoardSlots {
		return solvePreflop(table, pf)
	}
	return solveEnumeration(sig, table, remaining, clock, onProgress)
}

// SolveExhaustive runs full board-completion enumeration unconditionally,
// even when the board is empty. gen-preflop uses this to build the
// pre-flop table itself, since Solve's fast path would otherwise just
// read back the table it is trying to generate.
func SolveExhaustive(sig *cancel.Signal, table Table, clock quartz.Clock, onProgress func(Progress)) (Solution, error) {
	remaining, err := validate(table)
	if err != nil {
		return Solution{}, err
	}
	return solveEnumeration(sig, table, remaining, clock, onProgress)
}

func solvePreflop(table Table, pf preflop.Source) (Solution, error) {
	sol, ok, err := pf.Lookup(table.Hand)
	if err != nil {
		return Solution{}, errPreflopLoad(err)
	}
	if !ok {
		return Solution{}, errPreflopNoMatch(table.Hand)
	}

	hands := make([]HandSolution, len(sol.HandSolutions))
	for i, h := range sol.HandSolutions {
		hands[i] = HandSolution{Hand: h.Hand, BeatsMeCount: h.BeatsMeCount, IsBeatenCount: h.IsBeatenCount}
	}
	sortHands(hands)

	return Solution{
		Hands:              hands,
		BoardPossibilities: sol.BoardPossibilities,
		WinCount:           sol.WinCount,
		LoseCount:          sol.LoseCount,
	}, nil
}

func solveEnumeration(sig *cancel.Signal, table Table, remaining []cards.Card, clock quartz.Clock, onProgress func(Progress)) (Solution, error) {
	opponentHands := enumerate.OpponentHands(remaining)
	total := uint64(len(opponentHands))
	k := table.EmptySlots()
	fixed := table.FixedBoardCards()
	boardPossibilities := enumerate.BoardPossibilities(len(remaining)-2, k)

	var evaluated uint64
	ev := evaluator.New()
	timer := yieldtimer.New(clock, func(uint64) {
		if onProgress != nil {
			onProgress(Progress{Evaluated: evaluated, Total: total})
		}
	})

	hands := make([]HandSolution, 0, len(opponentHands))
	for _, oh := range opponentHands {
		if timer.Tick() && sig.Aborted() {
			return Solution{}, ErrCancelled
		}

		hs := evaluateOpponentHand(table.Hand, oh, fixed, remaining, k, ev, timer, sig)
		if hs == nil {
			return Solution{}, ErrCancelled
		}
		hands = append(hands, *hs)
		evaluated++
	}

	sortHands(hands)
	win, lose := countWinLose(hands)

	return Solution{
		Hands:              hands,
		BoardPossibilities: boardPossibilities,
		WinCount:           win,
		LoseCount:          lose,
	}, nil
}

// evaluateOpponentHand runs the board-completion enumerator for one
// candidate opponent hand, returning its win/lose tallies against the
// player's hand, or nil if cancellation fired during the inner loop.
func evaluateOpponentHand(
	playerHand [2]cards.Card,
	opponentHand [2]cards.Card,
	fixed []cards.Card,
	remaining []cards.Card,
	k int,
	ev *evaluator.Evaluator,
	timer *yieldtimer.Timer,
	sig *cancel.Signal,
) *HandSolution {
	left := make([]cards.Card, 0, len(remaining)-2)
	for _, c := range remaining {
		if c != opponentHand[0] && c != opponentHand[1] {
			left = append(left, c)
		}
	}

	bc := enumerate.NewBoardCompletions(fixed, playerHand, opponentHand, left, k)

	var beatsMe, isBeaten uint64
	for bc.Next() {
		if timer.Tick() && sig.Aborted() {
			return nil
		}

		playerCards, opponentCards := bc.Cards()
		playerScore := ev.Score(playerCards)
		opponentScore := ev.Score(opponentCards)
		switch {
		case playerScore < opponentScore:
			beatsMe++
		case playerScore > opponentScore:
			isBeaten++
		}
	}

	return &HandSolution{Hand: opponentHand, BeatsMeCount: beatsMe, IsBeatenCount: isBeaten}
}

// sortHands orders ascending by (beats_me_count - is_beaten_count,
// is_beaten_count, hand) per spec.md §4.7 step 4.
func sortHands(hands []HandSolution) {
	sort.Slice(hands, func(i, j int) bool {
		di := int64(hands[i].BeatsMeCount) - int64(hands[i].IsBeatenCount)
		dj := int64(hands[j].BeatsMeCount) - int64(hands[j].IsBeatenCount)
		if di != dj {
			return di < dj
		}
		if hands[i].IsBeatenCount != hands[j].IsBeatenCount {
			return hands[i].IsBeatenCount < hands[j].IsBeatenCount
		}
		return handLess(hands[i].Hand, hands[j].Hand)
	})
}

func handLess(a, b [2]cards.Card) bool {
	if a[0] != b[0] {
		return cardLess(a[0], b[0])
	}
	return cardLess(a[1], b[1])
}

func cardLess(a, b cards.Card) bool {
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	return a.Suit < b.Suit
}

// countWinLose reports win_count/lose_count per spec.md §3:
// win_count counts hands with negative (beats_me - is_beaten), i.e.
// the opponent loses more often than they win; lose_count counts the
// positive side.
func countWinLose(hands []HandSolution) (win, lose uint64) {
	for _, h := range hands {
		d := int64(h.BeatsMeCount) - int64(h.IsBeatenCount)
		switch {
		case d < 0:
			win++
		case d > 0:
			lose++
		}
	}
	return win, lose
}
