package engine

import (
	"errors"
	"fmt"

	"github.com/lox/holdem-equity/internal/cards"
)

// Sentinel error kinds (spec.md §7). Callers should use errors.Is to
// check for a specific kind; the returned error's message carries the
// offending value.
var (
	ErrUnrecognizedRank = errors.New("unrecognized rank")
	ErrUnrecognizedSuit = errors.New("unrecognized suit")
	ErrBlankHandCard    = errors.New("hand cards must all be set, got blank")
	ErrDuplicateCard    = errors.New("card is used multiple times")
	ErrUnknownCard      = errors.New("used cards not from deck")
	ErrCancelled        = errors.New("solve operation cancelled")
	ErrPreflopLoad      = errors.New("pre-flop table load failed")
	ErrPreflopNoMatch   = errors.New("precalculated solution not found")
)

func errUnrecognizedRank(token string) error {
	return fmt.Errorf("%w %q", ErrUnrecognizedRank, token)
}

func errUnrecognizedSuit(token string) error {
	return fmt.Errorf("%w %q", ErrUnrecognizedSuit, token)
}

func errDuplicateCard(c cards.Card) error {
	return fmt.Errorf("card %q is used multiple times: %w", c, ErrDuplicateCard)
}

func errUnknownCard(cs []cards.Card) error {
	return fmt.Errorf("used cards %v not from deck: %w", cs, ErrUnknownCard)
}

func errPreflopNoMatch(hand [2]cards.Card) error {
	return fmt.Errorf("precalculated solution for hand %s%s not found: %w", hand[0], hand[1], ErrPreflopNoMatch)
}

func errPreflopLoad(err error) error {
	return fmt.Errorf("%w: %v", ErrPreflopLoad, err)
}

// NewUnrecognizedRankError reports an unrecognized rank token at a
// wire boundary (spec.md §5), e.g. from internal/api.
func NewUnrecognizedRankError(token string) error {
	return errUnrecognizedRank(token)
}

// NewUnrecognizedSuitError reports an unrecognized suit token at a
// wire boundary (spec.md §5), e.g. from internal/api.
func NewUnrecognizedSuitError(token string) error {
	return errUnrecognizedSuit(token)
}

// NewBlankHandCardError reports a hand slot left unset at a wire
// boundary that requires both hand cards to be present.
func NewBlankHandCardError() error {
	return ErrBlankHandCard
}
