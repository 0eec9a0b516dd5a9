package main

import (
	"testing"

	"github.com/lox/holdem-equity/internal/cards"
)

func TestParseCardPair(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		hasError bool
	}{
		{name: "no spaces", input: "AcKh"},
		{name: "with a space", input: "Ac Kh"},
		{name: "ten rank", input: "10cKh"},
		{name: "too few cards", input: "Ac", hasError: true},
		{name: "too many cards", input: "AcKhQd", hasError: true},
		{name: "unrecognized rank", input: "XcKh", hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand, err := parseCardPair(tt.input)
			if tt.hasError {
				if err == nil {
					t.Errorf("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if hand[0] == hand[1] {
				t.Errorf("expected two distinct cards, got %v twice", hand[0])
			}
		})
	}
}

func TestParseBoardRejectsTooManyCards(t *testing.T) {
	_, err := parseBoard("Ac Kc Qc Jc 10c 9c")
	if err == nil {
		t.Errorf("expected error for a 6-card board")
	}
}

func TestParseBoardAllowsPartialBoard(t *testing.T) {
	board, err := parseBoard("Ac Kc Qc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if board[0] == nil || board[1] == nil || board[2] == nil {
		t.Fatalf("expected first three slots filled")
	}
	if board[3] != nil || board[4] != nil {
		t.Fatalf("expected trailing slots empty")
	}
}

func TestFormatCards(t *testing.T) {
	cs := []cards.Card{cards.New(cards.Ace, cards.Spades), cards.New(cards.King, cards.Hearts)}
	got := formatCards(cs)
	want := "As Kh"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
