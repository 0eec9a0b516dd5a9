package preflop

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lox/holdem-equity/internal/cards"
	"github.com/stretchr/testify/require"
)

func writeTestTable(t *testing.T) string {
	t.Helper()
	reps := Representatives()
	entries := make([]tableEntry, len(reps))
	for i, r := range reps {
		entries[i] = tableEntry{
			Match: r.Hand,
			Solution: Solution{
				HandSolutions: []HandSolution{
					{Hand: [2]cards.Card{cards.New(cards.Two, cards.Spades), cards.New(cards.Three, cards.Clubs)}, BeatsMeCount: 1, IsBeatenCount: 2},
				},
				BoardPossibilities: 990,
				WinCount:           uint64(i),
				LoseCount:          uint64(len(reps) - i),
			},
		}
	}
	data, err := json.Marshal(entries)
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "preflop_solutions.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestFileSourceLookupResolvesCanonicalAndOffsuitHand(t *testing.T) {
	path := writeTestTable(t)
	src := NewFileSource(path, nil)

	canonical := canonicalHand(cards.Ace, cards.Ace, false)
	sol, ok, err := src.Lookup(canonical)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, sol.HandSolutions, 1)

	rotated := [2]cards.Card{cards.New(cards.Ace, cards.Spades), cards.New(cards.Ace, cards.Diamonds)}
	sol2, ok, err := src.Lookup(rotated)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, sol.WinCount, sol2.WinCount)
	require.Equal(t, sol.LoseCount, sol2.LoseCount)
}

func TestFileSourceLoadsTableAtMostOnce(t *testing.T) {
	path := writeTestTable(t)
	src := NewFileSource(path, nil)

	_, _, err := src.Lookup(canonicalHand(cards.King, cards.King, false))
	require.NoError(t, err)
	require.NotNil(t, src.idx.Load())

	require.NoError(t, os.Remove(path))
	_, ok, err := src.Lookup(canonicalHand(cards.Queen, cards.Queen, false))
	require.NoError(t, err)
	require.True(t, ok, "second lookup must use the already-loaded table, not re-read the removed file")
}

func TestFileSourceErrorsOnMissingFile(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "missing.json"), nil)
	_, _, err := src.Lookup(canonicalHand(cards.Two, cards.Two, false))
	require.Error(t, err)
}
