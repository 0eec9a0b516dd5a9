package preflop

import (
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTableFileRoundTripsThroughFileSource(t *testing.T) {
	reps := Representatives()
	solutions := make([]Solution, len(reps))
	for i := range reps {
		solutions[i] = Solution{BoardPossibilities: 990, WinCount: uint64(i), LoseCount: uint64(len(reps) - i)}
	}

	path := filepath.Join(t.TempDir(), "preflop_solutions.json")
	require.NoError(t, WriteTableFile(path, solutions))

	src := NewFileSource(path, log.Default())
	sol, ok, err := src.Lookup(reps[5].Hand)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, solutions[5].WinCount, sol.WinCount)
}

func TestWriteTableFileRejectsMismatchedLength(t *testing.T) {
	err := WriteTableFile(filepath.Join(t.TempDir(), "bad.json"), []Solution{{}})
	assert.Error(t, err)
}
