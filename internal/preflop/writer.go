package preflop

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteTableFile serializes one Solution per representative hand to
// path in spec.md §6's wire format. solutions must be indexed the
// same way as Representatives() (one entry per representative, same
// order), which is how gen-preflop builds them.
func WriteTableFile(path string, solutions []Solution) error {
	reps := Representatives()
	if len(solutions) != len(reps) {
		return fmt.Errorf("WriteTableFile: got %d solutions, want %d representatives", len(solutions), len(reps))
	}

	entries := make([]tableEntry, len(reps))
	for i, r := range reps {
		entries[i] = tableEntry{Match: r.Hand, Solution: solutions[i]}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal pre-flop table: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write pre-flop table %s: %w", path, err)
	}
	return nil
}
