package preflop

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/lox/holdem-equity/internal/cards"
	"golang.org/x/sync/singleflight"
)

// DefaultTableFile is the pre-flop table's path relative to a host's
// configured table root (spec.md §6).
const DefaultTableFile = "precalculated/preflop_solutions.json"

// Source loads the 169-entry pre-flop table. Table loads are assumed
// to be expensive (disk I/O, hash construction) and are performed at
// most once per Source, regardless of how many goroutines call
// Lookup concurrently.
type Source interface {
	Lookup(hand [2]cards.Card) (Solution, bool, error)
}

// FileSource reads the pre-flop table from a JSON file on disk, in
// the format spec.md §6 describes, and serves lookups through a
// minimal perfect hash over the 169 representative hands.
type FileSource struct {
	path   string
	logger *log.Logger

	group singleflight.Group
	idx   atomic.Pointer[index]
}

// NewFileSource returns a FileSource that will lazily read path on
// first use. logger may be nil, in which case log.Default() is used.
func NewFileSource(path string, logger *log.Logger) *FileSource {
	if logger == nil {
		logger = log.Default()
	}
	return &FileSource{path: path, logger: logger}
}

// NewFileSourceInRoot is a convenience constructor that joins root
// with DefaultTableFile.
func NewFileSourceInRoot(root string, logger *log.Logger) *FileSource {
	return NewFileSource(filepath.Join(root, DefaultTableFile), logger)
}

// Lookup resolves hand to its representative's Solution, loading the
// table from disk on first call. Concurrent callers before the first
// load completes share a single load via singleflight.
func (s *FileSource) Lookup(hand [2]cards.Card) (Solution, bool, error) {
	idx := s.idx.Load()
	if idx == nil {
		v, err, _ := s.group.Do("load", s.load)
		if err != nil {
			return Solution{}, false, err
		}
		idx = v.(*index)
	}
	canonical, sigma := Isomorphism(hand)
	sol, ok := idx.lookup(canonical)
	if !ok {
		return Solution{}, false, nil
	}
	return remapSolution(sol, sigma), true, nil
}

// load parses the table file and publishes the built index through
// s.idx, an atomic.Pointer: singleflight.Group dedups concurrent first
// calls to a single parse, but does not by itself make a bare pointer
// field safe to read from goroutines that skip Do entirely, so every
// reader (including this one, on a second call after a prior success)
// goes through s.idx.Load()/Store() rather than a plain field access.
func (s *FileSource) load() (any, error) {
	if idx := s.idx.Load(); idx != nil {
		return idx, nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("load pre-flop table %s: %w", s.path, err)
	}
	var entries []tableEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse pre-flop table %s: %w", s.path, err)
	}

	reps := Representatives()
	solutions := make([]Solution, len(reps))
	found := make([]bool, len(reps))
	for _, e := range entries {
		for i, r := range reps {
			if r.Hand == e.Match {
				solutions[i] = e.Solution
				found[i] = true
				break
			}
		}
	}
	for i, ok := range found {
		if !ok {
			return nil, fmt.Errorf("pre-flop table %s missing representative %s%s", s.path, reps[i].Hand[0], reps[i].Hand[1])
		}
	}

	idx := buildIndex(solutions, func(msg string, keyvals ...any) {
		s.logger.Warn(msg, keyvals...)
	})
	s.idx.Store(idx)
	return idx, nil
}

// remapSolution applies sigma to every card in sol, turning a
// representative's stored solution into the solution for the actual
// dealt hand it was resolved from.
func remapSolution(sol Solution, sigma [cards.SuitCount]cards.Suit) Solution {
	out := Solution{
		HandSolutions:      make([]HandSolution, len(sol.HandSolutions)),
		BoardPossibilities: sol.BoardPossibilities,
		WinCount:           sol.WinCount,
		LoseCount:          sol.LoseCount,
	}
	for i, h := range sol.HandSolutions {
		out.HandSolutions[i] = HandSolution{
			Hand:          [2]cards.Card{Apply(sigma, h.Hand[0]), Apply(sigma, h.Hand[1])},
			BeatsMeCount:  h.BeatsMeCount,
			IsBeatenCount: h.IsBeatenCount,
		}
	}
	return out
}
