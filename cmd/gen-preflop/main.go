// gen-preflop builds the 169-entry pre-flop table file consumed by
// internal/preflop.FileSource at runtime, one full exhaustive solve
// per suit-isomorphism representative (spec.md §6, §8).
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-equity/internal/cancel"
	"github.com/lox/holdem-equity/internal/engine"
	"github.com/lox/holdem-equity/internal/preflop"
)

type CLI struct {
	Out   string `short:"o" help:"Output table file path" default:"precalculated/preflop_solutions.json"`
	Debug bool   `short:"d" help:"Enable debug logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("gen-preflop"),
		kong.Description("Generate the precalculated pre-flop equity table"),
		kong.UsageOnError(),
	)

	level := log.InfoLevel
	if cli.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	reps := preflop.Representatives()
	solutions := make([]preflop.Solution, len(reps))
	sig := cancel.New()
	clock := quartz.NewReal()

	for i, rep := range reps {
		logger.Info(fmt.Sprintf("starting hand %d/%d", i+1, len(reps)), "hand", rep.Hand)

		table := engine.Table{Hand: rep.Hand}
		sol, err := engine.SolveExhaustive(sig, table, clock, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error solving %s%s: %v\n", rep.Hand[0], rep.Hand[1], err)
			ctx.Exit(1)
		}

		solutions[i] = toTableSolution(sol)
	}

	if err := os.MkdirAll(filepath.Dir(cli.Out), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		ctx.Exit(1)
	}
	if err := preflop.WriteTableFile(cli.Out, solutions); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing table file: %v\n", err)
		ctx.Exit(1)
	}

	logger.Info("wrote pre-flop table", "path", cli.Out, "entries", len(solutions))
}

func toTableSolution(sol engine.Solution) preflop.Solution {
	hs := make([]preflop.HandSolution, len(sol.Hands))
	for i, h := range sol.Hands {
		hs[i] = preflop.HandSolution{Hand: h.Hand, BeatsMeCount: h.BeatsMeCount, IsBeatenCount: h.IsBeatenCount}
	}
	return preflop.Solution{
		HandSolutions:      hs,
		BoardPossibilities: sol.BoardPossibilities,
		WinCount:           sol.WinCount,
		LoseCount:          sol.LoseCount,
	}
}
