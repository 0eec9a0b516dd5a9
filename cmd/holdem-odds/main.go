package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-equity/internal/cancel"
	"github.com/lox/holdem-equity/internal/cards"
	"github.com/lox/holdem-equity/internal/engine"
	"github.com/lox/holdem-equity/internal/preflop"
)

type CLI struct {
	Hand  string `arg:"" help:"Player hole cards, e.g. 'AcKc'"`
	Board string `short:"b" help:"Community board cards revealed so far, e.g. 'Qc Jc 10c'"`
	Root  string `short:"r" help:"Directory containing precalculated/preflop_solutions.json" default:"."`
	Debug bool   `short:"d" help:"Enable debug logging"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	loseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-odds"),
		kong.Description("Exact two-player Texas Hold'em equity calculator"),
		kong.UsageOnError(),
	)

	level := log.InfoLevel
	if cli.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	hand, err := parseCardPair(cli.Hand)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing hand: %v\n", err)
		ctx.Exit(1)
	}

	board, err := parseBoard(cli.Board)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing board: %v\n", err)
		ctx.Exit(1)
	}

	table := engine.Table{Hand: hand, Board: board}

	sig := cancel.New()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		logger.Warn("interrupted, stopping at next suspension point")
		sig.Abort()
	}()

	pf := preflop.NewFileSourceInRoot(cli.Root, logger)

	startTime := time.Now()
	sol, err := engine.Solve(sig, table, quartz.NewReal(), pf, func(p engine.Progress) {
		logger.Debug("progress", "evaluated", p.Evaluated, "total", p.Total)
	})
	duration := time.Since(startTime)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}

	displayResults(table, sol, duration)
}

func parseCardPair(s string) ([2]cards.Card, error) {
	cs, err := parseCards(s)
	if err != nil {
		return [2]cards.Card{}, err
	}
	if len(cs) != 2 {
		return [2]cards.Card{}, fmt.Errorf("hand must contain exactly 2 cards, got %d", len(cs))
	}
	return [2]cards.Card{cs[0], cs[1]}, nil
}

func parseBoard(s string) ([engine.BoardSlots]*cards.Card, error) {
	var board [engine.BoardSlots]*cards.Card
	cs, err := parseCards(s)
	if err != nil {
		return board, err
	}
	if len(cs) > engine.BoardSlots {
		return board, fmt.Errorf("board cannot have more than %d cards", engine.BoardSlots)
	}
	for i, c := range cs {
		c := c
		board[i] = &c
	}
	return board, nil
}

// parseCards splits a space-separated "AcKc" / "Ac Kc" style string
// into individual two-or-three-character card tokens, tolerating
// either spacing convention.
func parseCards(s string) ([]cards.Card, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var tokens []string
	if strings.Contains(s, " ") {
		tokens = strings.Fields(s)
	} else {
		for len(s) > 0 {
			n := 2
			if strings.HasPrefix(s, "10") {
				n = 3
			}
			if len(s) < n {
				return nil, fmt.Errorf("malformed card token %q", s)
			}
			tokens = append(tokens, s[:n])
			s = s[n:]
		}
	}

	out := make([]cards.Card, len(tokens))
	for i, tok := range tokens {
		c, err := parseCardToken(tok)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

func parseCardToken(tok string) (cards.Card, error) {
	if len(tok) < 2 {
		return cards.Card{}, fmt.Errorf("malformed card token %q", tok)
	}
	rankToken, suitToken := tok[:len(tok)-1], tok[len(tok)-1:]
	rank, ok := cards.ParseRank(rankToken)
	if !ok {
		return cards.Card{}, fmt.Errorf("unrecognized rank %q", rankToken)
	}
	suit, ok := cards.ParseSuit(suitToken)
	if !ok {
		return cards.Card{}, fmt.Errorf("unrecognized suit %q", suitToken)
	}
	return cards.New(rank, suit), nil
}

func displayResults(table engine.Table, sol engine.Solution, duration time.Duration) {
	if board := table.FixedBoardCards(); len(board) > 0 {
		fmt.Printf("%s\n", headerStyle.Render("board"))
		fmt.Printf("%s\n\n", formatCards(board))
	}

	total := uint64(len(sol.Hands))
	tieCount := total - sol.WinCount - sol.LoseCount

	fmt.Printf("%s\n", handStyle.Render(formatCards(table.Hand[:])))
	fmt.Printf("%s\n\n", percentStyle.Render(fmt.Sprintf(
		"win %.2f%%  lose %.2f%%  tie %.2f%%",
		pct(sol.WinCount, total),
		pct(sol.LoseCount, total),
		pct(tieCount, total),
	)))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		headerStyle.Render("opponent hand"),
		headerStyle.Render("beats me"),
		headerStyle.Render("beaten by me"))

	for _, h := range sol.Hands {
		style := winStyle
		if h.BeatsMeCount > h.IsBeatenCount {
			style = loseStyle
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			handStyle.Render(formatCards(h.Hand[:])),
			style.Render(fmt.Sprintf("%d", h.BeatsMeCount)),
			style.Render(fmt.Sprintf("%d", h.IsBeatenCount)))
	}
	w.Flush()

	fmt.Printf("\n%d candidate opponent hands, %d board completions each, solved in %v\n",
		len(sol.Hands), sol.BoardPossibilities, duration.Truncate(time.Millisecond))
}

func pct(n, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

func formatCards(cs []cards.Card) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
