package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Gilqamesh/Monte-Carlo-Search-Tree-sub000/internal/display"
	"github.com/Gilqamesh/Monte-Carlo-Search-Tree-sub000/internal/search"
	"github.com/Gilqamesh/Monte-Carlo-Search-Tree-sub000/internal/ttt"
)

func runPlay(cmd *cobra.Command, args []string) {
	pos := ttt.NewPosition()
	human := ttt.X
	engine := human.Opponent()
	rng := rand.New(rand.NewSource(seed))
	reader := bufio.NewScanner(os.Stdin)

	fmt.Println("You are X. Enter moves as e.g. B2. Ctrl-D to quit.")
	display.Board(os.Stdout, pos)

	for !pos.IsOver() {
		if pos.Turn() == human {
			fmt.Print("your move> ")
			if !reader.Scan() {
				return
			}
			sq, err := ttt.ParseSquare(strings.TrimSpace(reader.Text()))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			if !isLegal(pos, sq) {
				fmt.Fprintln(os.Stderr, "illegal move")
				continue
			}
			pos.MakeMove(sq)
		} else {
			cfg := buildConfig()
			terminate := buildTerminate(movetimeMs, maxCycles)
			result, err := search.BestMove(pos, cfg, terminate, rng)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Printf("engine plays %s\n", result.Move)
			pos.MakeMove(result.Move)
		}
		display.Board(os.Stdout, pos)
	}

	display.TerminalBanner(os.Stdout, pos.Outcome(), engine)
}

func isLegal(pos *ttt.Position, sq ttt.Square) bool {
	for _, m := range pos.GenerateMoves() {
		if m == sq {
			return true
		}
	}
	return false
}
