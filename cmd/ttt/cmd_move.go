package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/Gilqamesh/Monte-Carlo-Search-Tree-sub000/internal/display"
	"github.com/Gilqamesh/Monte-Carlo-Search-Tree-sub000/internal/search"
	"github.com/Gilqamesh/Monte-Carlo-Search-Tree-sub000/internal/ttt"
)

func runMove(cmd *cobra.Command, args []string) {
	pos := ttt.NewPosition()
	for _, a := range args {
		sq, err := ttt.ParseSquare(a)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		pos.MakeMove(sq)
	}

	if pos.IsOver() {
		display.Board(os.Stdout, pos)
		display.TerminalBanner(os.Stdout, pos.Outcome(), pos.Turn())
		return
	}

	cfg := buildConfig()
	terminate := buildTerminate(movetimeMs, maxCycles)
	rng := rand.New(rand.NewSource(seed))

	result, err := search.BestMove(pos, cfg, terminate, rng)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	display.Board(os.Stdout, pos)
	fmt.Printf("best move: %s (%d simulations)\n", result.Move,
		result.Arena.Node(result.Root).NumSimulations)

	if debugDump {
		display.DumpTree(os.Stdout, result.Arena, result.Root)
	}
}
