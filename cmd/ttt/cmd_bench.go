package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/Gilqamesh/Monte-Carlo-Search-Tree-sub000/internal/search"
	"github.com/Gilqamesh/Monte-Carlo-Search-Tree-sub000/internal/ttt"
	"github.com/Gilqamesh/Monte-Carlo-Search-Tree-sub000/pkg/mcst"
	"github.com/Gilqamesh/Monte-Carlo-Search-Tree-sub000/pkg/versus"
)

// searchAgent adapts internal/search.BestMove into a versus.AgentFunc.
// Each call gets its own Config copy and rng, seeded off the shared
// source under a mutex - Arena.Run plays games concurrently, and
// neither rand.Rand nor a Config BestMove mutates (it sets cfg.Rand)
// are safe to share across goroutines.
func searchAgent(template *mcst.Config, movetime int, seedSrc *rand.Rand, mu *sync.Mutex) versus.AgentFunc {
	return func(pos *ttt.Position, _ ttt.Player) (ttt.Square, error) {
		mu.Lock()
		callSeed := seedSrc.Int63()
		mu.Unlock()

		cfg := *template
		terminate := buildTerminate(movetime, maxCycles)
		result, err := search.BestMove(pos, &cfg, terminate, rand.New(rand.NewSource(callSeed)))
		if err != nil {
			return 0, err
		}
		return result.Move, nil
	}
}

func runBench(cmd *cobra.Command, args []string) {
	seedSrc := rand.New(rand.NewSource(seed))
	var mu sync.Mutex

	strongCfg := buildConfig()
	weakCfg := buildConfig()

	arena := versus.NewArena(
		searchAgent(strongCfg, movetimeMs, seedSrc, &mu),
		searchAgent(weakCfg, benchMovetime, seedSrc, &mu),
	).SetNumGames(benchGames).SetConcurrency(benchThreads).SetSeed(seed)

	summary, err := arena.Run(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "some games failed:", err)
	}

	fmt.Printf("games=%d player1_wins=%d player2_wins=%d draws=%d first_mover_wins=%d second_mover_wins=%d\n",
		summary.TotalGames, summary.Player1Wins, summary.Player2Wins, summary.Draws,
		summary.FirstToMoveWins, summary.SecondToMoveWins)
}
