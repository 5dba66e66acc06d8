package main

import (
	"github.com/spf13/cobra"
)

var (
	seed           int64
	movetimeMs     int
	maxCycles      int
	arenaCapacity  int
	mostSimulated  bool
	debugDump      bool
	benchGames     int
	benchThreads   int
	benchMovetime  int

	rootCmd = &cobra.Command{
		Use:   "ttt",
		Short: "Play and benchmark tic-tac-toe against the MCST engine",
	}

	moveCmd = &cobra.Command{
		Use:   "move [square...]",
		Short: "Apply the given moves and print the engine's choice for the side to move",
		Run:   runMove,
	}

	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game against the engine from the terminal",
		Run:   runPlay,
	}

	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Run a self-play batch between two engine configurations",
		Run:   runBench,
	}
)

func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 1, "RNG seed")
	rootCmd.PersistentFlags().IntVar(&movetimeMs, "movetime", 200, "milliseconds allotted per move (0 disables the time limit, relying on --cycles instead)")
	rootCmd.PersistentFlags().IntVar(&maxCycles, "cycles", 0, "cap on Evaluate cycles per move (0 disables the cap, relying on --movetime instead)")
	rootCmd.PersistentFlags().IntVar(&arenaCapacity, "arena-capacity", 1<<16, "node arena capacity per move search")
	rootCmd.PersistentFlags().BoolVar(&mostSimulated, "most-simulated", false, "break root-move ties by simulation count instead of UCT")

	rootCmd.AddCommand(moveCmd)
	moveCmd.Flags().BoolVar(&debugDump, "debug-dump", false, "print the full decision tree after searching")

	rootCmd.AddCommand(playCmd)

	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().IntVar(&benchGames, "games", 100, "number of self-play games")
	benchCmd.Flags().IntVar(&benchThreads, "threads", 4, "concurrent games in flight")
	benchCmd.Flags().IntVar(&benchMovetime, "opponent-movetime", 50, "milliseconds allotted per move for the weaker side")
}
