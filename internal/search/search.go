// Package search wires pkg/mcst's generic engine to internal/ttt and
// internal/playout for one concrete concern: picking the best move from
// a tic-tac-toe position. It is the glue layer cmd/ttt and pkg/versus
// both sit on, kept separate from the engine itself (which knows
// nothing about tic-tac-toe) and from the playout oracle (which knows
// nothing about arenas or configs).
package search

import (
	"math/rand"

	"github.com/Gilqamesh/Monte-Carlo-Search-Tree-sub000/internal/playout"
	"github.com/Gilqamesh/Monte-Carlo-Search-Tree-sub000/internal/ttt"
	"github.com/Gilqamesh/Monte-Carlo-Search-Tree-sub000/pkg/mcst"
)

// Result is what BestMove hands back: the chosen move plus the arena it
// searched in, so callers (cmd/ttt's --debug-dump, tests) can inspect
// the tree afterward.
type Result struct {
	Move  ttt.Square
	Arena *mcst.Arena[ttt.Square]
	Root  mcst.NodeIndex
}

// BestMove runs one Evaluate/PickBestRootMove cycle against pos for the
// side to move, stopping when terminate reports done. rng drives both
// pkg/mcst's random-expansion choices and internal/playout's rollouts;
// pass the same *rand.Rand (or equivalently seeded ones) across calls
// for deterministic replay.
func BestMove(pos *ttt.Position, cfg *mcst.Config, terminate mcst.Terminate, rng *rand.Rand) (Result, error) {
	engine := pos.Turn()
	legalMoves := pos.GenerateMoves()
	rootMovesLeft := len(legalMoves)

	arena, err := mcst.NewArena[ttt.Square](cfg.ArenaCapacity, cfg.MaxMoves)
	if err != nil {
		return Result{}, err
	}
	root, err := arena.Allocate(mcst.InvalidIndex)
	if err != nil {
		return Result{}, err
	}

	cfg.Rand = rng
	simulate := playout.New(pos, engine, rootMovesLeft, rng)
	legal := mcst.NewMoveSet(legalMoves)

	if err := mcst.Evaluate(arena, cfg, root.Index, legal, simulate, terminate); err != nil {
		return Result{}, err
	}

	move, err := mcst.PickBestRootMove(arena, cfg, root.Index)
	if err != nil {
		return Result{}, err
	}

	return Result{Move: move, Arena: arena, Root: root.Index}, nil
}
