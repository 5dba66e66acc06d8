// Package playout implements the rollout oracle that drives pkg/mcst's
// Simulate hook for tic-tac-toe: an immediate-terminal shortcut plus a
// weighted random-playout fallback.
package playout

import (
	"math/rand"

	"github.com/Gilqamesh/Monte-Carlo-Search-Tree-sub000/internal/ttt"
	"github.com/Gilqamesh/Monte-Carlo-Search-Tree-sub000/pkg/mcst"
)

// outcomeValue scores a finished game from engine's point of view on a
// 0..1 reward scale (1 = win, 0.5 = draw, 0 = loss), the same scale
// pkg/mcst expects Simulate to report on.
func outcomeValue(o ttt.Outcome, engine ttt.Player) float64 {
	switch o {
	case ttt.OutcomeDraw:
		return 0.5
	case ttt.OutcomeXWon:
		if engine == ttt.X {
			return 1.0
		}
		return 0.0
	case ttt.OutcomeOWon:
		if engine == ttt.O {
			return 1.0
		}
		return 0.0
	default:
		return 0.5
	}
}

func terminalTypeFor(o ttt.Outcome, engine ttt.Player) mcst.TerminalType {
	switch o {
	case ttt.OutcomeDraw:
		return mcst.Neutral
	case ttt.OutcomeXWon:
		if engine == ttt.X {
			return mcst.Winning
		}
		return mcst.Losing
	case ttt.OutcomeOWon:
		if engine == ttt.O {
			return mcst.Winning
		}
		return mcst.Losing
	default:
		return mcst.NotTerminal
	}
}

// randomPlayout plays uniformly random legal moves from pos (mutated in
// place) until the game ends, returning the outcome.
func randomPlayout(pos *ttt.Position, rng *rand.Rand) ttt.Outcome {
	for !pos.IsOver() {
		moves := pos.GenerateMoves()
		pos.MakeMove(moves[rng.Intn(len(moves))])
	}
	return pos.Outcome()
}

// New builds a mcst.Simulate oracle closed over the actual game
// position at the moment Evaluate is called (root), which side the
// search is trying to win for (engine), the number of moves still
// legal at root (rootMovesLeft, used to weight a leaf by the position's
// remaining freedom), and the rng driving random rollouts.
//
// For a leaf whose move prefix alone already ends the game, the oracle
// skips rollouts entirely and reports the known outcome, scaled by
// weight so it carries the same statistical mass a full rollout batch
// would have. Otherwise it runs weight independent random rollouts from
// the leaf and adds the sum of their outcomes to node.Value.
func New(root *ttt.Position, engine ttt.Player, rootMovesLeft int, rng *rand.Rand) mcst.Simulate[ttt.Square] {
	return func(prefix mcst.MoveSequence[ttt.Square], node *mcst.Node[ttt.Square], _ *mcst.Arena[ttt.Square]) {
		pos := root.Clone()
		for _, mv := range prefix.Moves {
			pos.MakeMove(mv)
		}

		weight := (rootMovesLeft - len(prefix.Moves)) * 15
		if weight < 1 {
			weight = 1
		}

		if pos.IsOver() {
			value := outcomeValue(pos.Outcome(), engine)
			node.TerminalType = terminalTypeFor(pos.Outcome(), engine)
			node.Value += value * float64(weight)
			node.NumSimulations += weight
			return
		}

		var total float64
		for i := 0; i < weight; i++ {
			total += outcomeValue(randomPlayout(pos.Clone(), rng), engine)
		}
		node.Value += total
		node.NumSimulations += weight
	}
}
