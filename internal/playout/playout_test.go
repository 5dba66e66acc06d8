package playout

import (
	"math/rand"
	"testing"

	"github.com/Gilqamesh/Monte-Carlo-Search-Tree-sub000/internal/ttt"
	"github.com/Gilqamesh/Monte-Carlo-Search-Tree-sub000/pkg/mcst"
)

func TestImmediateTerminalLeafSkipsRollout(t *testing.T) {
	root := ttt.NewPosition()
	// X about to complete the bottom row with C1; the prefix alone ends
	// the game, so the oracle must not need any randomness.
	root.MakeMove(ttt.A1) // X
	root.MakeMove(ttt.A2) // O
	root.MakeMove(ttt.B1) // X
	root.MakeMove(ttt.A3) // O

	rng := rand.New(rand.NewSource(1))
	sim := New(root, ttt.X, len(root.GenerateMoves()), rng)

	node := &mcst.Node[ttt.Square]{Depth: 1}
	prefix := mcst.MoveSequence[ttt.Square]{Moves: []ttt.Square{ttt.C1}}

	sim(prefix, node, nil)

	if node.TerminalType != mcst.Winning {
		t.Fatalf("expected the completed bottom row to be Winning for X, got %v", node.TerminalType)
	}
	if node.NumSimulations <= 0 {
		t.Fatalf("expected a positive weighted simulation count, got %d", node.NumSimulations)
	}
	if node.Value != float64(node.NumSimulations) {
		t.Fatalf("expected full-weight value for a certain win, got value=%f sims=%d", node.Value, node.NumSimulations)
	}
}

func TestNonTerminalLeafRunsWeightedRollouts(t *testing.T) {
	root := ttt.NewPosition()
	rng := rand.New(rand.NewSource(2))
	sim := New(root, ttt.X, len(root.GenerateMoves()), rng)

	node := &mcst.Node[ttt.Square]{Depth: 1}
	prefix := mcst.MoveSequence[ttt.Square]{Moves: []ttt.Square{ttt.A1}}

	sim(prefix, node, nil)

	if node.TerminalType != mcst.NotTerminal {
		t.Fatalf("expected an early move to leave the leaf non-terminal, got %v", node.TerminalType)
	}
	if node.NumSimulations != 8*15 {
		t.Fatalf("expected weight (9-1)*15=120, got %d", node.NumSimulations)
	}
	if node.Value < 0 || node.Value > float64(node.NumSimulations) {
		t.Fatalf("expected value within [0, sims], got %f of %d", node.Value, node.NumSimulations)
	}
}

func TestWeightNeverBelowOne(t *testing.T) {
	root := ttt.NewPosition()
	moves := root.GenerateMoves()
	// Consume every move but the last two so rootMovesLeft - prefixLen
	// would go to zero/negative without the floor.
	for _, m := range moves[:7] {
		root.MakeMove(m)
	}
	rng := rand.New(rand.NewSource(3))
	sim := New(root, ttt.X, len(root.GenerateMoves()), rng)

	node := &mcst.Node[ttt.Square]{Depth: 2}
	remaining := root.GenerateMoves()
	// Consuming every remaining move in the prefix drives weight's
	// pre-floor value to zero, exercising the max(1, ...) clamp.
	prefix := mcst.MoveSequence[ttt.Square]{Moves: append([]ttt.Square(nil), remaining...)}

	sim(prefix, node, nil)

	if node.NumSimulations < 1 {
		t.Fatalf("expected weight floor of 1, got %d", node.NumSimulations)
	}
}
