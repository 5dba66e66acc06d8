package mcst

import (
	"math/rand"
	"testing"
)

func newTestArenaWithChild(t *testing.T, childSims, parentSims int, depth int) (*Arena[int], *Config, *Node[int]) {
	t.Helper()
	arena, err := NewArena[int](16, 4)
	if err != nil {
		t.Fatal(err)
	}
	root, _ := arena.Allocate(InvalidIndex)
	root.ControlledType = Controlled
	root.NumSimulations = parentSims

	child, _ := arena.Allocate(root.Index)
	child.ControlledType = Uncontrolled
	child.NumSimulations = childSims
	child.Value = float64(childSims) * 0.5
	child.Depth = depth
	if err := arena.AddChild(root.Index, child.Index, 1); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig(4)
	cfg.Rand = rand.New(rand.NewSource(1))
	return arena, cfg, child
}

func TestUCTPanicsOnUnexploredChild(t *testing.T) {
	arena, cfg, child := newTestArenaWithChild(t, 0, 10, 1)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on unexplored child")
		}
	}()
	UCT(arena, cfg, child, 3)
}

func TestUCTPanicsOnRoot(t *testing.T) {
	arena, err := NewArena[int](4, 4)
	if err != nil {
		t.Fatal(err)
	}
	root, _ := arena.Allocate(InvalidIndex)
	root.NumSimulations = 1
	cfg := DefaultConfig(4)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on root")
		}
	}()
	UCT(arena, cfg, root, 3)
}

// TestUCTExplorationDecreasesWithVisits checks the standard UCT shape: all
// else equal, a less-visited child scores higher due to the exploration
// term, even with identical average value.
func TestUCTExplorationDecreasesWithVisits(t *testing.T) {
	arenaFew, cfg, childFew := newTestArenaWithChild(t, 2, 100, 1)
	scoreFew := UCT(arenaFew, cfg, childFew, 3)

	arenaMany, cfg2, childMany := newTestArenaWithChild(t, 50, 100, 1)
	scoreMany := UCT(arenaMany, cfg2, childMany, 3)

	if scoreFew <= scoreMany {
		t.Fatalf("expected less-visited child to score higher: few=%f many=%f", scoreFew, scoreMany)
	}
}

// TestUCTExplorationDecreasesWithDepth checks the 1/depth damping term.
func TestUCTExplorationDecreasesWithDepth(t *testing.T) {
	arenaShallow, cfg, childShallow := newTestArenaWithChild(t, 5, 100, 1)
	scoreShallow := UCT(arenaShallow, cfg, childShallow, 3)

	arenaDeep, cfg2, childDeep := newTestArenaWithChild(t, 5, 100, 10)
	scoreDeep := UCT(arenaDeep, cfg2, childDeep, 3)

	if scoreShallow <= scoreDeep {
		t.Fatalf("expected shallower child to score higher: shallow=%f deep=%f", scoreShallow, scoreDeep)
	}
}
